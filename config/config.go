// Package config loads runtime settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/kinetic"
	"github.com/lixenwraith/kinetic-text/physics"
	"github.com/lixenwraith/kinetic-text/render"
)

const (
	// FileName is the config file searched for in the working directory
	FileName = "kinetic-text"
	// EnvPrefix prefixes environment overrides, e.g. KINETIC_COLORS_PRIMARY
	EnvPrefix = "KINETIC"

	maxFPS = int(time.Second / constants.MinFrameInterval)
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// ColorsConfig holds CSS-style color strings
type ColorsConfig struct {
	Primary    string `mapstructure:"primary" yaml:"primary"`
	Background string `mapstructure:"background" yaml:"background"`
	Accent     string `mapstructure:"accent" yaml:"accent"`
}

// Config is the full runtime configuration
type Config struct {
	Text       string `mapstructure:"text" yaml:"text"`
	RandomText bool   `mapstructure:"random_text" yaml:"random_text"`
	// Seed drives random text, default clicks and pluck noise; 0 seeds from the clock
	Seed uint64 `mapstructure:"seed" yaml:"seed"`

	DotRadius     float64 `mapstructure:"dot_radius" yaml:"dot_radius"`
	RippleSpeed   float64 `mapstructure:"ripple_speed" yaml:"ripple_speed"`
	PointerRadius float64 `mapstructure:"pointer_radius" yaml:"pointer_radius"`
	FontSize      float64 `mapstructure:"font_size" yaml:"font_size"`
	FontFile      string  `mapstructure:"font_file" yaml:"font_file"`

	Colors ColorsConfig `mapstructure:"colors" yaml:"colors"`

	Audio bool `mapstructure:"audio" yaml:"audio"`
	Debug bool `mapstructure:"debug" yaml:"debug"`
	FPS   int  `mapstructure:"fps" yaml:"fps"`
}

// SetDefaults registers every key so environment overrides resolve
func SetDefaults(v *viper.Viper) {
	v.SetDefault("text", constants.DefaultText)
	v.SetDefault("random_text", false)
	v.SetDefault("seed", 0)

	v.SetDefault("dot_radius", constants.DefaultDotRadius)
	v.SetDefault("ripple_speed", constants.DefaultRippleSpeed)
	v.SetDefault("pointer_radius", constants.DefaultPointerRadius)
	v.SetDefault("font_size", 0)
	v.SetDefault("font_file", "")

	v.SetDefault("colors.primary", constants.DefaultPrimaryColor)
	v.SetDefault("colors.background", constants.DefaultBackgroundColor)
	v.SetDefault("colors.accent", constants.DefaultAccentColor)

	v.SetDefault("audio", true)
	v.SetDefault("debug", false)
	v.SetDefault("fps", int(time.Second/constants.FrameUpdateInterval))
}

// NewDefaultConfig returns the built-in configuration
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads path, or kinetic-text.yaml from the working directory when path is
// empty, then applies KINETIC_* environment overrides
// A missing default file is not an error; a missing explicit path is
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and parses every color
func (c *Config) Validate() error {
	if c.DotRadius <= 0 {
		return fmt.Errorf("%w: dot_radius must be positive, got %v", ErrInvalidConfig, c.DotRadius)
	}
	if c.RippleSpeed <= 0 {
		return fmt.Errorf("%w: ripple_speed must be positive, got %v", ErrInvalidConfig, c.RippleSpeed)
	}
	if c.PointerRadius < 0 {
		return fmt.Errorf("%w: pointer_radius must not be negative, got %v", ErrInvalidConfig, c.PointerRadius)
	}
	if c.FontSize < 0 {
		return fmt.Errorf("%w: font_size must not be negative, got %v", ErrInvalidConfig, c.FontSize)
	}
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("%w: fps must be in [1, %d], got %d", ErrInvalidConfig, maxFPS, c.FPS)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Palette holds parsed colors
type Palette struct {
	Primary    core.RGB
	Background core.RGB
	Accent     core.RGB
}

// Palette parses the configured colors
func (c *Config) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Primary, err = render.ParseColor(c.Colors.Primary); err != nil {
		return Palette{}, fmt.Errorf("colors.primary: %w", err)
	}
	if p.Background, err = render.ParseColor(c.Colors.Background); err != nil {
		return Palette{}, fmt.Errorf("colors.background: %w", err)
	}
	if p.Accent, err = render.ParseColor(c.Colors.Accent); err != nil {
		return Palette{}, fmt.Errorf("colors.accent: %w", err)
	}
	return p, nil
}

// ResolvedSeed returns Seed, or a clock-derived seed when Seed is 0
func (c *Config) ResolvedSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

// Kinetic builds the controller configuration with seed
func (c *Config) Kinetic(seed uint64) (kinetic.Config, error) {
	p, err := c.Palette()
	if err != nil {
		return kinetic.Config{}, err
	}
	return kinetic.Config{
		Text:          c.Text,
		RandomText:    c.RandomText,
		Seed:          seed,
		DotRadius:     c.DotRadius,
		RippleSpeed:   c.RippleSpeed,
		PointerRadius: c.PointerRadius,
		Primary:       p.Primary,
		Background:    p.Background,
		Accent:        p.Accent,
		Spring: physics.SpringProfile{
			Spring:  constants.Spring,
			Damping: constants.Damping,
		},
	}, nil
}

// PixelSize is the rasterization pitch, one dot diameter rounded to whole pixels
func (c *Config) PixelSize() int {
	return max(int(c.DotRadius*2+0.5), 1)
}

// FrameInterval converts FPS to a ticker period
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return max(time.Second/time.Duration(c.FPS), constants.MinFrameInterval)
}

// FontData reads FontFile; nil selects the built-in face
func (c *Config) FontData() ([]byte, error) {
	if c.FontFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.FontFile)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return data, nil
}

// YAML renders the effective configuration
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
