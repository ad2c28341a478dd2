package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/lixenwraith/kinetic-text/config"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

// app carries state shared by every subcommand of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	cleanup func()
}

func newApp() *app {
	return &app{v: viper.New(), log: zap.NewNop(), cleanup: func() {}}
}

func newRootCmd() (*cobra.Command, error) {
	return newApp().command()
}

// command builds the command tree; flag binding errors surface here
func (a *app) command() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "kinetic-text",
		Short:         "Render text as dots that ripple when clicked and scatter from the mouse",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize()
		},
		RunE: a.withCleanup(func(cmd *cobra.Command, args []string) error {
			return a.runTerminal(cmd.Context())
		}),
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default ./kinetic-text.yaml)")
	pf.StringP("text", "t", "", "text to render, \\n separates lines")
	pf.Bool("random-text", false, "render one random character of the text")
	pf.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	pf.Float64("dot-radius", 0, "dot radius in pixels")
	pf.Float64("ripple-speed", 0, "ripple growth in pixels per frame")
	pf.Float64("pointer-radius", 0, "pointer influence radius in pixels")
	pf.Float64("font-size", 0, "font size in pixels, 0 fits the stage")
	pf.String("font", "", "TTF/OTF font file")
	pf.Bool("audio", true, "play a plucked string on click")
	pf.Bool("debug", false, "write a debug log to logs/")
	pf.Int("fps", 0, "frames per second")

	for key, flag := range map[string]string{
		"text":           "text",
		"random_text":    "random-text",
		"seed":           "seed",
		"dot_radius":     "dot-radius",
		"ripple_speed":   "ripple-speed",
		"pointer_radius": "pointer-radius",
		"font_size":      "font-size",
		"font_file":      "font",
		"audio":          "audio",
		"debug":          "debug",
		"fps":            "fps",
	} {
		// Only an explicitly set flag overrides file and environment
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return nil, fmt.Errorf("bind flag %q: %w", flag, err)
		}
	}

	root.AddCommand(
		newRunCmd(a),
		newSnapshotCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root, nil
}

// withCleanup closes the log sink after fn, including on error exits
func (a *app) withCleanup(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer a.close()
		return fn(cmd, args)
	}
}

func (a *app) close() {
	a.cleanup()
	a.cleanup = func() {}
	a.log = zap.NewNop()
}

func (a *app) initialize() error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, cleanup, err := setupLogging(cfg.Debug)
	if err != nil {
		return err
	}
	a.log, a.cleanup = log, cleanup
	a.log.Info("starting", zap.String("version", Version))
	return nil
}

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Animate in the terminal (default)",
		Args:  cobra.NoArgs,
		RunE: a.withCleanup(func(cmd *cobra.Command, args []string) error {
			return a.runTerminal(cmd.Context())
		}),
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Skips config and logging
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
