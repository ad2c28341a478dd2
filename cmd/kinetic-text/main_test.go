package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/kinetic-text/config"
	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/render"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root, err := newRootCmd()
	require.NoError(t, err)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err = root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestConfigCommandMergesFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("text: file\nripple_speed: 4\n"), 0o644))

	out, err := execute(t, "config", "--config", path, "--text", "flag", "--fps", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "text: flag")
	assert.Contains(t, out, "ripple_speed: 4")
	assert.Contains(t, out, "fps: 30")
}

func TestConfigCommandRejectsInvalidColor(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "kinetic-text.yaml"), []byte("colors:\n  primary: nope\n"), 0o644))

	_, err := execute(t, "config")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSnapshotCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	outPath := filepath.Join(dir, "frame.png")

	out, err := execute(t, "snapshot", "--out", outPath, "--cols", "60", "--rows", "12",
		"--seed", "3", "--text", "Go")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+outPath)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 24, img.Bounds().Dy())

	// The static frame shows every dot in the primary color
	primary := render.MustParseColor(constants.DefaultPrimaryColor)
	found := false
	for y := 0; y < 24 && !found; y++ {
		for x := 0; x < 60; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if uint8(r>>8) == primary.R && uint8(g>>8) == primary.G && uint8(b>>8) == primary.B {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "no dot pixels in snapshot")
}

func TestSnapshotAnimatesFrames(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := execute(t, "snapshot", "--out", "a.png", "--cols", "100", "--rows", "20",
		"--seed", "1", "--click", "5,5", "--frames", "10")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "a.png"))
	assert.NoError(t, err)

	_, err = execute(t, "snapshot", "--click", "nope")
	assert.Error(t, err)
	_, err = execute(t, "snapshot", "--cols", "0")
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	x, y, err := parsePoint("3.5, 7")
	require.NoError(t, err)
	assert.Equal(t, 3.5, x)
	assert.Equal(t, 7.0, y)

	for _, bad := range []string{"", "1", "a,2", "1,b"} {
		_, _, err := parsePoint(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestCleanupRunsOnFailedCommand(t *testing.T) {
	a := newApp()
	closed := 0
	a.cleanup = func() { closed++ }

	run := a.withCleanup(func(cmd *cobra.Command, args []string) error {
		return errors.New("render failed")
	})
	require.Error(t, run(nil, nil))
	assert.Equal(t, 1, closed)

	// Cleanup is released after the first call
	require.Error(t, run(nil, nil))
	assert.Equal(t, 1, closed)
}

func TestFailedSnapshotClosesDebugLog(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	a := newApp()
	root, err := a.command()
	require.NoError(t, err)
	root.SetArgs([]string{"snapshot", "--debug", "--cols", "0"})
	root.SetOut(&bytes.Buffer{})
	require.Error(t, root.Execute())

	_, err = os.Stat(filepath.Join(dir, "logs", "kinetic-text.log"))
	require.NoError(t, err)
	// The sink was released, so the app logger is back to a no-op
	assert.False(t, a.log.Core().Enabled(zap.DebugLevel))
}

func TestRootCommandBindsFlags(t *testing.T) {
	a := newApp()
	root, err := a.command()
	require.NoError(t, err)

	require.NoError(t, root.PersistentFlags().Set("font", "custom.ttf"))
	require.NoError(t, root.PersistentFlags().Set("random-text", "true"))
	assert.Equal(t, "custom.ttf", a.v.GetString("font_file"))
	assert.True(t, a.v.GetBool("random_text"))
}
