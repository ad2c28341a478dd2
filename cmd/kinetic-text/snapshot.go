package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/kinetic-text/constants"
	"github.com/lixenwraith/kinetic-text/kinetic"
	"github.com/lixenwraith/kinetic-text/render"
	"github.com/lixenwraith/kinetic-text/surface"
)

type snapshotOptions struct {
	out    string
	cols   int
	rows   int
	frames int
	click  string
}

func newSnapshotCmd(a *app) *cobra.Command {
	opts := snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render frames off-screen and write the last one as PNG",
		Args:  cobra.NoArgs,
		RunE: a.withCleanup(func(cmd *cobra.Command, args []string) error {
			if err := a.snapshot(opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.out)
			return nil
		}),
	}
	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "kinetic-text.png", "output PNG path")
	f.IntVar(&opts.cols, "cols", 80, "emulated terminal columns")
	f.IntVar(&opts.rows, "rows", 24, "emulated terminal rows")
	f.IntVar(&opts.frames, "frames", 0, "frames to animate after the click")
	f.StringVar(&opts.click, "click", "", "click position as x,y in pixels")
	return cmd
}

func (a *app) snapshot(opts snapshotOptions) error {
	if opts.cols <= 0 || opts.rows <= 0 {
		return fmt.Errorf("snapshot size must be positive, got %dx%d", opts.cols, opts.rows)
	}

	seed := a.cfg.ResolvedSeed()
	kcfg, err := a.cfg.Kinetic(seed)
	if err != nil {
		return err
	}
	tf, err := a.newTextFrame()
	if err != nil {
		return err
	}
	defer tf.Close()

	host := surface.NewHeadless(opts.cols, opts.rows, kcfg.Background)
	defer host.Close()

	ctrl := kinetic.New(host.Canvas(), tf, kcfg,
		kinetic.WithLogger(a.log.Named("kinetic")),
		kinetic.WithViewport(hostViewport(host)),
	)
	ctrl.Resize()

	if opts.click != "" {
		x, y, err := parsePoint(opts.click)
		if err != nil {
			return err
		}
		ctrl.OnClick(x, y)
	}
	for i := 0; i < opts.frames; i++ {
		ctrl.Animate(time.Duration(i) * constants.FrameUpdateInterval)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer f.Close()
	if err := render.WritePNG(f, host.Canvas()); err != nil {
		return err
	}

	a.log.Debug("snapshot written",
		zap.String("path", opts.out),
		zap.Int("dots", len(ctrl.Dots())),
		zap.Stringer("phase", ctrl.Phase()),
	)
	return f.Close()
}

// parsePoint reads "x,y"
func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("click %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("click %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("click %q: %w", s, err)
	}
	return x, y, nil
}
