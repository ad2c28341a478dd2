package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lixenwraith/kinetic-text/audio"
	"github.com/lixenwraith/kinetic-text/core"
	"github.com/lixenwraith/kinetic-text/engine"
	"github.com/lixenwraith/kinetic-text/kinetic"
	"github.com/lixenwraith/kinetic-text/surface"
	"github.com/lixenwraith/kinetic-text/textframe"
)

// newTextFrame builds the rasterizer from config
func (a *app) newTextFrame() (*textframe.TextFrame, error) {
	data, err := a.cfg.FontData()
	if err != nil {
		return nil, err
	}
	return textframe.New(textframe.Config{
		PixelSize: a.cfg.PixelSize(),
		FontSize:  a.cfg.FontSize,
		FontData:  data,
	})
}

func (a *app) runTerminal(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	plucker := audio.NewPlucker(seed, a.log)
	if a.cfg.Audio {
		if err := plucker.Initialize(); err != nil {
			// Non-fatal, runs silent without an audio device
			a.log.Warn("audio unavailable", zap.Error(err))
		}
	}
	defer plucker.Close()

	term, err := surface.NewTerminal(nil, kcfg.Background)
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer term.Close()

	ctrl := kinetic.New(term.Canvas(), tf, kcfg,
		kinetic.WithLogger(a.log.Named("kinetic")),
		kinetic.WithViewport(hostViewport(term)),
		kinetic.WithHooks(kinetic.Hooks{
			OnPluck: func(origin core.Point, _ core.Rect) {
				w, _ := term.Canvas().Size()
				plucker.Pluck(origin.X, w)
			},
		}),
	)

	eng := engine.New(term, ctrl,
		engine.WithInterval(a.cfg.FrameInterval()),
		engine.WithLogger(a.log.Named("engine")),
	)
	return eng.Run(ctx)
}

// hostViewport re-queries the host on every call
func hostViewport(h surface.Host) kinetic.Viewport {
	return kinetic.ViewportFunc(func() bool {
		return h.Viewport().IsSmall()
	})
}
