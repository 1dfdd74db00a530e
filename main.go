package main

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/nickysemenza/gola"
	"github.com/robmorgan/lumen/config"
	"github.com/robmorgan/lumen/engine"
	"github.com/robmorgan/lumen/logger"
	"github.com/robmorgan/lumen/master"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/rhythm"
	"github.com/spf13/cobra"
	"k8s.io/utils/clock"
)

type options struct {
	configPath string
	mode       string
	tiles      []uint
	palette    uint64
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "lumen",
		Short:         "Render the club rig to OLA",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := Run(cmd.Context(), opts)
			if err != nil {
				logger.GetProjectLogger().Errorf("lumen exited: %v", err)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "", "render mode, overrides the config (blackout, scene, show, group-debug)")
	cmd.Flags().UintSliceVarP(&opts.tiles, "tile", "t", nil, "tile ids to toggle on at startup")
	cmd.Flags().Uint64Var(&opts.palette, "palette", 0, "palette id to activate at startup")
	return cmd
}

// Run starts the render loop and the DMX worker and blocks until interrupted.
func Run(ctx context.Context, opts options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logger.GetProjectLogger()

	cfg, err := config.NewConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.mode != "" {
		cfg.Mode = opts.mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	log.Info("Initializing project...")
	metronome := rhythm.NewMetronome(clock.RealClock{})
	metronome.SetTempo(cfg.Tempo)
	m := master.NewMaster(clock.RealClock{}, config.NewDemoProject(metronome.Snapshot()))

	for _, id := range opts.tiles {
		if _, err := m.ToggleTile(uint64(id)); err != nil {
			return err
		}
	}
	if opts.palette != 0 {
		if err := m.SetActivePalette(opts.palette, 0); err != nil {
			return err
		}
	}

	wg := sync.WaitGroup{}
	frames := output.NewFrames()

	log.Info("Starting render loop...")
	loop := engine.NewLoop(engine.NewRenderer(), m, frames, clock.RealClock{}, engine.LoopOptions{
		FPS:       cfg.FPS,
		Mode:      cfg.RenderMode(),
		GroupID:   cfg.DebugGroup,
		Universes: cfg.Universes,
	})
	wg.Add(1)
	go loop.Run(ctx, &wg)

	// configure OLA for DMX output
	log.Info("Connecting to OLA...")
	client, err := gola.New(cfg.OLAAddress)
	if err != nil {
		log.Errorf("could not connect to OLA: %v", err)
	} else {
		// the worker closes the client on shutdown
		wg.Add(1)
		go output.SendDMXWorker(ctx, client, cfg.OLATick, frames, &wg)
	}

	// handle CTRL+C interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Println("shutting down lumen")
	cancel()
	wg.Wait()
	return nil
}
