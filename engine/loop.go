package engine

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/robmorgan/lumen/logger"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/project"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Source hands the loop the project snapshot to render on each tick.
type Source interface {
	Snapshot() *project.Project
}

// LoopOptions configures a Loop.
type LoopOptions struct {
	FPS     int
	Mode    Mode
	GroupID uint64

	// Universes overrides the universe a DMX output is sent to.
	Universes map[uint64]int
}

// Loop renders every DMX output of the active patch at a fixed rate and
// leaves the bytes in a frame buffer for the DMX worker.
type Loop struct {
	renderer *Renderer
	source   Source
	frames   *output.Frames
	clock    clock.PassiveClock
	opts     LoopOptions

	frame uint32
	// started is when the loop was created. Shows play from here.
	started int64
}

// NewLoop creates a render loop.
func NewLoop(r *Renderer, src Source, frames *output.Frames, clk clock.PassiveClock, opts LoopOptions) *Loop {
	if opts.FPS <= 0 {
		opts.FPS = 40
	}
	return &Loop{
		renderer: r,
		source:   src,
		frames:   frames,
		clock:    clk,
		opts:     opts,
		started:  clk.Now().UnixMilli(),
	}
}

// GetTickRate returns the time between two frames.
func (l *Loop) GetTickRate() time.Duration {
	return time.Second / time.Duration(l.opts.FPS)
}

// Tick renders one frame. An output that fails to render keeps its previous frame.
func (l *Loop) Tick() {
	p := l.source.Snapshot()
	now := l.clock.Now().UnixMilli()
	if l.opts.Mode == ModeShow {
		now -= l.started
	}

	for _, id := range p.OutputIDs() {
		o, _ := p.Output(id)
		cfg, ok := o.Config.(project.DmxOutput)
		if !ok {
			continue
		}

		out, err := l.renderer.Render(p, Request{
			Mode:     l.opts.Mode,
			OutputID: id,
			Frame:    l.frame,
			Now:      now + o.LatencyMs,
			GroupID:  l.opts.GroupID,
		})
		if err != nil {
			logger.GetProjectLogger().
				WithFields(logrus.Fields{"output": id, "frame": l.frame, "mode": l.opts.Mode}).
				Errorf("could not render frame: %v", err)
			continue
		}

		universe := cfg.Universe
		if u, ok := l.opts.Universes[id]; ok {
			universe = u
		}
		l.frames.Store(universe, out.(*output.Universe).Bytes())
	}
	l.frame++
}

// Run ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context, wg *sync.WaitGroup) error {
	defer wg.Done()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := logger.GetProjectLogger()
	log.WithFields(logrus.Fields{"fps": l.opts.FPS, "mode": l.opts.Mode}).Info("render loop started")

	ticker := time.NewTicker(l.GetTickRate())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("render loop shutdown")
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}
