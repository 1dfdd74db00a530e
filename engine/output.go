package engine

import (
	"fmt"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/lumen/fixture"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/project"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Renderer turns project snapshots into output frames. It is safe to share
// between goroutines; the only state it keeps is the channel table cache.
type Renderer struct {
	tables *fixture.TableCache
}

// NewRenderer creates a renderer with an empty table cache.
func NewRenderer() *Renderer {
	return &Renderer{tables: fixture.NewTableCache()}
}

// NewOutput builds the idle frame of an output of the active patch: DMX
// channels hold their configured defaults and WLED segments their default
// effect, palette, speed and brightness.
func (r *Renderer) NewOutput(p *project.Project, outputID uint64) (output.Writable, error) {
	o, found := p.Output(outputID)
	if !found {
		return nil, goerrors.WithStackTrace(fmt.Errorf("output %d is not part of patch %d", outputID, p.ActivePatch))
	}

	switch cfg := o.Config.(type) {
	case project.DmxOutput:
		u := output.NewUniverse()
		ids := maps.Keys(cfg.Fixtures)
		slices.Sort(ids)
		for _, id := range ids {
			// fixtures with a broken definition have no device either
			table, err := r.tables.Get(p.Definitions, cfg.Fixtures[id])
			if err != nil {
				continue
			}
			table.ApplyDefaults(u)
		}
		return u, nil
	case project.WledOutput:
		w := output.NewWled()
		for id, s := range cfg.Segments {
			w.Segments[id] = output.Segment{
				Effect:     s.DefaultEffect,
				Palette:    s.DefaultPalette,
				Speed:      s.DefaultSpeed,
				Brightness: s.DefaultBrightness,
			}
		}
		return w, nil
	default:
		return nil, project.Invariantf("output %d has unknown config %T", outputID, o.Config)
	}
}

// blackout builds an output with every channel and segment dark.
func blackout(p *project.Project, outputID uint64) (output.Writable, error) {
	o, found := p.Output(outputID)
	if !found {
		return nil, goerrors.WithStackTrace(fmt.Errorf("output %d is not part of patch %d", outputID, p.ActivePatch))
	}

	switch cfg := o.Config.(type) {
	case project.DmxOutput:
		return output.NewUniverse(), nil
	case project.WledOutput:
		w := output.NewWled()
		for id := range cfg.Segments {
			w.Segments[id] = output.Segment{}
		}
		return w, nil
	default:
		return nil, project.Invariantf("output %d has unknown config %T", outputID, o.Config)
	}
}
