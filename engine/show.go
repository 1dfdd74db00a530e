package engine

import (
	"fmt"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/lumen/fixture"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/palette"
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
)

// RenderShow renders the selected show's light tracks at show time t.
func (r *Renderer) RenderShow(t int64, frame uint32, p *project.Project, outputID uint64) (output.Writable, error) {
	out, err := r.NewOutput(p, outputID)
	if err != nil {
		return nil, err
	}
	show, found := p.Shows[p.SelectedShow]
	if !found || show == nil {
		return nil, goerrors.WithStackTrace(fmt.Errorf("could not find show %d", p.SelectedShow))
	}
	if show.Beat == nil {
		return nil, goerrors.WithStackTrace(fmt.Errorf("show %q has no beat metadata", show.Name))
	}

	pal := palette.Default()
	if show.ColorPalette != nil {
		pal = *show.ColorPalette
	}

	absoluteT := float64(t + p.TimingOffsetMs)
	fc := frameContext{
		project:   p,
		devices:   fixture.NewDeviceCache(p, outputID, r.tables),
		palette:   pal,
		beat:      *show.Beat,
		frame:     frame,
		absoluteT: absoluteT,
		beatT:     absoluteT - float64(show.Beat.OffsetMs),
	}
	if err := fc.renderTracks(out, show.LightTracks, absoluteT, *show.Beat); err != nil {
		return nil, err
	}
	return out, nil
}

// RenderGroupDebug lights every member of a group at full dimmer, each in its
// own hue, so fixtures can be told apart while patching.
func (r *Renderer) RenderGroupDebug(p *project.Project, groupID uint64, outputID uint64) (output.Writable, error) {
	out, err := blackout(p, outputID)
	if err != nil {
		return nil, err
	}

	devices := fixture.NewDeviceCache(p, outputID, r.tables)
	ids := fixture.ResolveGroup(p, groupID)
	for i, id := range ids {
		d, ok := devices.Get(project.FixtureTarget(id))
		if !ok {
			continue
		}
		d.SetAmount(out, profile.ChannelTypeDimmer, 1)
		d.SetColor(out, palette.Hue(float64(i)/float64(len(ids))))
	}
	return out, nil
}
