package effect

import (
	"github.com/robmorgan/lumen/fixture"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/palette"
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
)

// Context is everything an effect needs to write one frame.
type Context struct {
	Output  output.Writable
	Target  project.OutputTarget
	Devices *fixture.DeviceCache
	Palette project.ColorPalette
	Beat    rhythm.BeatMetadata
	Frame   uint32

	// T is the effect-local time in ms, compared against the effect window.
	T float64
	// ClockT is the time on the beat clock's timeline.
	ClockT float64
	// GlobalT positions random effects.
	GlobalT float64
}

// Apply evaluates an effect against ctx.Output.
func Apply(ctx Context, e *project.Effect) error {
	if e == nil {
		return project.Invariantf("missing effect")
	}

	switch k := e.Kind.(type) {
	case project.StaticEffect:
		return ApplyState(ctx, k.State)
	case project.RampEffect:
		return applyRamp(ctx, e, k)
	case project.StrobeEffect:
		return Strobe(ctx, k)
	case project.RandomEffect:
		return applyRandom(ctx, k)
	default:
		return project.Invariantf("unknown effect kind %T", e.Kind)
	}
}

// ApplyState writes a fixture state to the target device. A target without a
// device on this output is skipped.
func ApplyState(ctx Context, s *project.FixtureState) error {
	if s == nil {
		return project.Invariantf("missing fixture state")
	}
	d, ok := ctx.Devices.Get(ctx.Target)
	if !ok {
		return nil
	}

	if s.Color != nil {
		c, err := palette.Resolve(s.Color, ctx.Palette)
		if err != nil {
			return err
		}
		d.SetColor(ctx.Output, c)
	}

	for _, a := range []struct {
		typ   profile.ChannelType
		value *float64
	}{
		{profile.ChannelTypePan, s.Pan},
		{profile.ChannelTypeTilt, s.Tilt},
	} {
		if a.value != nil {
			d.SetAngle(ctx.Output, a.typ, *a.value)
		}
	}

	for _, a := range []struct {
		typ   profile.ChannelType
		value *float64
	}{
		{profile.ChannelTypeDimmer, s.Dimmer},
		{profile.ChannelTypeStrobe, s.Strobe},
		{profile.ChannelTypeWidth, s.Width},
		{profile.ChannelTypeHeight, s.Height},
		{profile.ChannelTypeZoom, s.Zoom},
		{profile.ChannelTypeSpeed, s.Speed},
	} {
		if a.value != nil {
			d.SetAmount(ctx.Output, a.typ, *a.value)
		}
	}

	if s.WledEffect != nil {
		d.SetWledEffect(ctx.Output, *s.WledEffect)
	}
	if s.WledPalette != nil {
		d.SetWledPalette(ctx.Output, *s.WledPalette)
	}

	for _, c := range s.Channels {
		d.SetChannel(ctx.Output, c.Index, c.Value)
	}
	return nil
}

// forEachFixture evaluates fn once per member of a group target, each against
// a single fixture target. fn receives the member index and the member count.
func forEachFixture(ctx Context, fn func(ctx Context, i, total int) error) error {
	ids := ctx.Devices.Fixtures(ctx.Target)
	for i, id := range ids {
		member := ctx
		member.Target = project.FixtureTarget(id)
		if err := fn(member, i, len(ids)); err != nil {
			return err
		}
	}
	return nil
}
