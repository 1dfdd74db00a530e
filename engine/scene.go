package engine

import (
	"fmt"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/lumen/effect"
	"github.com/robmorgan/lumen/engine/scale"
	"github.com/robmorgan/lumen/fixture"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/palette"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
	"github.com/robmorgan/lumen/tile"
	"golang.org/x/exp/slices"
)

// SequenceResolution is the number of sequence time units per beat.
const SequenceResolution = 7200

// frameContext holds what every tile of one frame shares.
type frameContext struct {
	project *project.Project
	devices *fixture.DeviceCache
	palette project.ColorPalette
	beat    rhythm.BeatMetadata
	frame   uint32

	// absoluteT is the wall clock shifted by the project timing offset.
	absoluteT float64
	// beatT is absoluteT relative to beat zero.
	beatT float64
}

// RenderScene renders the active scene onto one output at wall-clock ms now.
func (r *Renderer) RenderScene(now int64, beat rhythm.BeatMetadata, frame uint32, p *project.Project, outputID uint64) (output.Writable, error) {
	out, err := r.NewOutput(p, outputID)
	if err != nil {
		return nil, err
	}
	scene, found := p.Scenes[p.ActiveScene]
	if !found || scene == nil {
		return nil, goerrors.WithStackTrace(fmt.Errorf("could not find scene %d", p.ActiveScene))
	}

	pal, err := ScenePalette(scene, now)
	if err != nil {
		return nil, err
	}

	absoluteT := now + p.TimingOffsetMs
	fc := frameContext{
		project:   p,
		devices:   fixture.NewDeviceCache(p, outputID, r.tables),
		palette:   pal,
		beat:      beat,
		frame:     frame,
		absoluteT: float64(absoluteT),
		beatT:     float64(absoluteT - beat.OffsetMs),
	}

	for _, entry := range SortTiles(scene.TileMap) {
		if entry.Tile == nil {
			continue
		}
		if err := fc.renderTile(out, entry.Tile, absoluteT); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ScenePalette blends the scene's previous palette into its active one.
// Unknown palette ids fall back to the default palette.
func ScenePalette(s *project.Scene, now int64) (project.ColorPalette, error) {
	lookup := func(id uint64) project.ColorPalette {
		if p, found := s.ColorPalettes[id]; found {
			return p
		}
		return palette.Default()
	}

	t := 1.0
	if s.ColorPaletteTransitionDurationMs > 0 {
		t = scale.Unit(float64(now-s.ColorPaletteStartTransition) / s.ColorPaletteTransitionDurationMs)
	}
	return palette.Interpolate(lookup(s.LastActiveColorPalette), lookup(s.ActiveColorPalette), t)
}

// SortTiles orders tiles for painting: ascending priority, then bottom to top
// and right to left. Later tiles are drawn over earlier ones.
func SortTiles(entries []project.TileMapEntry) []project.TileMapEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b project.TileMapEntry) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Y != b.Y {
			return a.Y > b.Y
		}
		return a.X > b.X
	})
	return sorted
}

func (fc frameContext) renderTile(out output.Writable, t *project.Tile, now int64) error {
	amount, visible := tile.BlendAmount(t, fc.beat, now)
	if !visible {
		return nil
	}

	before := out.Clone()
	after := out.Clone()

	since := tile.Since(t, now)
	switch d := t.Description.(type) {
	case project.EffectGroup:
		if err := fc.renderEffectGroup(after, t, d, since); err != nil {
			return err
		}
	case project.Sequence:
		if err := fc.renderSequence(after, t, d, since); err != nil {
			return err
		}
	default:
		return project.Invariantf("tile %q has unknown description %T", t.Name, t.Description)
	}

	out.Interpolate(before, after, amount)
	return nil
}

func (fc frameContext) effectContext(out output.Writable, target project.OutputTarget) effect.Context {
	return effect.Context{
		Output:  out,
		Target:  target,
		Devices: fc.devices,
		Palette: fc.palette,
		Beat:    fc.beat,
		Frame:   fc.frame,
		ClockT:  fc.absoluteT,
		GlobalT: fc.absoluteT,
	}
}

func (fc frameContext) renderEffectGroup(out output.Writable, t *project.Tile, g project.EffectGroup, since float64) error {
	for _, ch := range g.Channels {
		if !ch.Target.IsSet() {
			continue
		}
		if ch.Effect == nil {
			return project.Invariantf("tile %q has a channel without an effect", t.Name)
		}

		effectT, playing, err := fc.effectGroupT(t, ch.Effect.Length(), since)
		if err != nil {
			return err
		}
		if !playing {
			continue
		}

		ctx := fc.effectContext(out, ch.Target)
		ctx.T = ch.Effect.StartMs + effectT
		if err := effect.Apply(ctx, ch.Effect); err != nil {
			return err
		}
	}
	return nil
}

// effectGroupT maps tile time onto an effect of the given length. It reports
// false once a one-shot has played through.
func (fc frameContext) effectGroupT(t *project.Tile, length, since float64) (float64, bool, error) {
	if t.OneShot {
		duration := tile.DurationMs(t, fc.beat)
		if duration <= 0 {
			return 0, false, nil
		}
		effectT := since * length / duration
		return effectT, effectT <= length, nil
	}

	switch t.Duration.Unit {
	case project.DurationBeats:
		window := fc.beat.BeatsToMs(t.Duration.Amount)
		if window <= 0 {
			return 0, false, nil
		}
		return fc.beatT * length / window, true, nil
	case project.DurationMs:
		if t.Duration.Amount <= 0 {
			return 0, false, nil
		}
		return fc.absoluteT * length / t.Duration.Amount, true, nil
	default:
		return 0, false, project.Invariantf("looping tile %q has no duration", t.Name)
	}
}

func (fc frameContext) renderSequence(out output.Writable, t *project.Tile, s project.Sequence, since float64) error {
	seqT, playing := fc.sequenceT(t, s, since)
	if !playing {
		return nil
	}
	return fc.renderTracks(out, s.LightTracks, seqT, rhythm.BeatMetadata{LengthMs: SequenceResolution})
}

// sequenceT maps tile time onto sequence time, in SequenceResolution units
// per beat. It reports false once a one-shot has played through.
func (fc frameContext) sequenceT(t *project.Tile, s project.Sequence, since float64) (float64, bool) {
	if s.NativeBeats <= 0 || !fc.beat.Valid() {
		return 0, false
	}
	nativeBeats := float64(s.NativeBeats)
	length := SequenceResolution * nativeBeats
	byMs := t.Duration.Unit == project.DurationMs
	if byMs && t.Duration.Amount <= 0 {
		return 0, false
	}

	if t.OneShot {
		seqT := since * SequenceResolution / fc.beat.LengthMs
		if byMs {
			seqT = since * SequenceResolution * nativeBeats / t.Duration.Amount
		}
		return seqT, seqT <= length
	}

	if byMs {
		return scale.Mod(fc.absoluteT*SequenceResolution*nativeBeats/t.Duration.Amount, length), true
	}
	return scale.Mod(fc.beatT, fc.beat.LengthMs*nativeBeats) * SequenceResolution / fc.beat.LengthMs, true
}

// renderTracks applies, for every layer of every track, the effect under t.
func (fc frameContext) renderTracks(out output.Writable, tracks []project.LightTrack, t float64, beat rhythm.BeatMetadata) error {
	for _, track := range tracks {
		if !track.Target.IsSet() {
			continue
		}
		if _, ok := fc.devices.Get(track.Target); !ok {
			continue
		}

		ctx := fc.effectContext(out, track.Target)
		ctx.Beat = beat
		ctx.T = t
		ctx.ClockT = t
		ctx.GlobalT = t
		for _, layer := range track.Layers {
			e := layer.At(t)
			if e == nil {
				continue
			}
			if err := effect.Apply(ctx, e); err != nil {
				return err
			}
		}
	}
	return nil
}
