package tile

import (
	"testing"

	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var beat = rhythm.BeatMetadata{LengthMs: 500}

func fading() *project.Tile {
	return &project.Tile{
		Transition: project.StartFadeIn{Ms: 0},
		FadeIn:     project.Ms(1000),
		FadeOut:    project.Ms(1000),
	}
}

func TestToMs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 250.0, ToMs(project.Ms(250), beat))
	assert.Equal(t, 2000.0, ToMs(project.Beats(4), beat))
	assert.Equal(t, 0.0, ToMs(project.Duration{}, beat))
}

func TestDurationMs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 500.0, DurationMs(&project.Tile{}, beat))
	assert.Equal(t, 1500.0, DurationMs(&project.Tile{Duration: project.Beats(3)}, beat))
	assert.Equal(t, 800.0, DurationMs(&project.Tile{Duration: project.Ms(800)}, beat))
	assert.Equal(t, 4000.0, DurationMs(&project.Tile{Description: project.Sequence{NativeBeats: 8}}, beat))
}

func TestToggleIsContinuous(t *testing.T) {
	t.Parallel()

	tl := fading()

	amount, ok := BlendAmount(tl, beat, 400)
	require.True(t, ok)
	require.InDelta(t, 0.4, amount, 1e-9)

	changed, enabled := Toggle(tl, beat, 400)
	assert.True(t, changed)
	assert.False(t, enabled)
	assert.Equal(t, project.StartFadeOut{Ms: -200}, tl.Transition)

	amount, ok = BlendAmount(tl, beat, 400)
	require.True(t, ok)
	assert.InDelta(t, 0.4, amount, 1e-9)

	amount, ok = BlendAmount(tl, beat, 700)
	require.True(t, ok)
	assert.InDelta(t, 0.1, amount, 1e-9)

	_, ok = BlendAmount(tl, beat, 1000)
	assert.False(t, ok)

	// and back on again halfway through the fade out
	changed, enabled = Toggle(tl, beat, 550)
	assert.True(t, changed)
	assert.True(t, enabled)
	assert.Equal(t, project.StartFadeIn{Ms: 300}, tl.Transition)

	amount, ok = BlendAmount(tl, beat, 550)
	require.True(t, ok)
	assert.InDelta(t, 0.25, amount, 1e-9)
}

func TestToggleInBeats(t *testing.T) {
	t.Parallel()

	tl := &project.Tile{
		Transition: project.StartFadeIn{Ms: 1000},
		FadeIn:     project.Beats(2),
		FadeOut:    project.Beats(1),
	}
	Toggle(tl, beat, 1500)
	// half faded in, so the 500ms fade out is back-dated by 250ms
	assert.Equal(t, project.StartFadeOut{Ms: 1250}, tl.Transition)
}

func TestToggleFromUnset(t *testing.T) {
	t.Parallel()

	tl := &project.Tile{FadeIn: project.Ms(100), FadeOut: project.Ms(100)}
	assert.False(t, Enabled(tl))

	changed, enabled := Toggle(tl, beat, 5000)
	assert.False(t, changed)
	assert.False(t, enabled)
	assert.Equal(t, project.StartFadeOut{Ms: 0}, tl.Transition)
	_, ok := BlendAmount(tl, beat, 5000)
	assert.False(t, ok)

	assert.True(t, Enabled(tl))
	changed, enabled = Toggle(tl, beat, 5000)
	assert.True(t, changed)
	assert.True(t, enabled)
	assert.Equal(t, project.StartFadeIn{Ms: 5000}, tl.Transition)
}

func TestToggleFromAbsolute(t *testing.T) {
	t.Parallel()

	// a fader pulled nearly down counts as off, so one toggle lights the tile
	low := &project.Tile{FadeIn: project.Ms(100), FadeOut: project.Ms(100), Transition: project.AbsoluteStrength{Value: 0.05}}
	assert.True(t, Enabled(low))
	changed, enabled := Toggle(low, beat, 10000)
	assert.True(t, changed)
	assert.True(t, enabled)
	assert.Equal(t, project.StartFadeIn{Ms: 10000}, low.Transition)
	assert.Equal(t, 1.0, ActiveAmount(low, beat, 10000))
	amount, ok := BlendAmount(low, beat, 10100)
	assert.True(t, ok)
	assert.Equal(t, 1.0, amount)

	high := &project.Tile{Transition: project.AbsoluteStrength{Value: 0.5}}
	assert.False(t, Enabled(high))
	changed, enabled = Toggle(high, beat, 10000)
	assert.False(t, changed)
	assert.False(t, enabled)
	assert.Equal(t, project.StartFadeOut{Ms: 0}, high.Transition)
}

func TestToggleRestartsOneShots(t *testing.T) {
	t.Parallel()

	tl := &project.Tile{OneShot: true, Duration: project.Ms(1000), Transition: project.StartFadeIn{Ms: 100}}
	assert.True(t, Enabled(tl))

	changed, enabled := Toggle(tl, beat, 600)
	assert.True(t, changed)
	assert.True(t, enabled)
	assert.Equal(t, project.StartFadeIn{Ms: 600}, tl.Transition)
}

func TestActiveAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, ActiveAmount(fading(), beat, 10))
	assert.Equal(t, 0.0, ActiveAmount(&project.Tile{Transition: project.StartFadeOut{Ms: 0}}, beat, 10))
	assert.Equal(t, 0.0, ActiveAmount(&project.Tile{}, beat, 10))
	assert.Equal(t, 0.7, ActiveAmount(&project.Tile{Transition: project.AbsoluteStrength{Value: 0.7}}, beat, 10))

	shot := &project.Tile{OneShot: true, Duration: project.Beats(2), Transition: project.StartFadeIn{Ms: 100}}
	assert.Equal(t, 1.0, ActiveAmount(shot, beat, 1099))
	assert.Equal(t, 0.0, ActiveAmount(shot, beat, 1100))
}

func TestBlendAmount(t *testing.T) {
	t.Parallel()

	abs := &project.Tile{Transition: project.AbsoluteStrength{Value: 0.7}}
	for _, now := range []int64{0, 1, 1e9} {
		amount, ok := BlendAmount(abs, beat, now)
		assert.True(t, ok)
		assert.Equal(t, 0.7, amount)
	}

	_, ok := BlendAmount(&project.Tile{Transition: project.AbsoluteStrength{}}, beat, 0)
	assert.False(t, ok)

	_, ok = BlendAmount(&project.Tile{}, beat, 0)
	assert.False(t, ok)

	// no fade in means full strength straight away
	amount, ok := BlendAmount(&project.Tile{Transition: project.StartFadeIn{Ms: 50}}, beat, 50)
	assert.True(t, ok)
	assert.Equal(t, 1.0, amount)

	_, ok = BlendAmount(&project.Tile{OneShot: true, Transition: project.StartFadeOut{Ms: 50}, FadeOut: project.Ms(1000)}, beat, 60)
	assert.False(t, ok)
}

func TestSince(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 30.0, Since(&project.Tile{Transition: project.StartFadeIn{Ms: 70}}, 100))
	assert.Equal(t, 60.0, Since(&project.Tile{Transition: project.StartFadeOut{Ms: 40}}, 100))
	assert.Equal(t, 0.0, Since(&project.Tile{Transition: project.AbsoluteStrength{Value: 1}}, 100))
}
