package effect

import (
	"testing"

	"github.com/robmorgan/lumen/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrobeCycle(t *testing.T) {
	t.Parallel()

	s := project.StrobeEffect{StateA: dimmer(1), FramesA: 2, StateB: dimmer(0), FramesB: 3}
	want := []float64{255, 255, 0, 0, 0, 255, 255, 0, 0, 0}

	for frame, expected := range want {
		ctx, u := testContext(fixtureTarget(1))
		ctx.Frame = uint32(frame)
		require.NoError(t, Apply(ctx, &project.Effect{Kind: s}))
		assert.Equal(t, expected, u.Get(0), "frame %d", frame)
	}
}

func TestStrobeWithoutFrames(t *testing.T) {
	t.Parallel()

	s := project.StrobeEffect{StateA: dimmer(1), StateB: dimmer(0)}
	assert.Same(t, s.StateA, strobeState(s, 0))
	assert.Same(t, s.StateA, strobeState(s, 7))

	s.FramesB = 1
	assert.Same(t, s.StateB, strobeState(s, 3))
}
