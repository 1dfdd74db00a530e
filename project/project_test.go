package project

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScene() *Scene {
	return &Scene{
		Name: "main",
		TileMap: []TileMapEntry{
			{ID: 1, Tile: &Tile{Name: "wash", Transition: StartFadeIn{Ms: 10}}},
			{ID: 2, Tile: &Tile{Name: "chase", Transition: TransitionUnset{}}},
		},
		ColorPalettes: map[uint64]ColorPalette{
			1: {Name: "warm", Primary: &Color{Red: 1}},
		},
		ActiveColorPalette: 1,
	}
}

func TestCloneIsolatesScenes(t *testing.T) {
	t.Parallel()

	p := &Project{Scenes: map[uint64]*Scene{1: testScene()}, ActiveScene: 1}
	c := p.Clone()

	entry, ok := c.Scenes[1].Entry(2)
	require.True(t, ok)
	entry.Tile.Transition = StartFadeOut{Ms: 99}
	c.Scenes[1].ColorPalettes[2] = ColorPalette{Name: "cold"}
	c.Scenes[1].ActiveColorPalette = 2

	orig, ok := p.Scenes[1].Entry(2)
	require.True(t, ok)
	assert.Equal(t, TransitionUnset{}, orig.Tile.Transition)
	assert.Len(t, p.Scenes[1].ColorPalettes, 1)
	assert.Equal(t, uint64(1), p.Scenes[1].ActiveColorPalette)
}

func TestSceneEntry(t *testing.T) {
	t.Parallel()

	s := testScene()
	_, ok := s.Entry(3)
	assert.False(t, ok)

	e, ok := s.Entry(1)
	require.True(t, ok)
	assert.Equal(t, "wash", e.Tile.Name)
}

func TestOutputTargetKey(t *testing.T) {
	t.Parallel()

	a := FixtureTarget(QualifiedFixtureID{Patch: 1, Output: 2, Fixture: 3}, QualifiedFixtureID{Patch: 0, Output: 1, Fixture: 1})
	b := FixtureTarget(QualifiedFixtureID{Patch: 0, Output: 1, Fixture: 1}, QualifiedFixtureID{Patch: 1, Output: 2, Fixture: 3})

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, GroupTarget(1).Key(), GroupTarget(2).Key())
	assert.False(t, OutputTarget{}.IsSet())
	assert.True(t, GroupTarget(GroupAllID).IsSet())
}

func TestLightLayerAt(t *testing.T) {
	t.Parallel()

	first := &Effect{StartMs: 0, EndMs: 100}
	second := &Effect{StartMs: 100, EndMs: 200}
	layer := LightLayer{Effects: []*Effect{first, nil, second}}

	assert.Same(t, first, layer.At(0))
	assert.Same(t, second, layer.At(100))
	assert.Nil(t, layer.At(200))
	assert.Equal(t, 100.0, second.Length())
}

func TestInvariantError(t *testing.T) {
	t.Parallel()

	err := Invariantf("ramp effect without %s", "stateEnd")
	require.Error(t, err)
	assert.True(t, IsInvariantViolation(err))
	assert.Contains(t, err.Error(), "ramp effect without stateEnd")

	assert.True(t, IsInvariantViolation(fmt.Errorf("tile 3: %w", InvariantError{Reason: "x"})))
	assert.False(t, IsInvariantViolation(fmt.Errorf("plain")))
}
