package engine

import (
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
)

const (
	dmxOutput  uint64 = 1
	wledOutput uint64 = 2

	parGroup  uint64 = 1
	wledGroup uint64 = 2

	moverID uint64 = 5
)

var (
	red   = project.Color{Red: 1}
	green = project.Color{Green: 1}
	blue  = project.Color{Blue: 1}

	beat = rhythm.BeatMetadata{LengthMs: 500}
)

// testProject patches four pars (dimmer, red, green, blue) at offsets 0, 4, 8
// and 12 of universe 1, a mover (pan, dimmer, colour wheel) at offset 20 and a
// WLED controller with two segments on output 2.
func testProject() *project.Project {
	fixtures := map[uint64]project.PhysicalDmxFixture{
		moverID: {Name: "mover", DefinitionID: 2, Mode: "3ch", ChannelOffset: 20},
	}
	var pars []project.OutputTarget
	for i := uint64(1); i <= 4; i++ {
		fixtures[i] = project.PhysicalDmxFixture{DefinitionID: 1, Mode: "4ch", ChannelOffset: int(i-1) * 4}
		pars = append(pars, project.FixtureTarget(qid(dmxOutput, i)))
	}

	return &project.Project{
		ActivePatch: 1,
		Definitions: map[uint64]profile.Profile{
			1: {Name: "par", Modes: map[string]profile.Mode{
				"4ch": {Name: "4ch", Channels: map[int]profile.Channel{
					1: {Type: profile.ChannelTypeDimmer},
					2: {Type: profile.ChannelTypeRed},
					3: {Type: profile.ChannelTypeGreen},
					4: {Type: profile.ChannelTypeBlue},
				}},
			}},
			2: {Name: "mover", Modes: map[string]profile.Mode{
				"3ch": {Name: "3ch", Channels: map[int]profile.Channel{
					1: {Type: profile.ChannelTypePan, Mapping: profile.AngleMapping{MinDegrees: -270, MaxDegrees: 270}},
					2: {Type: profile.ChannelTypeDimmer, DefaultValue: 255},
					3: {Type: profile.ChannelTypeColorWheel, Mapping: profile.ColorWheelMapping{Slots: []profile.ColorWheelSlot{
						{Name: "open", Red: 1, Green: 1, Blue: 1, Value: 0},
						{Name: "red", Red: 1, Value: 10},
						{Name: "blue", Blue: 1, Value: 20},
					}}},
				}},
			}},
		},
		Patches: map[uint64]project.Patch{
			1: {Outputs: map[uint64]project.Output{
				dmxOutput: {Name: "dmx", Config: project.DmxOutput{Universe: 1, Fixtures: fixtures}},
				wledOutput: {Name: "strip", Config: project.WledOutput{Segments: map[uint32]project.WledSegment{
					0: {Name: "left", DefaultEffect: 3, DefaultPalette: 2, DefaultSpeed: 0.5, DefaultBrightness: 0.8},
					1: {Name: "right", DefaultBrightness: 1},
				}}},
			}},
		},
		Groups: map[uint64]project.Group{
			parGroup: {Name: "pars", Targets: pars},
			wledGroup: {Name: "strip", Targets: []project.OutputTarget{
				project.FixtureTarget(qid(wledOutput, 0)),
				project.FixtureTarget(qid(wledOutput, 1)),
			}},
		},
		Scenes: map[uint64]*project.Scene{
			1: {
				Name: "main",
				ColorPalettes: map[uint64]project.ColorPalette{
					1: {Name: "rgb", Primary: &red, Secondary: &green, Tertiary: &blue},
					2: {Name: "bgr", Primary: &blue, Secondary: &green, Tertiary: &red},
				},
				ActiveColorPalette:     1,
				LastActiveColorPalette: 1,
			},
		},
		ActiveScene: 1,
		LiveBeat:    beat,
	}
}

func qid(outputID, fixture uint64) project.QualifiedFixtureID {
	return project.QualifiedFixtureID{Patch: 1, Output: outputID, Fixture: fixture}
}

// withTiles places tiles on the active scene, each at its own grid cell.
func withTiles(p *project.Project, tiles ...*project.Tile) *project.Project {
	scene := p.Scenes[p.ActiveScene]
	for i, t := range tiles {
		scene.TileMap = append(scene.TileMap, project.TileMapEntry{ID: uint64(i + 1), X: i, Tile: t})
	}
	return p
}

func staticTile(target project.OutputTarget, state *project.FixtureState) *project.Tile {
	return &project.Tile{
		Name:       "static",
		Transition: project.AbsoluteStrength{Value: 1},
		Duration:   project.Ms(1000),
		Description: project.EffectGroup{Channels: []project.EffectChannel{{
			Target: target,
			Effect: &project.Effect{StartMs: 0, EndMs: 1000, Kind: project.StaticEffect{State: state}},
		}}},
	}
}

func dimmerRamp() *project.Effect {
	return &project.Effect{StartMs: 0, EndMs: 1000, Kind: project.RampEffect{
		StateStart: &project.FixtureState{Dimmer: project.Ptr(0.0)},
		StateEnd:   &project.FixtureState{Dimmer: project.Ptr(1.0)},
	}}
}

func parDimmers(u *output.Universe) []float64 {
	return []float64{u.Get(0), u.Get(4), u.Get(8), u.Get(12)}
}
