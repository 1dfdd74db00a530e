package fixture

import (
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
)

const (
	defRGBW uint64 = iota + 1
	defRGB
	defCMY
	defMover
)

func testDefinitions() map[uint64]profile.Profile {
	return map[uint64]profile.Profile{
		defRGBW: {Name: "rgbw par", Modes: map[string]profile.Mode{
			"6ch": {Name: "6ch", Channels: map[int]profile.Channel{
				1: {Type: profile.ChannelTypeDimmer},
				2: {Type: profile.ChannelTypeRed},
				3: {Type: profile.ChannelTypeGreen},
				4: {Type: profile.ChannelTypeBlue},
				5: {Type: profile.ChannelTypeWhite},
				6: {Type: profile.ChannelTypeStrobe, DefaultValue: 7, Mapping: profile.AmountMapping{MinValue: 200, MaxValue: 400}},
			}},
		}},
		defRGB: {Name: "rgb par", Modes: map[string]profile.Mode{
			"3ch": {Name: "3ch", Channels: map[int]profile.Channel{
				1: {Type: profile.ChannelTypeRed},
				2: {Type: profile.ChannelTypeGreen},
				3: {Type: profile.ChannelTypeBlue},
			}},
		}},
		defCMY: {Name: "cmy wash", Modes: map[string]profile.Mode{
			"3ch": {Name: "3ch", Channels: map[int]profile.Channel{
				1: {Type: profile.ChannelTypeCyan},
				2: {Type: profile.ChannelTypeMagenta},
				3: {Type: profile.ChannelTypeYellow},
			}},
		}},
		defMover: {Name: "spot", Modes: map[string]profile.Mode{
			"5ch": {Name: "5ch", Channels: map[int]profile.Channel{
				1: {Type: profile.ChannelTypePan, Mapping: profile.AngleMapping{MinDegrees: -270, MaxDegrees: 270}},
				2: {Type: profile.ChannelTypePan.Fine()},
				3: {Type: profile.ChannelTypeTilt, DefaultValue: 45, Mapping: profile.AngleMapping{MinDegrees: -90, MaxDegrees: 90}},
				4: {Type: profile.ChannelTypeColorWheel, Mapping: profile.ColorWheelMapping{Slots: []profile.ColorWheelSlot{
					{Name: "white", Red: 1, Green: 1, Blue: 1, Value: 0},
					{Name: "red", Red: 1, Value: 10},
					{Name: "blue", Blue: 1, Value: 20},
				}}},
				5: {Type: profile.ChannelTypeDimmer, DefaultValue: 255},
			}},
		}},
	}
}

func fid(patch, output, fixture uint64) project.QualifiedFixtureID {
	return project.QualifiedFixtureID{Patch: patch, Output: output, Fixture: fixture}
}

// testProject patches two DMX outputs and one WLED output on patch 1.
// Output 1 holds fixtures 1 (rgbw at 0), 2 (rgb at 10) and 3 (mover at 20),
// output 2 holds fixture 1 (cmy at 0), output 3 holds WLED segments 0 and 1.
func testProject() *project.Project {
	return &project.Project{
		ActivePatch: 1,
		Definitions: testDefinitions(),
		Patches: map[uint64]project.Patch{
			1: {Outputs: map[uint64]project.Output{
				1: {Config: project.DmxOutput{Universe: 1, Fixtures: map[uint64]project.PhysicalDmxFixture{
					3: {Name: "mover", DefinitionID: defMover, Mode: "5ch", ChannelOffset: 20,
						AngleOffsets: map[profile.ChannelType]float64{profile.ChannelTypePan: 90}},
					1: {Name: "rgbw", DefinitionID: defRGBW, Mode: "6ch", ChannelOffset: 0},
					2: {Name: "rgb", DefinitionID: defRGB, Mode: "3ch", ChannelOffset: 10},
					4: {Name: "broken", DefinitionID: 99, Mode: "1ch", ChannelOffset: 40},
				}}},
				2: {Config: project.DmxOutput{Universe: 2, Fixtures: map[uint64]project.PhysicalDmxFixture{
					1: {Name: "cmy", DefinitionID: defCMY, Mode: "3ch", ChannelOffset: 0},
				}}},
				3: {Config: project.WledOutput{Segments: map[uint32]project.WledSegment{
					1: {Name: "right"},
					0: {Name: "left"},
				}}},
			}},
			2: {Outputs: map[uint64]project.Output{}},
		},
		Groups: map[uint64]project.Group{
			1: {Name: "front", Targets: []project.OutputTarget{
				project.FixtureTarget(fid(1, 1, 2), fid(2, 7, 7)),
				project.GroupTarget(2),
			}},
			2: {Name: "nested", Targets: []project.OutputTarget{
				project.FixtureTarget(fid(1, 1, 1)),
				project.GroupTarget(1),
				project.FixtureTarget(fid(1, 1, 2)),
				project.FixtureTarget(fid(1, 2, 1)),
			}},
			3: {Name: "everything", Targets: []project.OutputTarget{project.GroupTarget(project.GroupAllID)}},
			4: {Name: "old patch only", Targets: []project.OutputTarget{project.FixtureTarget(fid(2, 1, 1))}},
			5: {Name: "strip", Targets: []project.OutputTarget{
				project.FixtureTarget(fid(1, 3, 0)),
				project.FixtureTarget(fid(1, 3, 1)),
			}},
		},
	}
}
