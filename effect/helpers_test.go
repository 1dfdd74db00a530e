package effect

import (
	"github.com/robmorgan/lumen/fixture"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/palette"
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
)

const testGroup uint64 = 1

// testProject patches four 4 channel pars (dimmer, red, green, blue) at
// offsets 0, 4, 8 and 12 of output 1 and groups them as group 1.
func testProject() *project.Project {
	fixtures := map[uint64]project.PhysicalDmxFixture{}
	var members []project.OutputTarget
	for i := uint64(0); i < 4; i++ {
		fixtures[i+1] = project.PhysicalDmxFixture{DefinitionID: 1, Mode: "4ch", ChannelOffset: int(i) * 4}
		members = append(members, project.FixtureTarget(project.QualifiedFixtureID{Patch: 1, Output: 1, Fixture: i + 1}))
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
		},
		Patches: map[uint64]project.Patch{
			1: {Outputs: map[uint64]project.Output{
				1: {Config: project.DmxOutput{Universe: 1, Fixtures: fixtures}},
			}},
		},
		Groups: map[uint64]project.Group{
			testGroup: {Name: "pars", Targets: members},
		},
	}
}

func testContext(target project.OutputTarget) (Context, *output.Universe) {
	u := output.NewUniverse()
	return Context{
		Output:  u,
		Target:  target,
		Devices: fixture.NewDeviceCache(testProject(), 1, fixture.NewTableCache()),
		Palette: palette.Default(),
		Beat:    rhythm.BeatMetadata{LengthMs: 500},
	}, u
}

func fixtureTarget(id uint64) project.OutputTarget {
	return project.FixtureTarget(project.QualifiedFixtureID{Patch: 1, Output: 1, Fixture: id})
}

func dimmer(v float64) *project.FixtureState {
	return &project.FixtureState{Dimmer: project.Ptr(v)}
}

func dimmers(u *output.Universe) []float64 {
	return []float64{u.Get(0), u.Get(4), u.Get(8), u.Get(12)}
}
