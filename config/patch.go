package config

import (
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
)

const (
	clubPatch uint64 = 1

	dmxOutput   uint64 = 1
	stripOutput uint64 = 2
)

// Fixture ids of the club patch.
const (
	leftMiddlePar uint64 = iota + 1
	rightMiddlePar
	leftTopPar
	rightTopPar
	leftUplightPar
	rightUplightPar
	leftBeamBar
	rightBeamBar
	leftSpot
	rightSpot
	leftWash
	rightWash
)

// patchedFixture stores patch info for a dmx fixture. Address is the
// 1-based DMX start address.
type patchedFixture struct {
	id         uint64
	name       string
	address    int
	definition uint64
	mode       string
	angles     map[profile.ChannelType]float64
}

func (f patchedFixture) physical() project.PhysicalDmxFixture {
	return project.PhysicalDmxFixture{
		Name:          f.name,
		DefinitionID:  f.definition,
		Mode:          f.mode,
		ChannelOffset: f.address - 1,
		AngleOffsets:  f.angles,
	}
}

func patchFixtures() []patchedFixture {
	s := make([]patchedFixture, 0)

	s = append(s, patchFrontMiddlePars()...)
	s = append(s, patchFrontTopPars()...)
	s = append(s, patchUplightPars()...)
	s = append(s, patchBeamBars()...)
	s = append(s, patchSpotLights()...)
	s = append(s, patchWashLights()...)

	return s
}

func patchFrontMiddlePars() []patchedFixture {
	return []patchedFixture{
		{id: leftMiddlePar, name: "left_middle_par", address: 116, definition: shehdsPar, mode: "4ch"},
		{id: rightMiddlePar, name: "right_middle_par", address: 140, definition: shehdsPar, mode: "4ch"},
	}
}

func patchFrontTopPars() []patchedFixture {
	return []patchedFixture{
		{id: leftTopPar, name: "left_top_par", address: 68, definition: shehdsPar, mode: "4ch"},
		{id: rightTopPar, name: "right_top_par", address: 77, definition: shehdsPar, mode: "4ch"},
	}
}

func patchUplightPars() []patchedFixture {
	return []patchedFixture{
		{id: leftUplightPar, name: "left_uplight_par", address: 123, definition: shehdsPar, mode: "4ch"},
		{id: rightUplightPar, name: "right_uplight_par", address: 131, definition: shehdsPar, mode: "4ch"},
	}
}

func patchBeamBars() []patchedFixture {
	return []patchedFixture{
		{id: leftBeamBar, name: "left_beam_bar", address: 164, definition: shehdsBeamBar, mode: "9ch"},
		{id: rightBeamBar, name: "right_beam_bar", address: 58, definition: shehdsBeamBar, mode: "9ch"},
	}
}

func patchSpotLights() []patchedFixture {
	return []patchedFixture{
		{id: leftSpot, name: "left_spot", address: 21, definition: shehdsSpot, mode: "10ch"},
		// hung upside down on the right truss
		{id: rightSpot, name: "right_spot", address: 31, definition: shehdsSpot, mode: "10ch",
			angles: map[profile.ChannelType]float64{profile.ChannelTypePan: 180}},
	}
}

func patchWashLights() []patchedFixture {
	return []patchedFixture{
		{id: leftWash, name: "left_wash", address: 181, definition: shehdsWash, mode: "10ch"},
		{id: rightWash, name: "right_wash", address: 191, definition: shehdsWash, mode: "10ch"},
	}
}

// clubPatchOutputs returns the DMX universe and the WLED strip behind the bar.
func clubPatchOutputs() map[uint64]project.Output {
	fixtures := map[uint64]project.PhysicalDmxFixture{}
	for _, f := range patchFixtures() {
		fixtures[f.id] = f.physical()
	}

	return map[uint64]project.Output{
		dmxOutput: {
			Name:   "ola universe 1",
			Config: project.DmxOutput{Universe: 1, Fixtures: fixtures},
		},
		stripOutput: {
			Name:      "bar strip",
			LatencyMs: 30,
			Config: project.WledOutput{
				IPAddress: "192.168.1.60",
				Segments: map[uint32]project.WledSegment{
					0: {Name: "bar left", DefaultEffect: 0, DefaultPalette: 0, DefaultSpeed: 0.5, DefaultBrightness: 1},
					1: {Name: "bar right", DefaultEffect: 0, DefaultPalette: 0, DefaultSpeed: 0.5, DefaultBrightness: 1},
				},
			},
		},
	}
}
