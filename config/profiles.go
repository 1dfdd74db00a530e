package config

import (
	"fmt"

	"github.com/robmorgan/lumen/profile"
)

const (
	shehdsPar uint64 = iota + 1
	shehdsSpot
	shehdsWash
	shehdsBeamBar
)

func initializeFixtureProfiles() map[uint64]profile.Profile {
	return map[uint64]profile.Profile{
		shehdsPar: {
			Name:         "LED Flat PAR 12x3W RGBW",
			Manufacturer: "Shehds",
			Modes: map[string]profile.Mode{
				"4ch": {Name: "4ch", Channels: map[int]profile.Channel{
					1: {Type: profile.ChannelTypeDimmer},
					2: {Type: profile.ChannelTypeRed},
					3: {Type: profile.ChannelTypeGreen},
					4: {Type: profile.ChannelTypeBlue},
				}},
				"8ch": {Name: "8ch", Channels: map[int]profile.Channel{
					1: {Type: profile.ChannelTypeDimmer},
					2: {Type: profile.ChannelTypeRed},
					3: {Type: profile.ChannelTypeGreen},
					4: {Type: profile.ChannelTypeBlue},
					5: {Type: profile.ChannelTypeWhite},
					6: {Type: profile.ChannelTypeStrobe},
					7: {Type: profile.ChannelTypeOther}, // function select
					8: {Type: profile.ChannelTypeOther},
				}},
			},
		},
		shehdsSpot: {
			Name:         "LED Spot 60W",
			Manufacturer: "Shehds",
			Modes: map[string]profile.Mode{
				"10ch": {Name: "10ch", Channels: map[int]profile.Channel{
					1: {Type: profile.ChannelTypePan, Mapping: profile.AngleMapping{MinDegrees: -270, MaxDegrees: 270}},
					2: {Type: profile.ChannelTypeTilt, Mapping: profile.AngleMapping{MinDegrees: -90, MaxDegrees: 90}},
					3: {Type: profile.ChannelTypeColorWheel, Mapping: profile.ColorWheelMapping{Slots: []profile.ColorWheelSlot{
						{Name: "open", Red: 1, Green: 1, Blue: 1, Value: 0},
						{Name: "red", Red: 1, Value: 10},
						{Name: "green", Green: 1, Value: 20},
						{Name: "blue", Blue: 1, Value: 30},
						{Name: "yellow", Red: 1, Green: 1, Value: 40},
						{Name: "magenta", Red: 1, Blue: 1, Value: 50},
						{Name: "cyan", Green: 1, Blue: 1, Value: 60},
						{Name: "orange", Red: 1, Green: 0.5, Value: 70},
					}}},
					4: {Type: profile.ChannelTypeOther}, // gobo
					5: {Type: profile.ChannelTypeStrobe},
					6: {Type: profile.ChannelTypeDimmer},
					7: {Type: profile.ChannelTypeSpeed, Mapping: profile.AmountMapping{MinValue: 255, MaxValue: 0}},
					8: {Type: profile.ChannelTypeOther}, // function select
					9: {Type: profile.ChannelTypeOther}, // reset
					10: {Type: profile.ChannelTypePan.Fine()},
				}},
			},
		},
		shehdsWash: {
			Name:         "LED Wash 7x18W RGBWA+UV",
			Manufacturer: "Shehds",
			Modes: map[string]profile.Mode{
				"10ch": {Name: "10ch", Channels: map[int]profile.Channel{
					1: {Type: profile.ChannelTypePan, Mapping: profile.AngleMapping{MinDegrees: -270, MaxDegrees: 270}},
					2: {Type: profile.ChannelTypeTilt, Mapping: profile.AngleMapping{MinDegrees: -135, MaxDegrees: 135}},
					3: {Type: profile.ChannelTypeDimmer},
					4: {Type: profile.ChannelTypeRed},
					5: {Type: profile.ChannelTypeGreen},
					6: {Type: profile.ChannelTypeBlue},
					7: {Type: profile.ChannelTypeWhite},
					8: {Type: profile.ChannelTypeOther}, // amber
					9: {Type: profile.ChannelTypeOther}, // uv
					// TODO: the manual lists channel 10 as XY speed, confirm the direction on the real fixture
					10: {Type: profile.ChannelTypeSpeed},
				}},
			},
		},
		shehdsBeamBar: {
			Name:         "LED Bar Beam 8x12W RGBW",
			Manufacturer: "Shehds",
			Modes: map[string]profile.Mode{
				"9ch":  beamBarMode(1),
				"38ch": beamBarMode(8),
			},
		},
	}
}

// beamBarMode lays out the bar with one RGBW block per controllable light.
func beamBarMode(lights int) profile.Mode {
	channels := map[int]profile.Channel{
		1: {Type: profile.ChannelTypeTilt, Mapping: profile.AngleMapping{MinDegrees: -90, MaxDegrees: 90}},
		2: {Type: profile.ChannelTypeSpeed},
		3: {Type: profile.ChannelTypeOther}, // function select
		4: {Type: profile.ChannelTypeOther}, // function speed
		5: {Type: profile.ChannelTypeDimmer},
	}
	next := 6
	if lights > 1 {
		channels[next] = profile.Channel{Type: profile.ChannelTypeStrobe}
		next++
	}
	for i := 0; i < lights; i++ {
		for _, typ := range []profile.ChannelType{
			profile.ChannelTypeRed,
			profile.ChannelTypeGreen,
			profile.ChannelTypeBlue,
			profile.ChannelTypeWhite,
		} {
			channels[next] = profile.Channel{Type: typ}
			next++
		}
	}
	return profile.Mode{Name: fmt.Sprintf("%dch", len(channels)), Channels: channels}
}
