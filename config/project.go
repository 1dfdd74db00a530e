package config

import (
	"github.com/robmorgan/lumen/engine"
	"github.com/robmorgan/lumen/palette"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
)

// Groups of the club patch.
const (
	frontParsGroup uint64 = iota + 1
	uplightsGroup
	parsGroup
	beamsGroup
	moversGroup
	stripGroup
)

// Scene palettes.
const (
	sunsetPalette uint64 = iota + 1
	oceanPalette
	neonPalette
)

func fixtureTargets(ids ...uint64) []project.OutputTarget {
	targets := make([]project.OutputTarget, 0, len(ids))
	for _, id := range ids {
		targets = append(targets, project.FixtureTarget(project.QualifiedFixtureID{Patch: clubPatch, Output: dmxOutput, Fixture: id}))
	}
	return targets
}

func initializeGroups() map[uint64]project.Group {
	return map[uint64]project.Group{
		frontParsGroup: {Name: "front pars", Targets: fixtureTargets(leftTopPar, leftMiddlePar, rightMiddlePar, rightTopPar)},
		uplightsGroup:  {Name: "uplights", Targets: fixtureTargets(leftUplightPar, rightUplightPar)},
		parsGroup: {Name: "pars", Targets: []project.OutputTarget{
			project.GroupTarget(frontParsGroup),
			project.GroupTarget(uplightsGroup),
		}},
		beamsGroup:  {Name: "beam bars", Targets: fixtureTargets(leftBeamBar, rightBeamBar)},
		moversGroup: {Name: "movers", Targets: fixtureTargets(leftSpot, rightSpot, leftWash, rightWash)},
		stripGroup: {Name: "bar strip", Targets: []project.OutputTarget{
			project.FixtureTarget(project.QualifiedFixtureID{Patch: clubPatch, Output: stripOutput, Fixture: 0}),
			project.FixtureTarget(project.QualifiedFixtureID{Patch: clubPatch, Output: stripOutput, Fixture: 1}),
		}},
	}
}

func colorPalette(name, primary, secondary, tertiary string) project.ColorPalette {
	p := palette.MustHex(primary)
	s := palette.MustHex(secondary)
	t := palette.MustHex(tertiary)
	return project.ColorPalette{Name: name, Primary: &p, Secondary: &s, Tertiary: &t}
}

func initializePalettes() map[uint64]project.ColorPalette {
	return map[uint64]project.ColorPalette{
		sunsetPalette: colorPalette("sunset", "#ff5e13", "#b100e8", "#ffd319"),
		oceanPalette:  colorPalette("ocean", "#00c2ff", "#0051ff", "#00ffa3"),
		neonPalette:   colorPalette("neon", "#ff00a0", "#00ff6a", "#fff200"),
	}
}

func state(s project.FixtureState) *project.FixtureState {
	return &s
}

func dimmer(v float64) *project.FixtureState {
	return &project.FixtureState{Dimmer: project.Ptr(v)}
}

func channel(target project.OutputTarget, e *project.Effect) project.EffectChannel {
	return project.EffectChannel{Target: target, Effect: e}
}

func initializeTiles() []project.TileMapEntry {
	pars := project.GroupTarget(parsGroup)
	all := project.GroupTarget(project.GroupAllID)

	wash := &project.Tile{
		Name:       "wash",
		Transition: project.StartFadeOut{},
		FadeIn:     project.Beats(1),
		FadeOut:    project.Beats(2),
		Duration:   project.Beats(1),
		Description: project.EffectGroup{Channels: []project.EffectChannel{
			channel(pars, &project.Effect{EndMs: 1000, Kind: project.StaticEffect{
				State: state(project.FixtureState{Color: project.PalettePrimary, Dimmer: project.Ptr(1.0)}),
			}}),
			channel(project.GroupTarget(stripGroup), &project.Effect{EndMs: 1000, Kind: project.StaticEffect{
				State: state(project.FixtureState{Color: project.PaletteSecondary, Dimmer: project.Ptr(0.6), WledEffect: project.Ptr(int32(0))}),
			}}),
		}},
	}

	pulse := &project.Tile{
		Name:       "pulse",
		Transition: project.StartFadeOut{},
		FadeOut:    project.Ms(300),
		Duration:   project.Beats(1),
		Description: project.EffectGroup{Channels: []project.EffectChannel{
			channel(all, &project.Effect{EndMs: 1000, Kind: project.RampEffect{
				StateStart: dimmer(1),
				StateEnd:   dimmer(0),
				Easing:     project.EasingEaseOut,
				TimingMode: project.TimingBeat,
			}}),
		}},
	}

	chase := &project.Tile{
		Name:       "chase",
		Transition: project.StartFadeOut{},
		FadeIn:     project.Ms(500),
		FadeOut:    project.Ms(500),
		Duration:   project.Beats(4),
		Description: project.EffectGroup{Channels: []project.EffectChannel{
			channel(pars, &project.Effect{EndMs: 1000, Kind: project.RampEffect{
				StateStart:       state(project.FixtureState{Color: project.PaletteTertiary, Dimmer: project.Ptr(0.0)}),
				StateEnd:         state(project.FixtureState{Color: project.PaletteTertiary, Dimmer: project.Ptr(1.0)}),
				Easing:           project.EasingSine,
				TimingMode:       project.TimingBeat,
				TimingMultiplier: 0.5,
				Mirrored:         true,
				Phase:            1,
			}}),
		}},
	}

	sparkle := &project.Tile{
		Name:       "sparkle",
		Transition: project.StartFadeOut{},
		FadeIn:     project.Beats(2),
		FadeOut:    project.Beats(2),
		Duration:   project.Ms(1000),
		Description: project.EffectGroup{Channels: []project.EffectChannel{
			channel(project.GroupTarget(uplightsGroup), &project.Effect{EndMs: 1000, Kind: project.RandomEffect{
				EffectA: project.StaticEffect{State: state(project.FixtureState{Color: project.PaletteSecondary, Dimmer: project.Ptr(1.0)})},
				EffectB: project.StaticEffect{State: state(project.FixtureState{Color: project.PaletteBlack, Dimmer: project.Ptr(0.0)})},
				MinAMs:  80,
				VarAMs:  120,
				MinBMs:  150,
				VarBMs:  600,
				Seed:    11,

				TreatFixturesIndividually: true,
			}}),
		}},
	}

	sweep := &project.Tile{
		Name:       "sweep",
		Transition: project.StartFadeOut{},
		FadeIn:     project.Beats(4),
		FadeOut:    project.Beats(4),
		Duration:   project.Beats(8),
		Description: project.EffectGroup{Channels: []project.EffectChannel{
			channel(project.GroupTarget(moversGroup), &project.Effect{EndMs: 1000, Kind: project.RampEffect{
				StateStart: state(project.FixtureState{Pan: project.Ptr(-90.0), Tilt: project.Ptr(30.0), Dimmer: project.Ptr(1.0), Color: project.PalettePrimary}),
				StateEnd:   state(project.FixtureState{Pan: project.Ptr(90.0), Tilt: project.Ptr(60.0), Dimmer: project.Ptr(1.0), Color: project.PalettePrimary}),
				Easing:     project.EasingEaseInOut,
				Mirrored:   true,
				Phase:      0.5,
			}}),
		}},
	}

	strobe := &project.Tile{
		Name:       "strobe",
		Transition: project.AbsoluteStrength{},
		Duration:   project.Beats(1),
		Description: project.EffectGroup{Channels: []project.EffectChannel{
			channel(all, &project.Effect{EndMs: 1000, Kind: project.StrobeEffect{
				StateA:  state(project.FixtureState{Color: project.PaletteWhite, Dimmer: project.Ptr(1.0)}),
				FramesA: 1,
				StateB:  state(project.FixtureState{Color: project.PaletteBlack, Dimmer: project.Ptr(0.0)}),
				FramesB: 3,
			}}),
		}},
	}

	hit := &project.Tile{
		Name:       "hit",
		OneShot:    true,
		Transition: project.StartFadeOut{},
		Duration:   project.Beats(1),
		Description: project.EffectGroup{Channels: []project.EffectChannel{
			channel(project.GroupTarget(beamsGroup), &project.Effect{EndMs: 1000, Kind: project.RampEffect{
				StateStart: state(project.FixtureState{Color: project.PaletteWhite, Dimmer: project.Ptr(1.0)}),
				StateEnd:   state(project.FixtureState{Color: project.PaletteWhite, Dimmer: project.Ptr(0.0)}),
				Easing:     project.EasingEaseIn,
			}}),
		}},
	}

	intro := &project.Tile{
		Name:        "intro",
		Transition:  project.StartFadeOut{},
		FadeIn:      project.Beats(1),
		FadeOut:     project.Beats(1),
		Duration:    project.Beats(4),
		Description: introSequence(),
	}

	return []project.TileMapEntry{
		{ID: 1, X: 0, Y: 0, Tile: wash},
		{ID: 2, X: 1, Y: 0, Tile: pulse},
		{ID: 3, X: 2, Y: 0, Tile: chase},
		{ID: 4, X: 3, Y: 0, Tile: sparkle},
		{ID: 5, X: 0, Y: 1, Tile: sweep},
		{ID: 6, X: 1, Y: 1, Tile: intro},
		{ID: 7, X: 0, Y: 2, Priority: 1, Tile: hit},
		{ID: 8, X: 1, Y: 2, Priority: 2, Tile: strobe},
	}
}

// introTracks walk the palette across the front pars one beat at a time while
// the beams breathe. beat is the length of a beat in track time.
func introTracks(beat float64) []project.LightTrack {
	var steps []*project.Effect
	for i, c := range []project.PaletteColor{
		project.PalettePrimary,
		project.PaletteSecondary,
		project.PaletteTertiary,
		project.PaletteWhite,
	} {
		steps = append(steps, &project.Effect{
			StartMs: float64(i) * beat,
			EndMs:   float64(i+1) * beat,
			Kind:    project.StaticEffect{State: state(project.FixtureState{Color: c, Dimmer: project.Ptr(1.0)})},
		})
	}

	return []project.LightTrack{
		{
			Name:   "front",
			Target: project.GroupTarget(frontParsGroup),
			Layers: []project.LightLayer{{Effects: steps}},
		},
		{
			Name:   "beams",
			Target: project.GroupTarget(beamsGroup),
			Layers: []project.LightLayer{{Effects: []*project.Effect{{
				StartMs: 0,
				EndMs:   4 * beat,
				Kind: project.RampEffect{
					StateStart: state(project.FixtureState{Color: project.PaletteSecondary, Dimmer: project.Ptr(0.2)}),
					StateEnd:   state(project.FixtureState{Color: project.PaletteSecondary, Dimmer: project.Ptr(0.8)}),
					TimingMode: project.TimingBeat,
					Mirrored:   true,
				},
			}}}},
		},
	}
}

func introSequence() project.Sequence {
	return project.Sequence{
		Name:        "intro",
		NativeBeats: 4,
		LightTracks: introTracks(engine.SequenceResolution),
	}
}

func initializeShows() map[uint64]*project.Show {
	const beatMs = 468.75

	sunset := initializePalettes()[sunsetPalette]
	var tracks []project.LightTrack
	// the intro plays at the top and again eight bars in
	for _, bar := range []float64{0, 8} {
		for _, track := range introTracks(beatMs) {
			for _, layer := range track.Layers {
				for _, e := range layer.Effects {
					e.StartMs += bar * 4 * beatMs
					e.EndMs += bar * 4 * beatMs
				}
			}
			tracks = append(tracks, track)
		}
	}

	return map[uint64]*project.Show{
		1: {
			Name:         "opener",
			LightTracks:  tracks,
			ColorPalette: &sunset,
			Beat:         &rhythm.BeatMetadata{LengthMs: beatMs},
		},
	}
}

// NewDemoProject builds the club rig with one scene of tiles and one show.
func NewDemoProject(beat rhythm.BeatMetadata) *project.Project {
	return &project.Project{
		Name:        "club",
		ActivePatch: clubPatch,
		Patches: map[uint64]project.Patch{
			clubPatch: {Name: "club", Outputs: clubPatchOutputs()},
		},
		Groups:      initializeGroups(),
		Definitions: initializeFixtureProfiles(),
		Scenes: map[uint64]*project.Scene{
			1: {
				Name:                             "main",
				TileMap:                          initializeTiles(),
				ColorPalettes:                    initializePalettes(),
				ActiveColorPalette:               sunsetPalette,
				LastActiveColorPalette:           sunsetPalette,
				ColorPaletteTransitionDurationMs: 2000,
			},
		},
		ActiveScene:  1,
		Shows:        initializeShows(),
		SelectedShow: 1,
		LiveBeat:     beat,
	}
}
