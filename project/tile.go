package project

// Tile is the unit a user toggles.
type Tile struct {
	Name string

	Transition Transition
	OneShot    bool

	FadeIn   Duration
	FadeOut  Duration
	Duration Duration

	Description Description
}

// Description is implemented by EffectGroup and Sequence.
type Description interface {
	description()
}

// EffectGroup is a list of effects, each bound to its own output target.
type EffectGroup struct {
	Channels []EffectChannel
}

// EffectChannel binds an effect to an output target.
type EffectChannel struct {
	Target OutputTarget
	Effect *Effect
}

// Sequence is a set of light tracks laid out over NativeBeats beats.
type Sequence struct {
	Name        string
	NativeBeats int
	LightTracks []LightTrack
}

// LightTrack is a stack of layers written to one output target.
type LightTrack struct {
	Name   string
	Target OutputTarget
	Layers []LightLayer
}

// LightLayer is a timeline of non-overlapping effects.
type LightLayer struct {
	Effects []*Effect
}

// At returns the effect whose window contains t.
func (l LightLayer) At(t float64) *Effect {
	for _, e := range l.Effects {
		if e != nil && e.Contains(t) {
			return e
		}
	}
	return nil
}

func (EffectGroup) description() {}
func (Sequence) description()    {}

// TileMapEntry places a tile on the scene grid.
type TileMapEntry struct {
	ID       uint64
	X        int
	Y        int
	Priority int
	Tile     *Tile
}
