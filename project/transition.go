package project

// Transition is the fade state of a tile. It is implemented by
// TransitionUnset, StartFadeIn, StartFadeOut and AbsoluteStrength.
type Transition interface {
	transition()
}

// TransitionUnset is the state of a tile that has never been toggled.
type TransitionUnset struct{}

// StartFadeIn records the wall-clock ms at which a tile started fading in.
type StartFadeIn struct {
	Ms int64
}

// StartFadeOut records the wall-clock ms at which a tile started fading out.
type StartFadeOut struct {
	Ms int64
}

// AbsoluteStrength pins the tile strength to a fader value in [0, 1].
type AbsoluteStrength struct {
	Value float64
}

func (TransitionUnset) transition()  {}
func (StartFadeIn) transition()      {}
func (StartFadeOut) transition()     {}
func (AbsoluteStrength) transition() {}

// DurationUnit discriminates a Duration.
type DurationUnit int

const (
	DurationUnset DurationUnit = iota
	DurationMs
	DurationBeats
)

// Duration is a length in milliseconds or in beats.
type Duration struct {
	Unit   DurationUnit
	Amount float64
}

// Ms builds a duration in milliseconds.
func Ms(ms float64) Duration {
	return Duration{Unit: DurationMs, Amount: ms}
}

// Beats builds a duration in beats.
func Beats(beats float64) Duration {
	return Duration{Unit: DurationBeats, Amount: beats}
}

// IsSet reports whether the duration carries a value.
func (d Duration) IsSet() bool {
	return d.Unit != DurationUnset
}
