package project

// Effect is a time-bounded rule for writing fixture state. The window
// [StartMs, EndMs) is used by one-shot timing and sequence layers.
type Effect struct {
	StartMs float64
	EndMs   float64
	Kind    EffectKind
}

// Length returns the width of the effect window.
func (e *Effect) Length() float64 {
	return e.EndMs - e.StartMs
}

// Contains reports whether t falls inside the effect window.
func (e *Effect) Contains(t float64) bool {
	return e.StartMs <= t && t < e.EndMs
}

// EffectKind is implemented by StaticEffect, RampEffect, StrobeEffect and RandomEffect.
type EffectKind interface {
	effectKind()
}

// StaticEffect applies one state regardless of time.
type StaticEffect struct {
	State *FixtureState
}

// RampEffect blends from StateStart to StateEnd as its progress advances.
type RampEffect struct {
	StateStart *FixtureState
	StateEnd   *FixtureState

	Easing           Easing
	TimingMode       TimingMode
	TimingMultiplier float64
	Mirrored         bool

	// Phase spreads the members of a group target across this fraction of a cycle.
	Phase float64
}

// StrobeEffect alternates between two states on frame boundaries.
type StrobeEffect struct {
	StateA  *FixtureState
	FramesA uint32
	StateB  *FixtureState
	FramesB uint32
}

// RandomEffect alternates between two sub effects with pseudo random durations.
// Sub effects must be static, ramp or strobe.
type RandomEffect struct {
	EffectA EffectKind
	EffectB EffectKind

	MinAMs float64
	VarAMs float64
	MinBMs float64
	VarBMs float64

	Seed                      uint64
	TreatFixturesIndividually bool
}

func (StaticEffect) effectKind() {}
func (RampEffect) effectKind()   {}
func (StrobeEffect) effectKind() {}
func (RandomEffect) effectKind() {}

// Easing selects the curve applied to ramp progress.
type Easing int

const (
	EasingLinear Easing = iota
	EasingEaseIn
	EasingEaseOut
	EasingEaseInOut
	EasingSine
)

// TimingMode selects how ramp progress is derived.
type TimingMode int

const (
	// TimingOneShot derives progress from the position inside the effect window.
	TimingOneShot TimingMode = iota
	// TimingBeat derives progress from the beat clock.
	TimingBeat
)
