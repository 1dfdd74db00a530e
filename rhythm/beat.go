package rhythm

import "math"

// BeatMetadata is a snapshot of a beat clock: the length of a beat and the
// wall-clock instant of beat zero.
type BeatMetadata struct {
	LengthMs float64
	OffsetMs int64
}

// Valid reports whether beat maths can be performed without dividing by zero.
func (b BeatMetadata) Valid() bool {
	return b.LengthMs > 0
}

// Phase returns the position within the current beat, in [0, 1).
func (b BeatMetadata) Phase(nowMs int64) float64 {
	if !b.Valid() {
		return 0
	}
	phase := math.Mod(float64(nowMs-b.OffsetMs), b.LengthMs) / b.LengthMs
	if phase < 0 {
		phase++
	}
	return phase
}

// Beat returns the zero-based index of the beat containing nowMs.
func (b BeatMetadata) Beat(nowMs int64) int64 {
	if !b.Valid() {
		return 0
	}
	return int64(math.Floor(float64(nowMs-b.OffsetMs) / b.LengthMs))
}

// TimeOfBeat determines the timestamp at which a particular beat starts.
func (b BeatMetadata) TimeOfBeat(beat int64) int64 {
	return b.OffsetMs + int64(math.Round(float64(beat)*b.LengthMs))
}

// BeatsToMs converts a number of beats into milliseconds.
func (b BeatMetadata) BeatsToMs(beats float64) float64 {
	return beats * b.LengthMs
}
