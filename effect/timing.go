package effect

import (
	"math"

	"github.com/robmorgan/lumen/engine/scale"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
)

// Progress returns the raw ramp position in [0, 1) for ctx. phaseOffset is
// a fraction of a cycle added before mirroring.
func Progress(ctx Context, e *project.Effect, r project.RampEffect, phaseOffset float64) float64 {
	mult := multiplier(r.TimingMultiplier, r.Mirrored)
	switch r.TimingMode {
	case project.TimingBeat:
		return beatProgress(ctx.ClockT, ctx.Beat, mult, r.Mirrored, phaseOffset)
	default:
		length := e.Length()
		if length <= 0 {
			return 0
		}
		return cycle((ctx.T-e.StartMs)/length*mult+phaseOffset, r.Mirrored)
	}
}

func beatProgress(t float64, beat rhythm.BeatMetadata, mult float64, mirrored bool, phaseOffset float64) float64 {
	if !beat.Valid() {
		return 0
	}
	virtual := (t-float64(beat.OffsetMs))*mult + phaseOffset*beat.LengthMs
	index := math.Floor(virtual / beat.LengthMs)
	return mirror(scale.Mod(virtual, beat.LengthMs)/beat.LengthMs, index, mirrored)
}

// cycle wraps a relative position into one cycle, reversing odd cycles when mirrored.
func cycle(relative float64, mirrored bool) float64 {
	return mirror(scale.Mod(relative, 1), math.Floor(relative), mirrored)
}

func mirror(t, index float64, mirrored bool) float64 {
	if mirrored && math.Mod(math.Abs(index), 2) == 1 {
		return 1 - t
	}
	return t
}

func multiplier(m float64, mirrored bool) float64 {
	if m == 0 {
		m = 1
	}
	if mirrored {
		m *= 2
	}
	return m
}
