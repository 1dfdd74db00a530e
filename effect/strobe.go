package effect

import "github.com/robmorgan/lumen/project"

// Strobe applies StateA for FramesA frames, then StateB for FramesB frames.
func Strobe(ctx Context, s project.StrobeEffect) error {
	if s.StateA == nil || s.StateB == nil {
		return project.Invariantf("strobe effect without both states")
	}
	return ApplyState(ctx, strobeState(s, ctx.Frame))
}

func strobeState(s project.StrobeEffect, frame uint32) *project.FixtureState {
	period := s.FramesA + s.FramesB
	if period == 0 || frame%period < s.FramesA {
		return s.StateA
	}
	return s.StateB
}
