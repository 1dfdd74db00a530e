package effect

import "github.com/robmorgan/lumen/project"

func applyRamp(ctx Context, e *project.Effect, r project.RampEffect) error {
	if r.Phase != 0 && ctx.Target.Kind == project.TargetGroup {
		return forEachFixture(ctx, func(member Context, i, total int) error {
			offset := r.Phase / float64(total) * float64(i)
			return Ramp(member, r, Progress(member, e, r, offset))
		})
	}
	return Ramp(ctx, r, Progress(ctx, e, r, 0))
}

// Ramp blends the target from StateStart to StateEnd at the eased position of t.
func Ramp(ctx Context, r project.RampEffect, t float64) error {
	if r.StateStart == nil || r.StateEnd == nil {
		return project.Invariantf("ramp effect without start or end state")
	}
	if _, ok := ctx.Devices.Get(ctx.Target); !ok {
		return nil
	}

	start := ctx
	start.Output = ctx.Output.Clone()
	if err := ApplyState(start, r.StateStart); err != nil {
		return err
	}
	end := ctx
	end.Output = ctx.Output.Clone()
	if err := ApplyState(end, r.StateEnd); err != nil {
		return err
	}

	ctx.Output.Interpolate(start.Output, end.Output, Easing(r.Easing)(t))
	return nil
}
