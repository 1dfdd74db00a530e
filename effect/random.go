package effect

import (
	"sort"

	"github.com/robmorgan/lumen/engine/scale"
	"github.com/robmorgan/lumen/project"
)

const (
	randomSamples = 16384
	largePrime    = 4294967291
)

// samples is a fixed pseudo random sequence. Even positions size the
// segments of effect A, odd positions those of effect B. sumsA and sumsB are
// running totals over the even and odd positions up to and including i.
var samples = newSampleTable()

type sampleTable struct {
	values [randomSamples]float64
	sumsA  [randomSamples]float64
	sumsB  [randomSamples]float64
}

func newSampleTable() *sampleTable {
	const (
		m = 1 << 31
		a = 1103515245
		c = 12345
	)

	t := &sampleTable{}
	state := uint64(42)
	sumA, sumB := 0.0, 0.0
	for i := range t.values {
		state = (a*state + c) % m
		num := float64(state) / float64(m-1)
		t.values[i] = num
		if i%2 == 0 {
			sumA += num
		} else {
			sumB += num
		}
		t.sumsA[i] = sumA
		t.sumsB[i] = sumB
	}
	return t
}

// counter returns the end of segment i, i.e. the summed length of segments 0..i.
func (t *sampleTable) counter(r project.RandomEffect, i int) float64 {
	countA := float64(i/2 + 1)
	countB := float64((i + 1) / 2)
	return t.sumsA[i]*r.VarAMs + countA*r.MinAMs + t.sumsB[i]*r.VarBMs + countB*r.MinBMs
}

// window is the length of one full pass over the sequence.
func (t *sampleTable) window(r project.RandomEffect) float64 {
	return t.counter(r, randomSamples-1)
}

// locate returns the segment containing effectT and the position inside it.
func (t *sampleTable) locate(r project.RandomEffect, effectT float64) (int, float64) {
	i := sort.Search(randomSamples, func(i int) bool {
		return effectT < t.counter(r, i)
	})
	if i == randomSamples {
		return randomSamples - 1, 1
	}

	prev := 0.0
	if i > 0 {
		prev = t.counter(r, i-1)
	}
	size := t.counter(r, i) - prev
	if size <= 0 {
		return i, 0
	}
	return i, (effectT - prev) / size
}

func applyRandom(ctx Context, r project.RandomEffect) error {
	if r.TreatFixturesIndividually && ctx.Target.Kind == project.TargetGroup {
		return forEachFixture(ctx, func(member Context, i, _ int) error {
			return Random(member, r, uint64(i))
		})
	}
	return Random(ctx, r, 0)
}

// Random picks the sub effect active at ctx.GlobalT and evaluates it at its
// position within the current segment. fixtureSeed desynchronizes group members.
func Random(ctx Context, r project.RandomEffect, fixtureSeed uint64) error {
	if r.EffectA == nil || r.EffectB == nil {
		return project.Invariantf("random effect without both sub effects")
	}
	window := samples.window(r)
	if window <= 0 {
		return project.Invariantf("random effect with an empty window")
	}

	effectT := scale.Mod(ctx.GlobalT+float64(r.Seed+fixtureSeed)*largePrime, window)
	i, local := samples.locate(r, effectT)

	sub := r.EffectA
	if i%2 == 1 {
		sub = r.EffectB
	}
	return applySubEffect(ctx, sub, local)
}

func applySubEffect(ctx Context, sub project.EffectKind, t float64) error {
	switch k := sub.(type) {
	case project.StaticEffect:
		return ApplyState(ctx, k.State)
	case project.RampEffect:
		return Ramp(ctx, k, cycle(t*multiplier(k.TimingMultiplier, k.Mirrored), k.Mirrored))
	case project.StrobeEffect:
		return Strobe(ctx, k)
	case project.RandomEffect:
		return project.Invariantf("random effects cannot be nested")
	default:
		return project.Invariantf("unknown random sub effect %T", sub)
	}
}
