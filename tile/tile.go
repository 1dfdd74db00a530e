package tile

import (
	"math"

	"github.com/robmorgan/lumen/engine/scale"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
)

// Absolute strengths below this count as switched off when toggling.
const absoluteOffThreshold = 0.1

// ToMs converts a duration to milliseconds. Unset durations are zero.
func ToMs(d project.Duration, beat rhythm.BeatMetadata) float64 {
	switch d.Unit {
	case project.DurationMs:
		return d.Amount
	case project.DurationBeats:
		return beat.BeatsToMs(d.Amount)
	default:
		return 0
	}
}

// FadeInMs is the length of the tile's fade in.
func FadeInMs(t *project.Tile, beat rhythm.BeatMetadata) float64 {
	return ToMs(t.FadeIn, beat)
}

// FadeOutMs is the length of the tile's fade out.
func FadeOutMs(t *project.Tile, beat rhythm.BeatMetadata) float64 {
	return ToMs(t.FadeOut, beat)
}

// DurationMs is the length of one pass over the tile's description. Without an
// explicit duration a sequence lasts its native beats and anything else one beat.
func DurationMs(t *project.Tile, beat rhythm.BeatMetadata) float64 {
	if t.Duration.IsSet() {
		return ToMs(t.Duration, beat)
	}
	if seq, ok := t.Description.(project.Sequence); ok && seq.NativeBeats > 0 {
		return beat.BeatsToMs(float64(seq.NativeBeats))
	}
	return beat.LengthMs
}

// fadeProgress is how far a fade of durationMs has come after since ms.
func fadeProgress(since, durationMs float64) float64 {
	if durationMs <= 0 {
		return 1
	}
	return scale.Ratio(since, durationMs)
}

// Enabled reports whether the next toggle switches the tile on.
func Enabled(t *project.Tile) bool {
	if t.OneShot {
		return true
	}
	switch tr := t.Transition.(type) {
	case project.StartFadeOut:
		return true
	case project.AbsoluteStrength:
		return tr.Value < absoluteOffThreshold
	default:
		return false
	}
}

// Toggle switches a tile on or off at now. Fades are back-dated so the visible
// strength does not jump when a fade is reversed halfway through. It reports
// whether the transition changed and whether the toggle was an enable.
func Toggle(t *project.Tile, beat rhythm.BeatMetadata, now int64) (changed, enabled bool) {
	// one-shots always restart
	if t.OneShot {
		t.Transition = project.StartFadeIn{Ms: now}
		return true, true
	}

	enabled = Enabled(t)
	switch t.Transition.(type) {
	case project.StartFadeIn, project.StartFadeOut:
	default:
		// unset and absolute tiles restart from a fade out that has long finished
		t.Transition = project.StartFadeOut{Ms: 0}
	}

	switch tr := t.Transition.(type) {
	case project.StartFadeIn:
		amount := fadeProgress(float64(now-tr.Ms), FadeInMs(t, beat))
		back := math.Floor((1 - amount) * FadeOutMs(t, beat))
		t.Transition = project.StartFadeOut{Ms: now - int64(back)}
		return true, false
	case project.StartFadeOut:
		if !enabled {
			return false, false
		}
		amount := 1 - fadeProgress(float64(now-tr.Ms), FadeOutMs(t, beat))
		back := math.Floor(amount * FadeInMs(t, beat))
		t.Transition = project.StartFadeIn{Ms: now - int64(back)}
		return true, true
	}
	return false, enabled
}

// ActiveAmount is the strength reported back to controllers: 1 while a tile
// is on, the fader value for absolute strengths and 0 otherwise. A one-shot
// only counts as on until it has played once.
func ActiveAmount(t *project.Tile, beat rhythm.BeatMetadata, now int64) float64 {
	switch tr := t.Transition.(type) {
	case project.StartFadeIn:
		if t.OneShot && float64(now) >= float64(tr.Ms)+DurationMs(t, beat) {
			return 0
		}
		return 1
	case project.AbsoluteStrength:
		return tr.Value
	default:
		return 0
	}
}

// Since returns the ms elapsed since the tile's last transition. Absolute
// strengths and unset tiles have no timestamp and report 0.
func Since(t *project.Tile, now int64) float64 {
	switch tr := t.Transition.(type) {
	case project.StartFadeIn:
		return float64(now - tr.Ms)
	case project.StartFadeOut:
		return float64(now - tr.Ms)
	default:
		return 0
	}
}

// BlendAmount is the weight a tile is composited with at now. It reports false
// when the tile contributes nothing this frame.
func BlendAmount(t *project.Tile, beat rhythm.BeatMetadata, now int64) (float64, bool) {
	var amount float64
	switch tr := t.Transition.(type) {
	case project.StartFadeIn:
		amount = fadeProgress(float64(now-tr.Ms), FadeInMs(t, beat))
	case project.StartFadeOut:
		// one-shots stop instead of fading
		if t.OneShot {
			return 0, false
		}
		since := float64(now - tr.Ms)
		fadeOut := FadeOutMs(t, beat)
		if since > fadeOut {
			return 0, false
		}
		amount = 1 - fadeProgress(since, fadeOut)
	case project.AbsoluteStrength:
		amount = scale.Unit(tr.Value)
	default:
		return 0, false
	}
	return amount, amount > 0
}
