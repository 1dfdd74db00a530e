package effect

import (
	"github.com/fogleman/ease"
	"github.com/robmorgan/lumen/project"
)

// Easing returns the curve for an easing kind. Every curve maps 0 to 0 and 1 to 1.
func Easing(e project.Easing) ease.Function {
	switch e {
	case project.EasingEaseIn:
		return ease.InCubic
	case project.EasingEaseOut:
		return ease.OutCubic
	case project.EasingEaseInOut:
		return ease.InOutCubic
	case project.EasingSine:
		return ease.InOutSine
	default:
		return ease.Linear
	}
}
