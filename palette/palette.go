package palette

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/robmorgan/lumen/engine/scale"
	"github.com/robmorgan/lumen/project"
)

var (
	black = project.Color{}
	white = project.Color{White: 1}
)

// Default is used when a scene or show references no palette.
func Default() project.ColorPalette {
	return project.ColorPalette{
		Name:      "default",
		Primary:   &project.Color{Red: 1, Blue: 1},
		Secondary: &project.Color{Green: 1, Blue: 1},
		Tertiary:  &project.Color{Red: 1, Green: 1},
	}
}

// Resolve turns a colour reference into a concrete colour.
func Resolve(c project.LightColor, p project.ColorPalette) (project.Color, error) {
	switch c := c.(type) {
	case project.Color:
		return c, nil
	case project.PaletteColor:
		switch c {
		case project.PaletteBlack:
			return black, nil
		case project.PaletteWhite:
			return white, nil
		}
		slot := slot(p, c)
		if slot == nil {
			return project.Color{}, project.Invariantf("palette %q has no %s color", p.Name, c)
		}
		return *slot, nil
	}
	return project.Color{}, project.Invariantf("unknown color reference %T", c)
}

func slot(p project.ColorPalette, c project.PaletteColor) *project.Color {
	switch c {
	case project.PalettePrimary:
		return p.Primary
	case project.PaletteSecondary:
		return p.Secondary
	case project.PaletteTertiary:
		return p.Tertiary
	}
	return nil
}

// Interpolate blends every slot of a towards b by t.
func Interpolate(a, b project.ColorPalette, t float64) (project.ColorPalette, error) {
	out := project.ColorPalette{Name: b.Name}
	for _, c := range []project.PaletteColor{project.PalettePrimary, project.PaletteSecondary, project.PaletteTertiary} {
		from, err := Resolve(c, a)
		if err != nil {
			return out, err
		}
		to, err := Resolve(c, b)
		if err != nil {
			return out, err
		}
		blended := Blend(from, to, t)
		switch c {
		case project.PalettePrimary:
			out.Primary = &blended
		case project.PaletteSecondary:
			out.Secondary = &blended
		case project.PaletteTertiary:
			out.Tertiary = &blended
		}
	}
	return out, nil
}

// Blend linearly mixes two RGBW colours.
func Blend(a, b project.Color, t float64) project.Color {
	rgb := toColorful(a).BlendRgb(toColorful(b), t)
	return project.Color{
		Red:   rgb.R,
		Green: rgb.G,
		Blue:  rgb.B,
		White: scale.Lerp(a.White, b.White, t),
	}
}

// Hue returns a fully saturated colour at hue h in [0, 1).
func Hue(h float64) project.Color {
	c := colorful.Hsv(scale.Mod(h, 1)*360, 1, 1).Clamped()
	return project.Color{Red: c.R, Green: c.G, Blue: c.B}
}

// FromHex parses "#rrggbb" into a colour without a white component.
func FromHex(s string) (project.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return project.Color{}, err
	}
	return project.Color{Red: c.R, Green: c.G, Blue: c.B}, nil
}

// MustHex is FromHex for colours known at compile time.
func MustHex(s string) project.Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toColorful(c project.Color) colorful.Color {
	return colorful.Color{R: c.Red, G: c.Green, B: c.Blue}
}
