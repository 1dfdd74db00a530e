package project

// LightColor is either an explicit Color or a PaletteColor reference.
type LightColor interface {
	lightColor()
}

// Color is a concrete RGBW colour with every component in [0, 1].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
	White float64
}

// PaletteColor names a colour to be looked up at render time.
type PaletteColor int

const (
	PaletteBlack PaletteColor = iota
	PaletteWhite
	PalettePrimary
	PaletteSecondary
	PaletteTertiary
)

func (Color) lightColor()        {}
func (PaletteColor) lightColor() {}

func (c PaletteColor) String() string {
	switch c {
	case PaletteBlack:
		return "black"
	case PaletteWhite:
		return "white"
	case PalettePrimary:
		return "primary"
	case PaletteSecondary:
		return "secondary"
	case PaletteTertiary:
		return "tertiary"
	}
	return "unknown"
}

// ColorPalette holds the three slot colours of a scene palette. A nil slot is
// an incomplete palette.
type ColorPalette struct {
	Name      string
	Primary   *Color
	Secondary *Color
	Tertiary  *Color
}
