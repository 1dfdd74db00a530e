package profile

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ChannelType is the semantic meaning of a single fixture channel.
type ChannelType string

const (
	ChannelTypeRed     ChannelType = "red"
	ChannelTypeGreen   ChannelType = "green"
	ChannelTypeBlue    ChannelType = "blue"
	ChannelTypeCyan    ChannelType = "cyan"
	ChannelTypeMagenta ChannelType = "magenta"
	ChannelTypeYellow  ChannelType = "yellow"
	ChannelTypeWhite   ChannelType = "white"

	ChannelTypeColorWheel ChannelType = "color_wheel"

	ChannelTypePan  ChannelType = "pan"
	ChannelTypeTilt ChannelType = "tilt"

	ChannelTypeDimmer ChannelType = "dimmer"
	ChannelTypeStrobe ChannelType = "strobe"
	ChannelTypeWidth  ChannelType = "width"
	ChannelTypeHeight ChannelType = "height"
	ChannelTypeZoom   ChannelType = "zoom"
	ChannelTypeSpeed  ChannelType = "speed"

	ChannelTypeOther ChannelType = "other"
)

const fineSuffix = "-fine"

// IsColor reports whether the channel carries one colour primitive.
func (c ChannelType) IsColor() bool {
	switch c {
	case ChannelTypeRed, ChannelTypeGreen, ChannelTypeBlue,
		ChannelTypeCyan, ChannelTypeMagenta, ChannelTypeYellow,
		ChannelTypeWhite:
		return true
	}
	return false
}

// IsAngle reports whether the channel is addressed in degrees.
func (c ChannelType) IsAngle() bool {
	return c == ChannelTypePan || c == ChannelTypeTilt
}

// IsAmount reports whether the channel is addressed as a unit amount.
func (c ChannelType) IsAmount() bool {
	switch c {
	case ChannelTypeDimmer, ChannelTypeStrobe, ChannelTypeWidth,
		ChannelTypeHeight, ChannelTypeZoom, ChannelTypeSpeed:
		return true
	}
	return false
}

// Fine returns the 16-bit companion type of c, e.g. "pan-fine".
func (c ChannelType) Fine() ChannelType {
	return c + fineSuffix
}

// Coarse returns the type a fine channel refines.
func (c ChannelType) Coarse() (ChannelType, bool) {
	if !strings.HasSuffix(string(c), fineSuffix) {
		return "", false
	}
	return ChannelType(strings.TrimSuffix(string(c), fineSuffix)), true
}

// Mapping describes how a semantic value is converted into a raw channel value.
type Mapping interface {
	mapping()
}

// AngleMapping maps [MinDegrees, MaxDegrees] onto [0, 255].
type AngleMapping struct {
	MinDegrees float64
	MaxDegrees float64
}

// AmountMapping maps [0, 1] onto [MinValue, MaxValue].
type AmountMapping struct {
	MinValue float64
	MaxValue float64
}

// ColorWheelMapping lists the fixed colours of a colour wheel channel.
type ColorWheelMapping struct {
	Slots []ColorWheelSlot
}

// ColorWheelSlot is one position on a colour wheel.
type ColorWheelSlot struct {
	Name  string
	Red   float64
	Green float64
	Blue  float64
	Value float64
}

func (AngleMapping) mapping()      {}
func (AmountMapping) mapping()     {}
func (ColorWheelMapping) mapping() {}

var (
	defaultAngle  = AngleMapping{MinDegrees: 0, MaxDegrees: 360}
	defaultAmount = AmountMapping{MinValue: 0, MaxValue: 255}
)

// Channel is a single channel of a fixture mode.
type Channel struct {
	Type ChannelType

	// DefaultValue is in degrees for angle channels and raw DMX otherwise.
	DefaultValue float64

	Mapping Mapping
}

// Angle returns the channel's angle mapping, or a full turn when none is set.
func (c Channel) Angle() AngleMapping {
	if m, ok := c.Mapping.(AngleMapping); ok {
		return m
	}
	return defaultAngle
}

// Amount returns the channel's amount mapping, or the full DMX range when none is set.
func (c Channel) Amount() AmountMapping {
	if m, ok := c.Mapping.(AmountMapping); ok {
		return m
	}
	return defaultAmount
}

// Mode is one channel layout of a fixture. Channels are keyed by their 1-based position.
type Mode struct {
	Name     string
	Channels map[int]Channel
}

// NumChannels returns the footprint of the mode.
func (m Mode) NumChannels() int {
	n := 0
	for i := range m.Channels {
		if i > n {
			n = i
		}
	}
	return n
}

// Indices returns the channel positions of the mode in ascending order.
func (m Mode) Indices() []int {
	indices := maps.Keys(m.Channels)
	slices.Sort(indices)
	return indices
}

// Has reports whether the mode contains a channel of type t.
func (m Mode) Has(t ChannelType) bool {
	for _, c := range m.Channels {
		if c.Type == t {
			return true
		}
	}
	return false
}

// Profile holds info for a fixture definition and all of its modes.
type Profile struct {
	Name         string
	Manufacturer string

	Modes map[string]Mode
}

// GetMode returns the named mode.
func (p Profile) GetMode(name string) (Mode, error) {
	if mode, found := p.Modes[name]; found {
		return mode, nil
	}
	return Mode{}, fmt.Errorf("the fixture profile %q does not contain a mode named: %s", p.Name, name)
}
