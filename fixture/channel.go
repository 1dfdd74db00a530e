package fixture

import (
	"math"

	"github.com/robmorgan/lumen/engine/scale"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
)

// Table maps semantic writes of one patched fixture onto absolute universe indices.
// It is built once per fixture layout and never changes afterwards.
type Table struct {
	offset    int
	footprint int

	colors   []colorChannel
	hasWhite bool
	wheel    *wheelChannel

	angles  map[profile.ChannelType][]angleChannel
	amounts map[profile.ChannelType][]amountChannel

	defaults []rawValue
	snap     []int
	fine     [][2]int
}

type colorChannel struct {
	index int
	typ   profile.ChannelType
}

type wheelChannel struct {
	index int
	slots []profile.ColorWheelSlot
}

type angleChannel struct {
	index   int
	mapping profile.AngleMapping
	offset  float64
}

type amountChannel struct {
	index   int
	mapping profile.AmountMapping
}

type rawValue struct {
	index int
	value float64
}

// NewTable builds the channel table for a fixture patched in the given mode.
func NewTable(f project.PhysicalDmxFixture, mode profile.Mode) *Table {
	t := &Table{
		offset:    f.ChannelOffset,
		footprint: mode.NumChannels(),
		hasWhite:  mode.Has(profile.ChannelTypeWhite),
		angles:    map[profile.ChannelType][]angleChannel{},
		amounts:   map[profile.ChannelType][]amountChannel{},
	}

	positions := map[profile.ChannelType]int{}
	for _, i := range mode.Indices() {
		channel := mode.Channels[i]
		index := t.absolute(i)
		if _, seen := positions[channel.Type]; !seen {
			positions[channel.Type] = index
		}

		value := channel.DefaultValue
		switch {
		case channel.Type.IsColor():
			t.colors = append(t.colors, colorChannel{index: index, typ: channel.Type})
		case channel.Type == profile.ChannelTypeColorWheel:
			if m, ok := channel.Mapping.(profile.ColorWheelMapping); ok && t.wheel == nil {
				t.wheel = &wheelChannel{index: index, slots: m.Slots}
			}
			t.snap = append(t.snap, index)
		case channel.Type.IsAngle():
			a := angleChannel{index: index, mapping: channel.Angle(), offset: f.AngleOffsets[channel.Type]}
			t.angles[channel.Type] = append(t.angles[channel.Type], a)
			value = a.raw(channel.DefaultValue)
		case channel.Type.IsAmount():
			t.amounts[channel.Type] = append(t.amounts[channel.Type], amountChannel{index: index, mapping: channel.Amount()})
		}
		t.defaults = append(t.defaults, rawValue{index: index, value: value})
	}

	for _, i := range mode.Indices() {
		coarse, ok := mode.Channels[i].Type.Coarse()
		if !ok {
			continue
		}
		if index, found := positions[coarse]; found {
			t.fine = append(t.fine, [2]int{index, t.absolute(i)})
		}
	}

	if len(t.colors) > 0 {
		t.wheel = nil
	}
	return t
}

// absolute converts a 1-based mode position into a universe index.
func (t *Table) absolute(position int) int {
	return t.offset + position - 1
}

// Footprint returns the number of channels the fixture occupies.
func (t *Table) Footprint() int {
	return t.footprint
}

// ApplyDefaults writes every default level and registers snapping and fine channels.
func (t *Table) ApplyDefaults(u *output.Universe) {
	for _, d := range t.defaults {
		u.Set(d.index, d.value)
	}
	for _, index := range t.snap {
		u.MarkNonInterpolated(index)
	}
	for _, pair := range t.fine {
		u.SetFine(pair[0], pair[1])
	}
}

// WriteColor writes an RGBW colour into every colour channel of the fixture.
// Fixtures without a white emitter fold white into red, green and blue.
func (t *Table) WriteColor(u *output.Universe, c project.Color) {
	w := c.White
	if t.hasWhite {
		w = 0
	}
	for _, ch := range t.colors {
		switch ch.typ {
		case profile.ChannelTypeRed:
			u.Set(ch.index, (c.Red+w)*255)
		case profile.ChannelTypeGreen:
			u.Set(ch.index, (c.Green+w)*255)
		case profile.ChannelTypeBlue:
			u.Set(ch.index, (c.Blue+w)*255)
		case profile.ChannelTypeCyan:
			u.Set(ch.index, (1-c.Red)*255)
		case profile.ChannelTypeMagenta:
			u.Set(ch.index, (1-c.Green)*255)
		case profile.ChannelTypeYellow:
			u.Set(ch.index, (1-c.Blue)*255)
		case profile.ChannelTypeWhite:
			u.Set(ch.index, c.White*255)
		}
	}
	if t.wheel != nil {
		if slot, ok := t.wheel.nearest(c); ok {
			u.Set(t.wheel.index, slot.Value)
		}
	}
}

// WriteAngle writes degrees into every channel of an angle type.
func (t *Table) WriteAngle(u *output.Universe, typ profile.ChannelType, degrees float64) {
	for _, ch := range t.angles[typ] {
		u.Set(ch.index, ch.raw(degrees))
	}
}

// WriteAmount writes a unit amount into every channel of an amount type.
func (t *Table) WriteAmount(u *output.Universe, typ profile.ChannelType, amount float64) {
	for _, ch := range t.amounts[typ] {
		m := ch.mapping
		u.Set(ch.index, scale.Mod(amount*(m.MaxValue-m.MinValue)+m.MinValue, 256))
	}
}

// WriteChannel writes a raw level at a 1-based position of the fixture.
func (t *Table) WriteChannel(u *output.Universe, position int, value float64) {
	u.Set(t.absolute(position), value)
}

func (a angleChannel) raw(degrees float64) float64 {
	return 255 * scale.ToUnitClamp(a.mapping.MinDegrees, a.mapping.MaxDegrees)(degrees+a.offset)
}

func (w *wheelChannel) nearest(c project.Color) (profile.ColorWheelSlot, bool) {
	best, bestDistance := -1, math.Inf(1)
	for i, slot := range w.slots {
		d := math.Pow(slot.Red-c.Red, 2) + math.Pow(slot.Green-c.Green, 2) + math.Pow(slot.Blue-c.Blue, 2)
		if d < bestDistance {
			best, bestDistance = i, d
		}
	}
	if best < 0 {
		return profile.ColorWheelSlot{}, false
	}
	return w.slots[best], true
}
