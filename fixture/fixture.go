package fixture

import (
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
)

// Device is anything an effect can write fixture state to: a DMX fixture, a
// WLED segment, or a group broadcasting to its members. Writes against an
// output of the wrong kind are ignored.
type Device interface {
	SetColor(out output.Writable, c project.Color)
	SetAngle(out output.Writable, typ profile.ChannelType, degrees float64)
	SetAmount(out output.Writable, typ profile.ChannelType, amount float64)
	SetChannel(out output.Writable, position int, value float64)
	SetWledEffect(out output.Writable, effect int32)
	SetWledPalette(out output.Writable, palette int32)
}

type dmxDevice struct {
	table *Table
}

func (d dmxDevice) SetColor(out output.Writable, c project.Color) {
	if u, ok := out.(*output.Universe); ok {
		d.table.WriteColor(u, c)
	}
}

func (d dmxDevice) SetAngle(out output.Writable, typ profile.ChannelType, degrees float64) {
	if u, ok := out.(*output.Universe); ok {
		d.table.WriteAngle(u, typ, degrees)
	}
}

func (d dmxDevice) SetAmount(out output.Writable, typ profile.ChannelType, amount float64) {
	if u, ok := out.(*output.Universe); ok {
		d.table.WriteAmount(u, typ, amount)
	}
}

func (d dmxDevice) SetChannel(out output.Writable, position int, value float64) {
	if u, ok := out.(*output.Universe); ok {
		d.table.WriteChannel(u, position, value)
	}
}

func (dmxDevice) SetWledEffect(output.Writable, int32)  {}
func (dmxDevice) SetWledPalette(output.Writable, int32) {}

type wledDevice struct {
	segment uint32
}

func (d wledDevice) modify(out output.Writable, fn func(s *output.Segment)) {
	if w, ok := out.(*output.Wled); ok {
		w.Modify(d.segment, fn)
	}
}

func (d wledDevice) SetColor(out output.Writable, c project.Color) {
	d.modify(out, func(s *output.Segment) {
		s.Color = output.RGB{R: c.Red + c.White, G: c.Green + c.White, B: c.Blue + c.White}
	})
}

func (wledDevice) SetAngle(output.Writable, profile.ChannelType, float64) {}

func (d wledDevice) SetAmount(out output.Writable, typ profile.ChannelType, amount float64) {
	switch typ {
	case profile.ChannelTypeDimmer:
		d.modify(out, func(s *output.Segment) { s.Brightness = amount })
	case profile.ChannelTypeSpeed:
		d.modify(out, func(s *output.Segment) { s.Speed = amount })
	}
}

func (wledDevice) SetChannel(output.Writable, int, float64) {}

func (d wledDevice) SetWledEffect(out output.Writable, effect int32) {
	d.modify(out, func(s *output.Segment) { s.Effect = effect })
}

func (d wledDevice) SetWledPalette(out output.Writable, palette int32) {
	d.modify(out, func(s *output.Segment) { s.Palette = palette })
}

type groupDevice struct {
	members []Device
}

func (g groupDevice) SetColor(out output.Writable, c project.Color) {
	for _, m := range g.members {
		m.SetColor(out, c)
	}
}

func (g groupDevice) SetAngle(out output.Writable, typ profile.ChannelType, degrees float64) {
	for _, m := range g.members {
		m.SetAngle(out, typ, degrees)
	}
}

func (g groupDevice) SetAmount(out output.Writable, typ profile.ChannelType, amount float64) {
	for _, m := range g.members {
		m.SetAmount(out, typ, amount)
	}
}

func (g groupDevice) SetChannel(out output.Writable, position int, value float64) {
	for _, m := range g.members {
		m.SetChannel(out, position, value)
	}
}

func (g groupDevice) SetWledEffect(out output.Writable, effect int32) {
	for _, m := range g.members {
		m.SetWledEffect(out, effect)
	}
}

func (g groupDevice) SetWledPalette(out output.Writable, palette int32) {
	for _, m := range g.members {
		m.SetWledPalette(out, palette)
	}
}
