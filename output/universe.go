package output

import (
	"encoding/hex"
	"math"

	"github.com/robmorgan/lumen/engine/scale"
)

// UniverseChannels is the number of channels in a DMX universe.
const UniverseChannels = 512

// Universe represents a DMX universe. Values are raw DMX levels kept as floats
// so that blending and fine channels keep their precision until Bytes is called.
type Universe struct {
	values [UniverseChannels]float64
	layout *layout
}

// layout is shared between a universe and its clones.
type layout struct {
	snap [UniverseChannels]bool
	fine map[int]int
}

// NewUniverse creates a new DMX universe.
func NewUniverse() *Universe {
	return &Universe{layout: &layout{fine: map[int]int{}}}
}

func valid(index int) bool {
	return index >= 0 && index < UniverseChannels
}

// Set writes a raw level at a zero-based index. Writes outside the universe are dropped.
func (u *Universe) Set(index int, value float64) {
	if valid(index) {
		u.values[index] = value
	}
}

// Get returns the raw level at a zero-based index.
func (u *Universe) Get(index int) float64 {
	if !valid(index) {
		return 0
	}
	return u.values[index]
}

// MarkNonInterpolated makes the channel at index snap instead of blend.
func (u *Universe) MarkNonInterpolated(index int) {
	if valid(index) {
		u.layout.snap[index] = true
	}
}

// IsInterpolated reports whether the channel at index blends.
func (u *Universe) IsInterpolated(index int) bool {
	return !valid(index) || !u.layout.snap[index]
}

// SetFine registers fine as the low byte of coarse.
func (u *Universe) SetFine(coarse, fine int) {
	if valid(coarse) && valid(fine) {
		u.layout.fine[fine] = coarse
	}
}

func (u *Universe) Clone() Writable {
	c := *u
	return &c
}

func (u *Universe) Interpolate(before, after Writable, t float64) {
	a, ok := before.(*Universe)
	if !ok {
		panic(mismatch(u, before))
	}
	b, ok := after.(*Universe)
	if !ok {
		panic(mismatch(u, after))
	}
	for i := range u.values {
		if u.layout.snap[i] {
			if t > 0 {
				u.values[i] = b.values[i]
			} else {
				u.values[i] = a.values[i]
			}
			continue
		}
		u.values[i] = scale.Lerp(a.values[i], b.values[i], t)
	}
}

// Bytes floors and clamps every channel into a DMX frame. Fine channels carry
// the fractional part of their coarse channel.
func (u *Universe) Bytes() []byte {
	buf := make([]byte, UniverseChannels)
	for i, v := range u.values {
		buf[i] = toByte(v)
	}
	for fine, coarse := range u.layout.fine {
		v := scale.Clamp(u.values[coarse], 0, 255)
		buf[fine] = toByte((v - math.Floor(v)) * 256)
	}
	return buf
}

func toByte(v float64) byte {
	if math.IsNaN(v) {
		return 0
	}
	return byte(math.Floor(scale.Clamp(v, 0, 255)))
}

func (u *Universe) String() string {
	return hex.Dump(u.Bytes())
}
