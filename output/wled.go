package output

import (
	"math"

	"github.com/robmorgan/lumen/engine/scale"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RGB is a colour with components in [0, 1].
type RGB struct {
	R float64
	G float64
	B float64
}

// Segment is the state of one WLED segment.
type Segment struct {
	Effect     int32
	Palette    int32
	Color      RGB
	Speed      float64
	Brightness float64
}

// Wled is the state of every segment of a WLED controller.
type Wled struct {
	Segments map[uint32]Segment
}

// NewWled creates an output with no segments.
func NewWled() *Wled {
	return &Wled{Segments: map[uint32]Segment{}}
}

// Modify applies fn to an existing segment.
func (w *Wled) Modify(id uint32, fn func(s *Segment)) bool {
	s, ok := w.Segments[id]
	if !ok {
		return false
	}
	fn(&s)
	w.Segments[id] = s
	return true
}

func (w *Wled) Clone() Writable {
	return &Wled{Segments: maps.Clone(w.Segments)}
}

// Interpolate blends colour, brightness and speed. Effect and palette ids snap.
func (w *Wled) Interpolate(before, after Writable, t float64) {
	a, ok := before.(*Wled)
	if !ok {
		panic(mismatch(w, before))
	}
	b, ok := after.(*Wled)
	if !ok {
		panic(mismatch(w, after))
	}

	segments := make(map[uint32]Segment, len(b.Segments))
	for id, to := range b.Segments {
		from, ok := a.Segments[id]
		if !ok {
			from = to
		}
		s := from
		if t > 0 {
			s.Effect = to.Effect
			s.Palette = to.Palette
		}
		s.Color = RGB{
			R: scale.Lerp(from.Color.R, to.Color.R, t),
			G: scale.Lerp(from.Color.G, to.Color.G, t),
			B: scale.Lerp(from.Color.B, to.Color.B, t),
		}
		s.Speed = scale.Lerp(from.Speed, to.Speed, t)
		s.Brightness = scale.Lerp(from.Brightness, to.Brightness, t)
		segments[id] = s
	}
	w.Segments = segments
}

// WledState is the JSON body of a WLED state update.
type WledState struct {
	Transition int           `json:"transition"`
	Segments   []WledSegment `json:"seg"`
}

// WledSegment is one entry of WledState.
type WledSegment struct {
	ID         uint32     `json:"id"`
	Colors     [][3]uint8 `json:"col"`
	Effect     int32      `json:"fx"`
	Speed      uint8      `json:"sx"`
	Palette    int32      `json:"pal"`
	Brightness uint8      `json:"bri"`
}

// State converts the output into a WLED JSON state, segments ordered by id.
func (w *Wled) State() WledState {
	ids := maps.Keys(w.Segments)
	slices.Sort(ids)

	state := WledState{Segments: make([]WledSegment, 0, len(ids))}
	for _, id := range ids {
		s := w.Segments[id]
		state.Segments = append(state.Segments, WledSegment{
			ID:         id,
			Colors:     [][3]uint8{{unitByte(s.Color.R), unitByte(s.Color.G), unitByte(s.Color.B)}},
			Effect:     s.Effect,
			Speed:      unitByte(s.Speed),
			Palette:    s.Palette,
			Brightness: unitByte(s.Brightness),
		})
	}
	return state
}

func unitByte(v float64) uint8 {
	return uint8(math.Floor(scale.Unit(v) * 255))
}
