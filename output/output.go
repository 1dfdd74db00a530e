package output

import "fmt"

// Writable is the destination of a render pass.
type Writable interface {
	// Clone returns a deep copy of the output.
	Clone() Writable

	// Interpolate overwrites the receiver with before blended towards after by
	// t in [0, 1]. Channels that cannot blend take after's value for any t > 0.
	Interpolate(before, after Writable, t float64)
}

func mismatch(want, got Writable) string {
	return fmt.Sprintf("cannot interpolate %T with %T", want, got)
}
