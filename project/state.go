package project

// FixtureState is a sparse set of writes. Nil fields are left untouched.
type FixtureState struct {
	Color LightColor

	Pan  *float64
	Tilt *float64

	Dimmer *float64
	Strobe *float64
	Width  *float64
	Height *float64
	Zoom   *float64
	Speed  *float64

	WledEffect  *int32
	WledPalette *int32

	// Channels are raw writes addressed by 1-based position within the fixture.
	Channels []ChannelValue
}

// ChannelValue is a raw DMX write.
type ChannelValue struct {
	Index int
	Value float64
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}
