package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelTypeClasses(t *testing.T) {
	t.Parallel()

	assert.True(t, ChannelTypeMagenta.IsColor())
	assert.False(t, ChannelTypeColorWheel.IsColor())
	assert.True(t, ChannelTypeTilt.IsAngle())
	assert.True(t, ChannelTypeZoom.IsAmount())
	assert.False(t, ChannelTypeOther.IsAmount())
}

func TestFineChannelTypes(t *testing.T) {
	t.Parallel()

	fine := ChannelTypePan.Fine()
	assert.Equal(t, ChannelType("pan-fine"), fine)

	coarse, ok := fine.Coarse()
	require.True(t, ok)
	assert.Equal(t, ChannelTypePan, coarse)

	_, ok = ChannelTypePan.Coarse()
	assert.False(t, ok)
}

func TestMode(t *testing.T) {
	t.Parallel()

	mode := Mode{
		Name: "4ch",
		Channels: map[int]Channel{
			4: {Type: ChannelTypeBlue},
			1: {Type: ChannelTypeDimmer},
			2: {Type: ChannelTypeRed},
			3: {Type: ChannelTypeGreen},
		},
	}

	assert.Equal(t, 4, mode.NumChannels())
	assert.Equal(t, []int{1, 2, 3, 4}, mode.Indices())
	assert.True(t, mode.Has(ChannelTypeRed))
	assert.False(t, mode.Has(ChannelTypeWhite))

	p := Profile{Name: "par", Modes: map[string]Mode{"4ch": mode}}
	got, err := p.GetMode("4ch")
	require.NoError(t, err)
	assert.Equal(t, "4ch", got.Name)

	_, err = p.GetMode("8ch")
	require.Error(t, err)
}

func TestDefaultMappings(t *testing.T) {
	t.Parallel()

	c := Channel{Type: ChannelTypePan}
	assert.Equal(t, AngleMapping{MinDegrees: 0, MaxDegrees: 360}, c.Angle())
	assert.Equal(t, AmountMapping{MinValue: 0, MaxValue: 255}, c.Amount())

	c.Mapping = AngleMapping{MinDegrees: -270, MaxDegrees: 270}
	assert.Equal(t, -270.0, c.Angle().MinDegrees)
}
