package fixture

import (
	"testing"

	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(t *testing.T, outputID, fixtureID uint64) *Table {
	p := testProject()
	o, ok := p.Output(outputID)
	require.True(t, ok)
	f := o.Config.(project.DmxOutput).Fixtures[fixtureID]

	tbl, err := NewTableCache().Get(p.Definitions, f)
	require.NoError(t, err)
	return tbl
}

func TestWriteColorWithWhiteChannel(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	table(t, 1, 1).WriteColor(u, project.Color{Red: 0.5, Green: 0.25, Blue: 1, White: 0.2})

	assert.InDelta(t, 127.5, u.Get(1), 1e-9)
	assert.InDelta(t, 63.75, u.Get(2), 1e-9)
	assert.InDelta(t, 255, u.Get(3), 1e-9)
	assert.InDelta(t, 51, u.Get(4), 1e-9)
	assert.Equal(t, 0.0, u.Get(0))
}

func TestWriteColorFoldsWhiteWithoutWhiteChannel(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	table(t, 1, 2).WriteColor(u, project.Color{Red: 0.5, White: 0.2})

	assert.InDelta(t, 178.5, u.Get(10), 1e-9)
	assert.InDelta(t, 51, u.Get(11), 1e-9)
	assert.InDelta(t, 51, u.Get(12), 1e-9)
}

func TestWriteColorInvertsCMY(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	table(t, 2, 1).WriteColor(u, project.Color{Red: 1, Green: 0.5})

	assert.Equal(t, 0.0, u.Get(0))
	assert.InDelta(t, 127.5, u.Get(1), 1e-9)
	assert.InDelta(t, 255, u.Get(2), 1e-9)
}

func TestWriteColorWheelPicksNearestSlot(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	tbl := table(t, 1, 3)

	tbl.WriteColor(u, project.Color{Red: 0.9, Green: 0.1})
	assert.Equal(t, 10.0, u.Get(23))

	tbl.WriteColor(u, project.Color{Blue: 0.8, Red: 0.2})
	assert.Equal(t, 20.0, u.Get(23))
}

func TestWriteAngleAppliesOffsetAndClamps(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	tbl := table(t, 1, 3)

	tbl.WriteAngle(u, profile.ChannelTypePan, 0)
	assert.InDelta(t, 170, u.Get(20), 1e-9)

	tbl.WriteAngle(u, profile.ChannelTypePan, 400)
	assert.InDelta(t, 255, u.Get(20), 1e-9)

	tbl.WriteAngle(u, profile.ChannelTypeTilt, -180)
	assert.Equal(t, 0.0, u.Get(22))

	// a type the fixture lacks is a no-op
	tbl.WriteAmount(u, profile.ChannelTypeZoom, 1)
	assert.Equal(t, make([]byte, output.UniverseChannels)[30:], u.Bytes()[30:])
}

func TestWriteAmountWraps(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	tbl := table(t, 1, 1)

	tbl.WriteAmount(u, profile.ChannelTypeStrobe, 0.5)
	assert.InDelta(t, 44, u.Get(5), 1e-9)

	tbl.WriteAmount(u, profile.ChannelTypeDimmer, 0.5)
	assert.InDelta(t, 127.5, u.Get(0), 1e-9)
}

func TestWriteChannelIsRaw(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	table(t, 1, 2).WriteChannel(u, 2, 99)
	assert.Equal(t, 99.0, u.Get(11))
}

func TestApplyDefaults(t *testing.T) {
	t.Parallel()

	u := output.NewUniverse()
	tbl := table(t, 1, 3)
	tbl.ApplyDefaults(u)

	assert.Equal(t, 5, tbl.Footprint())
	// pan 0 degrees plus the 90 degree offset
	assert.InDelta(t, 170, u.Get(20), 1e-9)
	// tilt 45 degrees on a -90..90 range
	assert.InDelta(t, 191.25, u.Get(22), 1e-9)
	assert.Equal(t, 255.0, u.Get(24))
	assert.False(t, u.IsInterpolated(23))

	// pan-fine carries the fraction of the pan channel
	u.Set(20, 100.5)
	b := u.Bytes()
	assert.Equal(t, byte(100), b[20])
	assert.Equal(t, byte(128), b[21])
}

func TestTableCacheReusesTables(t *testing.T) {
	t.Parallel()

	p := testProject()
	cache := NewTableCache()
	f := p.Patches[1].Outputs[1].Config.(project.DmxOutput).Fixtures[3]

	a, err := cache.Get(p.Definitions, f)
	require.NoError(t, err)
	b, err := cache.Get(p.Definitions, f)
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, cache.Len())

	f.AngleOffsets = map[profile.ChannelType]float64{profile.ChannelTypePan: 0}
	c, err := cache.Get(p.Definitions, f)
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	_, err = cache.Get(p.Definitions, project.PhysicalDmxFixture{Name: "ghost", DefinitionID: 99})
	require.Error(t, err)
	_, err = cache.Get(p.Definitions, project.PhysicalDmxFixture{Name: "bad mode", DefinitionID: defRGB, Mode: "9ch"})
	require.Error(t, err)
}
