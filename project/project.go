package project

import (
	"github.com/robmorgan/lumen/profile"
	"github.com/robmorgan/lumen/rhythm"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Project is one snapshot of everything the renderer reads. A snapshot handed
// to the renderer must not be mutated.
type Project struct {
	Name string

	ActivePatch uint64
	Patches     map[uint64]Patch
	Groups      map[uint64]Group
	Definitions map[uint64]profile.Profile

	Scenes      map[uint64]*Scene
	ActiveScene uint64

	Shows        map[uint64]*Show
	SelectedShow uint64

	TimingOffsetMs int64
	LiveBeat       rhythm.BeatMetadata
}

// Scene is a grid of tiles and the palettes they draw from.
type Scene struct {
	Name    string
	TileMap []TileMapEntry

	ColorPalettes                    map[uint64]ColorPalette
	ActiveColorPalette               uint64
	LastActiveColorPalette           uint64
	ColorPaletteStartTransition      int64
	ColorPaletteTransitionDurationMs float64
}

// Entry returns the placed tile with the given id.
func (s *Scene) Entry(id uint64) (*TileMapEntry, bool) {
	for i := range s.TileMap {
		if s.TileMap[i].ID == id {
			return &s.TileMap[i], true
		}
	}
	return nil, false
}

// Show is a fixed timeline of light tracks synced to an audio file.
type Show struct {
	Name         string
	LightTracks  []LightTrack
	ColorPalette *ColorPalette

	// Beat comes from the analysed audio track.
	Beat *rhythm.BeatMetadata
}

// Group is a named set of targets, which may include other groups.
type Group struct {
	Name    string
	Targets []OutputTarget
}

// Patch maps fixtures onto outputs.
type Patch struct {
	Name    string
	Outputs map[uint64]Output
}

// Output is one physical or network destination.
type Output struct {
	Name      string
	LatencyMs int64
	Config    OutputConfig
}

// OutputConfig is implemented by DmxOutput and WledOutput.
type OutputConfig interface {
	outputConfig()
}

// DmxOutput is a 512 channel universe.
type DmxOutput struct {
	Universe int
	Fixtures map[uint64]PhysicalDmxFixture
}

// WledOutput is a WLED controller split into segments.
type WledOutput struct {
	IPAddress string
	Segments  map[uint32]WledSegment
}

func (DmxOutput) outputConfig()  {}
func (WledOutput) outputConfig() {}

// PhysicalDmxFixture is a fixture patched into a universe.
type PhysicalDmxFixture struct {
	Name         string
	DefinitionID uint64
	Mode         string

	// ChannelOffset is the zero-based universe index before the fixture's first channel.
	ChannelOffset int

	// AngleOffsets are added, in degrees, to angle writes of the given type.
	AngleOffsets map[profile.ChannelType]float64
}

// WledSegment is a segment of a WLED strip and its idle state.
type WledSegment struct {
	Name              string
	DefaultEffect     int32
	DefaultPalette    int32
	DefaultSpeed      float64
	DefaultBrightness float64
}

// Output returns an output of the active patch.
func (p *Project) Output(id uint64) (Output, bool) {
	patch, ok := p.Patches[p.ActivePatch]
	if !ok {
		return Output{}, false
	}
	out, ok := patch.Outputs[id]
	return out, ok
}

// OutputIDs returns the output ids of the active patch in ascending order.
func (p *Project) OutputIDs() []uint64 {
	ids := maps.Keys(p.Patches[p.ActivePatch].Outputs)
	slices.Sort(ids)
	return ids
}

// Clone copies the parts of the project that user actions mutate: scenes,
// their tiles and palettes. Everything else is shared with p.
func (p *Project) Clone() *Project {
	c := *p
	c.Scenes = make(map[uint64]*Scene, len(p.Scenes))
	for id, scene := range p.Scenes {
		c.Scenes[id] = scene.clone()
	}
	return &c
}

func (s *Scene) clone() *Scene {
	c := *s
	c.TileMap = make([]TileMapEntry, len(s.TileMap))
	for i, entry := range s.TileMap {
		if entry.Tile != nil {
			tile := *entry.Tile
			entry.Tile = &tile
		}
		c.TileMap[i] = entry
	}
	c.ColorPalettes = maps.Clone(s.ColorPalettes)
	return &c
}
