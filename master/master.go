package master

import (
	"fmt"
	"sync"

	"github.com/robmorgan/lumen/logger"
	"github.com/robmorgan/lumen/project"
	"github.com/robmorgan/lumen/rhythm"
	"github.com/robmorgan/lumen/tile"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// Manager is the set of user actions the master accepts between frames.
type Manager interface {
	Snapshot() *project.Project
	ToggleTile(tileID uint64) (bool, error)
	SetTileStrength(tileID uint64, strength float64) error
	TileStrength(tileID uint64) (float64, error)
	SetActivePalette(paletteID uint64, transitionMs float64) error
	SetActiveScene(sceneID uint64) error
	SetBeat(beat rhythm.BeatMetadata)
}

var _ Manager = (*Master)(nil)

// Master owns the live project. Every mutation works on a copy which then
// replaces the current snapshot, so a snapshot handed to the render loop is
// never written to.
type Master struct {
	mu      sync.Mutex
	clock   clock.PassiveClock
	project *project.Project
}

// NewMaster creates a master for p. The master takes ownership of p.
func NewMaster(clk clock.PassiveClock, p *project.Project) *Master {
	return &Master{clock: clk, project: p}
}

// Snapshot returns the current project. It must not be modified.
func (m *Master) Snapshot() *project.Project {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.project
}

func (m *Master) now() int64 {
	return m.clock.Now().UnixMilli()
}

func (m *Master) update(fn func(p *project.Project) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.project.Clone()
	if err := fn(next); err != nil {
		return err
	}
	m.project = next
	return nil
}

func activeScene(p *project.Project) (*project.Scene, error) {
	scene, found := p.Scenes[p.ActiveScene]
	if !found || scene == nil {
		return nil, fmt.Errorf("could not find scene %d", p.ActiveScene)
	}
	return scene, nil
}

func findTile(p *project.Project, tileID uint64) (*project.Tile, error) {
	scene, err := activeScene(p)
	if err != nil {
		return nil, err
	}
	entry, found := scene.Entry(tileID)
	if !found || entry.Tile == nil {
		return nil, fmt.Errorf("could not find tile %d in scene %q", tileID, scene.Name)
	}
	return entry.Tile, nil
}

// ToggleTile switches a tile of the active scene on or off and reports
// whether it is now enabled.
func (m *Master) ToggleTile(tileID uint64) (bool, error) {
	var enabled bool
	err := m.update(func(p *project.Project) error {
		t, err := findTile(p, tileID)
		if err != nil {
			return err
		}
		_, enabled = tile.Toggle(t, p.LiveBeat, m.now())

		logger.GetProjectLogger().WithFields(logrus.Fields{"tile_id": tileID, "tile_name": t.Name}).
			Infof("ToggleTile (enabled=%v)", enabled)
		return nil
	})
	return enabled, err
}

// SetTileStrength pins a tile to a fader value.
func (m *Master) SetTileStrength(tileID uint64, strength float64) error {
	if strength < 0 || strength > 1 {
		return fmt.Errorf("tile strength %v is outside [0, 1]", strength)
	}
	return m.update(func(p *project.Project) error {
		t, err := findTile(p, tileID)
		if err != nil {
			return err
		}
		t.Transition = project.AbsoluteStrength{Value: strength}

		logger.GetProjectLogger().WithFields(logrus.Fields{"tile_id": tileID, "strength": strength}).Debug("SetTileStrength")
		return nil
	})
}

// TileStrength returns the strength a controller should display for a tile.
func (m *Master) TileStrength(tileID uint64) (float64, error) {
	p := m.Snapshot()
	t, err := findTile(p, tileID)
	if err != nil {
		return 0, err
	}
	return tile.ActiveAmount(t, p.LiveBeat, m.now()), nil
}

// SetActivePalette starts a transition of the active scene to another
// palette. The palette shown right now becomes the starting point, so an
// interrupted transition restarts from its target.
func (m *Master) SetActivePalette(paletteID uint64, transitionMs float64) error {
	return m.update(func(p *project.Project) error {
		scene, err := activeScene(p)
		if err != nil {
			return err
		}
		if _, found := scene.ColorPalettes[paletteID]; !found {
			return fmt.Errorf("could not find palette %d in scene %q", paletteID, scene.Name)
		}

		scene.LastActiveColorPalette = scene.ActiveColorPalette
		scene.ActiveColorPalette = paletteID
		scene.ColorPaletteStartTransition = m.now()
		scene.ColorPaletteTransitionDurationMs = transitionMs

		logger.GetProjectLogger().WithFields(logrus.Fields{
			"palette_id":    paletteID,
			"palette_name":  scene.ColorPalettes[paletteID].Name,
			"transition_ms": transitionMs,
		}).Info("SetActivePalette")
		return nil
	})
}

// SetActiveScene switches the scene rendered in scene mode.
func (m *Master) SetActiveScene(sceneID uint64) error {
	return m.update(func(p *project.Project) error {
		if _, found := p.Scenes[sceneID]; !found {
			return fmt.Errorf("could not find scene %d", sceneID)
		}
		p.ActiveScene = sceneID
		return nil
	})
}

// SetBeat replaces the live beat used by scenes.
func (m *Master) SetBeat(beat rhythm.BeatMetadata) {
	// cannot fail
	_ = m.update(func(p *project.Project) error {
		p.LiveBeat = beat
		return nil
	})
	logger.GetProjectLogger().WithFields(logrus.Fields{"length_ms": beat.LengthMs, "offset_ms": beat.OffsetMs}).Debug("SetBeat")
}
