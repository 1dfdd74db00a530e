package engine

import (
	"fmt"
	"strings"

	goerrors "github.com/gruntwork-io/go-commons/errors"
	"github.com/robmorgan/lumen/output"
	"github.com/robmorgan/lumen/project"
)

// Mode selects what a frame shows.
type Mode int

const (
	ModeBlackout Mode = iota
	ModeScene
	ModeShow
	ModeGroupDebug
)

var modeNames = map[Mode]string{
	ModeBlackout:   "blackout",
	ModeScene:      "scene",
	ModeShow:       "show",
	ModeGroupDebug: "group-debug",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return ModeBlackout, fmt.Errorf("unknown render mode %q", s)
}

// Request describes one frame of one output.
type Request struct {
	Mode     Mode
	OutputID uint64
	Frame    uint32

	// Now is wall-clock ms for scenes and show time for shows.
	Now int64
	// GroupID is the group lit in ModeGroupDebug.
	GroupID uint64
}

// Render renders one frame. Scenes use the project's live beat. A panic while
// rendering is returned as an error.
func (r *Renderer) Render(p *project.Project, req Request) (out output.Writable, err error) {
	defer goerrors.Recover(func(cause error) {
		out, err = nil, cause
	})

	switch req.Mode {
	case ModeBlackout:
		return blackout(p, req.OutputID)
	case ModeScene:
		return r.RenderScene(req.Now, p.LiveBeat, req.Frame, p, req.OutputID)
	case ModeShow:
		return r.RenderShow(req.Now, req.Frame, p, req.OutputID)
	case ModeGroupDebug:
		return r.RenderGroupDebug(p, req.GroupID, req.OutputID)
	default:
		return nil, project.Invariantf("unknown render mode %v", req.Mode)
	}
}
