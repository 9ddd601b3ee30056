package islandhop

import (
	"github.com/gekko3d/islandhop/collision"
)

type CursorStyle int

const (
	CursorDefault CursorStyle = iota
	CursorPointer
)

func (c CursorStyle) String() string {
	if c == CursorPointer {
		return "pointer"
	}
	return "default"
}

// Presenter receives the visual signals picking produces.
type Presenter interface {
	SetCursor(style CursorStyle)
	Select(key string)
}

// LogPresenter reports picking signals to a Logger. Used when no window is attached.
type LogPresenter struct {
	Log Logger
	// OnSelect, when set, is called with every selected anchor key.
	OnSelect func(key string)
}

func (p LogPresenter) SetCursor(style CursorStyle) {
	p.Log.Debugf("cursor: %s", style)
}

func (p LogPresenter) Select(key string) {
	p.Log.Infof("selected %s", key)
	if p.OnSelect != nil {
		p.OnSelect(key)
	}
}

// Picking holds the presenter and the last cursor style sent to it.
type Picking struct {
	presenter Presenter
	cursor    CursorStyle
	cursorSet bool
}

func NewPicking(p Presenter) *Picking {
	return &Picking{presenter: p}
}

// PickAnchor returns the key of the anchor whose triangles the ray hits first.
// Equal distances resolve to the anchor listed first.
func PickAnchor(anchors []*Anchor, ray collision.Ray) (string, bool) {
	var (
		best  string
		bestT float32
		found bool
	)
	for _, a := range anchors {
		t, ok := a.Pick.Raycast(ray)
		if !ok {
			continue
		}
		if !found || t < bestT {
			best, bestT, found = a.Key, t, true
		}
	}
	return best, found
}

// PickingSystem resolves a pending click against the current hover, then
// refreshes the hover from the pointer ray.
func PickingSystem(session *SessionState, level *Level, cam *FollowCamera, picking *Picking) {
	if session.clickPending {
		session.clickPending = false
		if session.HoveredKey != "" {
			picking.presenter.Select(session.HoveredKey)
		}
	}

	key, hit := PickAnchor(level.Anchors, cam.PickRay(session.Pointer))
	style := CursorDefault
	if hit {
		style = CursorPointer
	}
	session.HoveredKey = key

	if !picking.cursorSet || picking.cursor != style {
		picking.presenter.SetCursor(style)
		picking.cursor = style
		picking.cursorSet = true
	}
}

type PickingModule struct {
	// Presenter receives cursor and selection signals. When nil the window
	// presenter is used if a window is installed, otherwise a LogPresenter.
	Presenter Presenter
	// OnSelect is handed to the default presenter. Ignored when Presenter is set.
	OnSelect func(key string)
}

func (m PickingModule) Install(app *App, cmd *Commands) {
	presenter := m.Presenter
	if presenter == nil {
		log := Scoped(app.Logger(), "picking")
		if ws, ok := Resource[WindowState](app); ok {
			wp := NewWindowPresenter(ws, log)
			wp.OnSelect = m.OnSelect
			presenter = wp
		} else {
			presenter = LogPresenter{Log: log, OnSelect: m.OnSelect}
		}
	}
	cmd.AddResources(NewPicking(presenter))
	cmd.UseSystem(System(PickingSystem).InStage(PostUpdate))
}
