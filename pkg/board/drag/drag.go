// Package drag implements the scene drag-and-drop session: a small state
// machine that tracks one gesture from pick-up to commit or cancel. It is
// pointer-source agnostic; the TUI feeds it press/move/release coordinates
// and resolves which column sits under the pointer.
package drag

import "github.com/scriptloft/beatboard/pkg/screenplay"

// State enumerates the drag session lifecycle.
type State int

const (
	// StateIdle means no scene is being dragged.
	StateIdle State = iota
	// StatePending means the pointer is down on a card but has not yet
	// travelled the activation distance; releasing here is a click.
	StatePending
	// StateDragging means the gesture activated and a floating preview
	// should render.
	StateDragging
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// DefaultActivationDistance is the cell travel needed before a press becomes
// a drag rather than a click.
const DefaultActivationDistance = 3

// Config tunes the gesture recognition.
type Config struct {
	// ActivationDistance is the minimum pointer travel, in cells, before
	// the session activates. Zero means DefaultActivationDistance.
	ActivationDistance int
}

// MoveRequest is the commit produced by a successful drop onto a foreign
// column. Order is always the destination's pre-drop scene count: scenes are
// appended to the end of the target column, mid-column drop positions are
// ignored.
type MoveRequest struct {
	SceneID    string
	FromBeatID string
	ToBeatID   string
	Order      int
}

// DropResult describes how a released gesture resolved.
type DropResult int

const (
	// DropNone: the release did not correspond to an active session.
	DropNone DropResult = iota
	// DropSelect: released below the activation distance; the press was a
	// click and the scene should be selected, not moved.
	DropSelect
	// DropNoop: dropped onto the column that already owns the scene.
	DropNoop
	// DropAbandoned: dropped with no hovered column, or the dragged scene
	// is no longer present in any beat; no request is issued.
	DropAbandoned
	// DropMove: a move request was produced.
	DropMove
)

// Controller runs a single drag session at a time.
type Controller struct {
	cfg Config

	state   State
	sceneID string
	hover   string

	originX int
	originY int
}

// NewController builds an idle controller.
func NewController(cfg Config) *Controller {
	if cfg.ActivationDistance <= 0 {
		cfg.ActivationDistance = DefaultActivationDistance
	}
	return &Controller{cfg: cfg}
}

// State reports the current session state.
func (c *Controller) State() State {
	return c.state
}

// SceneID returns the scene under the gesture, if any.
func (c *Controller) SceneID() (string, bool) {
	if c.state == StateIdle {
		return "", false
	}
	return c.sceneID, c.sceneID != ""
}

// HoverBeat returns the column currently hovered while dragging.
func (c *Controller) HoverBeat() (string, bool) {
	if c.state != StateDragging {
		return "", false
	}
	return c.hover, c.hover != ""
}

// PointerDown starts a potential drag on the identified scene card. A press
// outside any card (empty sceneID) is ignored.
func (c *Controller) PointerDown(sceneID string, x, y int) {
	if sceneID == "" {
		return
	}
	c.state = StatePending
	c.sceneID = sceneID
	c.hover = ""
	c.originX = x
	c.originY = y
}

// PointerMove updates the gesture position, activating the drag once travel
// exceeds the activation distance. Rows count double: a terminal cell is
// roughly twice as tall as it is wide.
func (c *Controller) PointerMove(x, y int) {
	if c.state != StatePending {
		return
	}
	dx := absInt(x - c.originX)
	dy := absInt(y-c.originY) * 2
	if dx >= c.cfg.ActivationDistance || dy >= c.cfg.ActivationDistance {
		c.state = StateDragging
	}
}

// Hover records which column the pointer is over. Only meaningful while
// dragging; an empty id clears the target.
func (c *Controller) Hover(beatID string) {
	if c.state != StateDragging {
		return
	}
	c.hover = beatID
}

// Drop completes the gesture against the provided beat snapshot and returns
// the move request to issue, if any. The session always exits to Idle.
func (c *Controller) Drop(beats []screenplay.Beat) (*MoveRequest, DropResult) {
	defer c.reset()

	switch c.state {
	case StateIdle:
		return nil, DropNone
	case StatePending:
		return nil, DropSelect
	}

	if c.hover == "" {
		return nil, DropAbandoned
	}

	owner, ok := screenplay.FindSceneBeat(beats, c.sceneID)
	if !ok {
		// The scene vanished between pick-up and drop (stale snapshot or
		// concurrent edit elsewhere); issue nothing.
		return nil, DropAbandoned
	}
	if owner.ID == c.hover {
		return nil, DropNoop
	}

	order := screenplay.SceneCount(beats, c.hover)
	if order < 0 {
		return nil, DropAbandoned
	}
	return &MoveRequest{
		SceneID:    c.sceneID,
		FromBeatID: owner.ID,
		ToBeatID:   c.hover,
		Order:      order,
	}, DropMove
}

// Cancel aborts the session (pointer released outside the board, Esc, focus
// loss) without producing a request.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.sceneID = ""
	c.hover = ""
	c.originX = 0
	c.originY = 0
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
