package core

// Action represents a semantic menu action, abstracted from physical keys and
// pointer clicks. Buttons on screen resolve to the same actions as hotkeys.
type Action int

const (
	ActionNone Action = iota
	ActionStart
	ActionCredits
	ActionQuit
	ActionBack
	ActionChooseEasy
	ActionChooseNormal
	ActionChooseHard
	ActionRetry
	ActionMenu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionCredits:
		return "Credits"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	case ActionChooseEasy:
		return "Easy"
	case ActionChooseNormal:
		return "Normal"
	case ActionChooseHard:
		return "Hard"
	case ActionRetry:
		return "Retry"
	case ActionMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Difficulty returns the difficulty a choose action selects.
func (a Action) Difficulty() (Difficulty, bool) {
	switch a {
	case ActionChooseEasy:
		return DifficultyEasy, true
	case ActionChooseNormal:
		return DifficultyNormal, true
	case ActionChooseHard:
		return DifficultyHard, true
	}
	return 0, false
}

// Lane is one of the four cue tracks, left to right on screen.
type Lane int

// Lanes in screen order. The visual marker of each lane is fixed:
// left, down, up, right.
const (
	LaneLeft Lane = iota
	LaneDown
	LaneUp
	LaneRight
	LaneCount = 4
)

// String returns the name of the lane's visual marker.
func (l Lane) String() string {
	switch l {
	case LaneLeft:
		return "Left"
	case LaneDown:
		return "Down"
	case LaneUp:
		return "Up"
	case LaneRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Valid reports whether l names one of the four lanes.
func (l Lane) Valid() bool {
	return l >= 0 && l < LaneCount
}

// EventKind discriminates input events.
type EventKind int

const (
	EventAction EventKind = iota
	EventLanePress
	EventPointer
)

// PointerKind discriminates pointer events.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerRelease
	PointerMove
)

// Event is one discrete input occurrence delivered to the state machine.
// Pointer coordinates are in playfield units.
type Event struct {
	Kind    EventKind
	Action  Action
	Lane    Lane
	Pointer PointerKind
	X, Y    int
}

// ActionEvent builds an action event.
func ActionEvent(a Action) Event {
	return Event{Kind: EventAction, Action: a}
}

// LaneEvent builds a lane key-down event.
func LaneEvent(l Lane) Event {
	return Event{Kind: EventLanePress, Lane: l}
}

// PointerEvent builds a pointer event at playfield coordinates.
func PointerEvent(kind PointerKind, x, y int) Event {
	return Event{Kind: EventPointer, Pointer: kind, X: x, Y: y}
}
