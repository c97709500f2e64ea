package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/button-smasher/internal/core"
)

// KeyMap holds the game's key bindings.
type KeyMap struct {
	Left  key.Binding
	Up    key.Binding
	Down  key.Binding
	Right key.Binding

	Start      key.Binding
	Credits    key.Binding
	Back       key.Binding
	Easy       key.Binding
	Normal     key.Binding
	Hard       key.Binding
	Retry      key.Binding
	Menu       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),

		Start:      key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start")),
		Credits:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "credits")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Easy:       key.NewBinding(key.WithKeys("1", "e"), key.WithHelp("1", "easy")),
		Normal:     key.NewBinding(key.WithKeys("2", "n"), key.WithHelp("2", "normal")),
		Hard:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
}

// laneKeys is the physical key to lane lookup. The vertical keys are
// crossed: "up" presses the lane whose marker points down, and "down" the
// lane whose marker points up.
func (k KeyMap) laneKeys() [core.LaneCount]struct {
	binding key.Binding
	lane    core.Lane
} {
	return [core.LaneCount]struct {
		binding key.Binding
		lane    core.Lane
	}{
		{k.Left, core.LaneLeft},
		{k.Up, core.LaneDown},
		{k.Down, core.LaneUp},
		{k.Right, core.LaneRight},
	}
}

// Lane maps a key to a lane press.
func (k KeyMap) Lane(msg tea.KeyMsg) (core.Lane, bool) {
	for _, lk := range k.laneKeys() {
		if key.Matches(msg, lk.binding) {
			return lk.lane, true
		}
	}
	return 0, false
}

// Action maps a key to a menu action. Unmapped keys give ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Credits):
		return core.ActionCredits
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Easy):
		return core.ActionChooseEasy
	case key.Matches(msg, k.Normal):
		return core.ActionChooseNormal
	case key.Matches(msg, k.Hard):
		return core.ActionChooseHard
	case key.Matches(msg, k.Retry):
		return core.ActionRetry
	case key.Matches(msg, k.Menu):
		return core.ActionMenu
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// Event translates a key into a machine event.
func (k KeyMap) Event(msg tea.KeyMsg) (core.Event, bool) {
	if lane, ok := k.Lane(msg); ok {
		return core.LaneEvent(lane), true
	}
	if a := k.Action(msg); a != core.ActionNone {
		return core.ActionEvent(a), true
	}
	return core.Event{}, false
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Down, k.Right, k.Start, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Up, k.Down, k.Right},
		{k.Start, k.Credits, k.Back, k.Quit},
		{k.Easy, k.Normal, k.Hard},
		{k.Retry, k.Menu, k.Screenshot},
	}
}
