package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/button-smasher/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLaneKeysAreCrossed(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Lane
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.LaneLeft},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.LaneDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.LaneUp},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.LaneRight},
		{"vim k", runeKey("k"), core.LaneDown},
		{"vim j", runeKey("j"), core.LaneUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lane, ok := km.Lane(tt.msg)
			if !ok || lane != tt.want {
				t.Errorf("Lane() = %v, %v; want %v", lane, ok, tt.want)
			}
		})
	}
}

func TestActionKeys(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey("c"), core.ActionCredits},
		{runeKey("1"), core.ActionChooseEasy},
		{runeKey("2"), core.ActionChooseNormal},
		{runeKey("3"), core.ActionChooseHard},
		{runeKey("r"), core.ActionRetry},
		{runeKey("m"), core.ActionMenu},
		{runeKey("q"), core.ActionQuit},
		{runeKey("x"), core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestEventPrefersLanes(t *testing.T) {
	km := DefaultKeyMap()
	ev, ok := km.Event(tea.KeyMsg{Type: tea.KeyUp})
	if !ok || ev.Kind != core.EventLanePress || ev.Lane != core.LaneDown {
		t.Errorf("Event(up) = %+v, %v", ev, ok)
	}
	if _, ok := km.Event(runeKey("z")); ok {
		t.Error("unmapped key produced an event")
	}
}
