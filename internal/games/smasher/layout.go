package smasher

import "github.com/vovakirdan/button-smasher/internal/core"

// Button identifies a clickable control. Each belongs to exactly one phase.
type Button int

const (
	ButtonStart Button = iota
	ButtonCredits
	ButtonQuit
	ButtonCreditsBack
	ButtonEasy
	ButtonNormal
	ButtonHard
	ButtonDifficultyBack
	ButtonRetry
	ButtonMenu
	ButtonCount
)

// ButtonSpec describes where a button sits and what it does.
type ButtonSpec struct {
	Rect   core.Rect
	Label  string
	Action core.Action
	Phase  Phase
	Radius int
}

// Layout holds every button rectangle for a playfield size.
type Layout struct {
	Buttons [ButtonCount]ButtonSpec
	MenuTop int // Top of the first menu button; the title floats above it
}

// NewLayout computes button positions for a w x h playfield.
func NewLayout(w, h int) Layout {
	var l Layout

	const (
		menuW, menuH = 250, 70
		menuSpacing  = 40
	)
	total := 3*menuH + 2*menuSpacing
	l.MenuTop = h/2 - total/2 + 100
	menuX := w/2 - menuW/2
	for i, b := range []struct {
		id     Button
		label  string
		action core.Action
	}{
		{ButtonStart, "Start Game", core.ActionStart},
		{ButtonCredits, "Credits", core.ActionCredits},
		{ButtonQuit, "Quit", core.ActionQuit},
	} {
		y := l.MenuTop + i*(menuH+menuSpacing)
		l.Buttons[b.id] = ButtonSpec{core.NewRect(menuX, y, menuW, menuH), b.label, b.action, PhaseMenu, 15}
	}

	l.Buttons[ButtonCreditsBack] = ButtonSpec{
		core.NewRect(w/2-100, h-100, 200, 60), "Back", core.ActionBack, PhaseCredits, 15,
	}

	for i, b := range []Button{ButtonEasy, ButtonNormal, ButtonHard} {
		d := core.Difficulties[i]
		l.Buttons[b] = ButtonSpec{
			core.NewRect(w/2-125, h/2-100+i*100, 250, 70), d.String(), chooseAction(d), PhaseDifficultySelect, 15,
		}
	}
	l.Buttons[ButtonDifficultyBack] = ButtonSpec{
		core.NewRect(20, 20, 100, 50), "Back", core.ActionBack, PhaseDifficultySelect, 10,
	}

	const overW, overH = 150, 60
	l.Buttons[ButtonRetry] = ButtonSpec{
		core.NewRect(w/2-overW-10, h/2+50, overW, overH), "Retry", core.ActionRetry, PhaseGameOver, 15,
	}
	l.Buttons[ButtonMenu] = ButtonSpec{
		core.NewRect(w/2+10, h/2+50, overW, overH), "Menu", core.ActionMenu, PhaseGameOver, 15,
	}
	return l
}

// ButtonAt returns the button of phase p under (x, y).
func (l Layout) ButtonAt(p Phase, x, y int) (Button, bool) {
	for i, b := range l.Buttons {
		if b.Phase == p && b.Rect.Contains(x, y) {
			return Button(i), true
		}
	}
	return 0, false
}

// ButtonFor returns the button of phase p bound to action a.
func (l Layout) ButtonFor(p Phase, a core.Action) (Button, bool) {
	for i, b := range l.Buttons {
		if b.Phase == p && b.Action == a {
			return Button(i), true
		}
	}
	return 0, false
}

func chooseAction(d core.Difficulty) core.Action {
	switch d {
	case core.DifficultyEasy:
		return core.ActionChooseEasy
	case core.DifficultyHard:
		return core.ActionChooseHard
	default:
		return core.ActionChooseNormal
	}
}
