package smasher

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/core"
)

const (
	buttonPopScale    = 1.1
	receptorPopScale  = 1.3
	countdownPopScale = 1.5
)

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// portraitFloat is the vertical bob of credits portrait i.
func (m *Machine) portraitFloat(i int) int {
	return int(math.Sin(ms(m.now)*0.002+float64(i)) * 20)
}

// progress returns how far d has run since the phase opened, in [0, 1].
func (m *Machine) progress(d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	return core.ClampF(float64(m.now-m.phaseAt)/float64(d), 0, 1)
}

// Render draws the current phase. It does not change game state.
func (m *Machine) Render(c core.Canvas) {
	w, h := m.cfg.Playfield.Width, m.cfg.Playfield.Height
	full := core.NewRect(0, 0, w, h)

	switch m.phase {
	case PhaseMenu, PhaseCredits, PhaseDifficultySelect:
		c.Clear(core.ColorBackground)
		c.Sprite(assets.MenuBackground, full, core.Opaque)
	default:
		c.Clear(core.ColorBlack)
		c.Sprite(assets.GameBackground, full, core.Opaque)
	}

	switch m.phase {
	case PhaseMenu:
		m.renderMenu(c)
	case PhaseCredits:
		m.renderCredits(c)
	case PhaseDifficultySelect:
		m.renderDifficulty(c)
	case PhaseCountdown:
		m.renderCountdown(c)
	case PhasePlaying:
		m.renderPlaying(c)
	case PhaseGameOver:
		m.renderGameOver(c)
	}
}

func (m *Machine) drawButton(c core.Canvas, b Button, alpha uint8) {
	spec := m.layout.Buttons[b]
	r := spec.Rect
	if m.buttonPop[b].active(m.now, m.cfg.Timing.Pop) {
		r = r.Scale(buttonPopScale)
	}
	col := core.ColorWhite
	if m.pointerSeen && spec.Rect.Contains(m.pointerX, m.pointerY) {
		col = core.ColorHover
	}
	c.RoundRect(r, spec.Radius, col, alpha)
	cx, cy := r.Center()
	c.Text(cx, cy, spec.Label, core.TextStyle{Color: core.ColorBlack, Alpha: alpha, Scale: 1})
}

func (m *Machine) renderMenu(c core.Canvas) {
	for _, b := range []Button{ButtonStart, ButtonCredits, ButtonQuit} {
		m.drawButton(c, b, core.Opaque)
	}

	float := int(math.Sin(ms(m.now)*0.002) * 18)
	cx, cy := m.cfg.Playfield.Width/2, m.layout.MenuTop-165+float
	title := m.sheet.Title
	outline := core.TextStyle{Color: core.ColorBlack, Alpha: core.Opaque, Scale: 2, Bold: true}
	for _, dx := range []int{-3, 0, 3} {
		for _, dy := range []int{-3, 0, 3} {
			if dx != 0 || dy != 0 {
				c.Text(cx+dx, cy+dy, title, outline)
			}
		}
	}
	c.Text(cx, cy, title, core.TextStyle{Color: core.ColorWhite, Alpha: core.Opaque, Scale: 2, Bold: true})
}

func (m *Machine) renderCredits(c core.Canvas) {
	w, h := m.cfg.Playfield.Width, m.cfg.Playfield.Height
	elapsed := m.now - m.phaseAt
	alpha := uint8(255 * m.progress(m.cfg.Timing.Fade))
	float := int(math.Sin(ms(elapsed)*0.002) * 10)

	c.Overlay(core.ColorBlack, 180)
	for i, p := range m.portraits {
		r := core.NewRect(p.X, p.Y+m.portraitFloat(i), portraitSize, portraitSize)
		c.Sprite(assets.PortraitID(i), r, core.Opaque)
	}

	c.Text(w/2, h/4+float, "Credits", core.TextStyle{Color: core.ColorWhite, Alpha: alpha, Scale: 2, Bold: true})
	for i, line := range m.sheet.Credits {
		c.Text(w/2, h/2-20+i*50+float, line, core.TextStyle{Color: core.ColorWhite, Alpha: alpha, Scale: 1})
	}
	m.drawButton(c, ButtonCreditsBack, core.Opaque)
}

func (m *Machine) renderDifficulty(c core.Canvas) {
	w, h := m.cfg.Playfield.Width, m.cfg.Playfield.Height
	p := m.progress(m.cfg.Timing.Fade)
	alpha := uint8(255 * p)

	c.Overlay(core.ColorBlack, uint8(150*p))
	c.Text(w/2, h/4-40, "Select Difficulty", core.TextStyle{Color: core.ColorWhite, Alpha: alpha, Scale: 2, Bold: true})
	for _, b := range []Button{ButtonEasy, ButtonNormal, ButtonHard, ButtonDifficultyBack} {
		m.drawButton(c, b, alpha)
	}
}

func (m *Machine) renderCountdown(c core.Canvas) {
	scale := 3.0
	if m.countdownPop.active(m.now, m.cfg.Timing.Pop) {
		scale *= countdownPopScale
	}
	w, h := m.cfg.Playfield.Width, m.cfg.Playfield.Height
	c.Text(w/2, h/2, m.Countdown(), core.TextStyle{Color: core.ColorWhite, Alpha: core.Opaque, Scale: scale, Bold: true})
}

func (m *Machine) renderFlash(c core.Canvas) {
	if !m.flash.active(m.now, m.cfg.Timing.Flash) {
		return
	}
	elapsed := float64(m.now - m.flash.at)
	alpha := 255 - int(elapsed/float64(m.cfg.Timing.Flash)*255)
	c.Overlay(core.ColorRed, uint8(core.Clamp(alpha, 0, 255)))
}

func (m *Machine) renderPlaying(c core.Canvas) {
	pf := m.cfg.Playfield
	m.renderFlash(c)

	for _, cue := range m.engine.Cues() {
		c.Sprite(assets.CueID(cue.Lane), cue.Rect(pf), core.Opaque)
	}

	for l := core.Lane(0); l < core.LaneCount; l++ {
		r := core.NewRect(pf.Lanes[l], pf.ReceptorY(), pf.CueSize, pf.CueSize)
		if m.lanePop[l].active(m.now, m.cfg.Timing.Pop) {
			r = r.Scale(receptorPopScale)
		} else {
			r = r.Offset(m.shakeOffset[l][0], m.shakeOffset[l][1])
		}
		c.Sprite(assets.ReceptorID(l), r, core.Opaque)
	}

	d := m.session.Difficulty
	hud := core.TextStyle{Color: core.ColorWhite, Alpha: core.Opaque, Scale: 1, Anchor: core.AnchorLeft}
	c.Text(20, 20, fmt.Sprintf("Score: %d", m.session.Score), hud)
	c.Text(20, 60, fmt.Sprintf("Highscore (%s): %d", d, m.record.Get(d)), hud)
	c.Text(20, 100, fmt.Sprintf("Health: %d", m.session.Health), hud)
	hud.Color = core.ColorMode
	c.Text(20, 140, fmt.Sprintf("Mode: %s", d), hud)
}

func (m *Machine) renderGameOver(c core.Canvas) {
	w, h := m.cfg.Playfield.Width, m.cfg.Playfield.Height
	m.renderFlash(c)

	fade := max(0, 255-int(ms(m.now-m.phaseAt)/2))
	c.Overlay(core.ColorRed, uint8(fade))
	for _, p := range m.particles {
		c.Circle(p.X, p.Y, p.Radius, core.ColorRed, uint8(core.Clamp(p.Alpha, 0, 255)))
	}

	c.Text(w/2, int(float64(h)/2.5)-100, "GAME OVER", core.TextStyle{Color: core.ColorRed, Alpha: core.Opaque, Scale: 2, Bold: true})
	c.Text(w/2, int(float64(h)/2.1)-40, m.phrase, core.TextStyle{Color: core.ColorWhite, Alpha: core.Opaque, Scale: 1})
	m.drawButton(c, ButtonRetry, core.Opaque)
	m.drawButton(c, ButtonMenu, core.Opaque)
}
