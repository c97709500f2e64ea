// Package audio synthesizes the game's sounds: a looping menu tune and
// short blips for hits, missed presses and game over.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/button-smasher/internal/config"
)

// Player plays sounds through the system speaker.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	menu   *beep.Ctrl
}

// New initializes the speaker. A failure usually means no audio device;
// callers fall back to Nop.
func New(cfg config.AudioConfig) (*Player, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	p := &Player{
		rate:   rate,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *Player) add(s beep.Streamer) {
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(&effects.Volume{Streamer: s, Base: 2, Volume: p.volume})
	speaker.Unlock()
}

// PlayMenu starts the menu loop unless it is already running.
func (p *Player) PlayMenu() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.menu != nil {
		speaker.Lock()
		p.menu.Paused = false
		speaker.Unlock()
		return
	}
	p.menu = &beep.Ctrl{Streamer: MenuLoop(p.rate)}
	p.add(p.menu)
}

// StopMenu pauses the menu loop.
func (p *Player) StopMenu() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.menu != nil {
		speaker.Lock()
		p.menu.Paused = true
		speaker.Unlock()
	}
}

// Hit plays the hit blip.
func (p *Player) Hit() { p.add(HitSound(p.rate)) }

// Miss plays the missed-press buzz.
func (p *Player) Miss() { p.add(MissSound(p.rate)) }

// GameOver plays the falling game-over phrase.
func (p *Player) GameOver() { p.add(GameOverSound(p.rate)) }

// Close silences everything.
func (p *Player) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// Nop discards every sound. Used when muted or without an audio device.
type Nop struct{}

func (Nop) PlayMenu() {}
func (Nop) StopMenu() {}
func (Nop) Hit()      {}
func (Nop) Miss()     {}
func (Nop) GameOver() {}
func (Nop) Close()    {}
