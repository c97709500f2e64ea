// Package smasher implements Button Smasher: arrows fall down four lanes and
// must be hit with the matching key as they cross the receptor row.
//
// Machine is the single owner of all game state. The platform feeds it input
// events and the current time once per tick, then asks it to render.
package smasher

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/storage"
)

// Phase is the top-level state of the machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseCredits
	PhaseDifficultySelect
	PhaseCountdown
	PhasePlaying
	PhaseGameOver
	PhaseCount
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseCredits:
		return "credits"
	case PhaseDifficultySelect:
		return "difficulty"
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// ParsePhase matches a phase name as returned by String.
func ParsePhase(name string) (Phase, bool) {
	for p := PhaseMenu; p < PhaseCount; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

var countdownLabels = [...]string{"3", "2", "1", "GO!!"}

// Sounds plays audio cues. Implementations must not block.
type Sounds interface {
	PlayMenu()
	StopMenu()
	Hit()
	Miss()
	GameOver()
}

// Observer receives gameplay events, e.g. for metrics.
type Observer interface {
	PhaseChanged(from, to Phase)
	CueHit(d core.Difficulty)
	PressMissed(d core.Difficulty)
	CueMissed(d core.Difficulty)
	RunFinished(run storage.Run)
}

type nopSounds struct{}

func (nopSounds) PlayMenu() {}
func (nopSounds) StopMenu() {}
func (nopSounds) Hit()      {}
func (nopSounds) Miss()     {}
func (nopSounds) GameOver() {}

type nopObserver struct{}

func (nopObserver) PhaseChanged(Phase, Phase)   {}
func (nopObserver) CueHit(core.Difficulty)      {}
func (nopObserver) PressMissed(core.Difficulty) {}
func (nopObserver) CueMissed(core.Difficulty)   {}
func (nopObserver) RunFinished(storage.Run)     {}

// Options configures a Machine. Zero values are valid.
type Options struct {
	Seed     int64
	Record   storage.Record // Best scores loaded at startup
	Sounds   Sounds
	Observer Observer
	Clock    func() time.Time // Wall clock for run timestamps
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Quit     bool // Quit was chosen from the menu
	Finished bool // A run ended this step
}

// stamp is the start time of a timed effect.
type stamp struct {
	at  time.Duration
	set bool
}

func (s *stamp) mark(now time.Duration) {
	s.at, s.set = now, true
}

func (s stamp) active(now, d time.Duration) bool {
	return s.set && now-s.at < d
}

// Particle is one blob of the game-over burst.
type Particle struct {
	X, Y   int
	Radius int
	Alpha  int
}

// Portrait is a draggable image on the credits screen.
type Portrait struct {
	X, Y int
}

const (
	portraitSize   = 120
	portraitCount  = 5
	particleFade   = 3
	shakeAmplitude = 5
)

// Machine is the game state machine.
type Machine struct {
	cfg      config.Config
	sheet    *assets.Sheet
	layout   Layout
	hitZone  core.Rect
	fx       *rand.Rand // Cosmetic randomness, kept apart from cue spawning
	engine   *CueEngine
	session  *Session
	record   storage.Record
	runs     []storage.Run
	sounds   Sounds
	observer Observer
	clock    func() time.Time

	phase    Phase
	phaseAt  time.Duration
	now      time.Duration
	finished bool

	pointerX, pointerY int
	pointerSeen        bool

	buttonPop    [ButtonCount]stamp
	lanePop      [core.LaneCount]stamp
	shake        stamp
	shakeOffset  [core.LaneCount][2]int
	flash        stamp
	countdownIdx int
	countdownPop stamp

	phrase    string
	particles []Particle

	portraits      [portraitCount]Portrait
	dragging       int
	dragDX, dragDY int
}

// NewMachine creates a machine in the Menu phase. The menu loop starts
// playing immediately.
func NewMachine(cfg config.Config, sheet *assets.Sheet, opts Options) *Machine {
	if opts.Sounds == nil {
		opts.Sounds = nopSounds{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	m := &Machine{
		cfg:      cfg,
		sheet:    sheet,
		layout:   NewLayout(cfg.Playfield.Width, cfg.Playfield.Height),
		hitZone:  cfg.Playfield.HitZone(),
		fx:       rand.New(rand.NewSource(opts.Seed + 1)),
		session:  NewSession(cfg.Session),
		record:   opts.Record,
		sounds:   opts.Sounds,
		observer: opts.Observer,
		clock:    opts.Clock,
		phase:    PhaseMenu,
		dragging: -1,
	}
	m.engine = NewCueEngine(cfg.Playfield, cfg.Timing, rand.New(rand.NewSource(opts.Seed)))

	maxX := max(cfg.Playfield.Width-portraitSize, 1)
	maxY := max(cfg.Playfield.Height-portraitSize, 1)
	for i := range m.portraits {
		m.portraits[i] = Portrait{X: m.fx.Intn(maxX + 1), Y: m.fx.Intn(maxY + 1)}
	}

	m.sounds.PlayMenu()
	return m
}

// Config returns the configuration the machine runs with.
func (m *Machine) Config() config.Config { return m.cfg }

// Phase returns the active phase.
func (m *Machine) Phase() Phase { return m.phase }

// Session returns the current run.
func (m *Machine) Session() *Session { return m.session }

// Engine returns the cue engine.
func (m *Machine) Engine() *CueEngine { return m.engine }

// Layout returns the button layout.
func (m *Machine) Layout() Layout { return m.layout }

// Record returns the in-memory best scores.
func (m *Machine) Record() storage.Record { return m.record }

// Phrase returns the game-over phrase of the last finished run.
func (m *Machine) Phrase() string { return m.phrase }

// Particles returns the live game-over particles.
func (m *Machine) Particles() []Particle { return m.particles }

// Portraits returns the credits portrait positions.
func (m *Machine) Portraits() [portraitCount]Portrait { return m.portraits }

// TakeRuns returns the runs finished since the last call and forgets them.
func (m *Machine) TakeRuns() []storage.Run {
	runs := m.runs
	m.runs = nil
	return runs
}

// Step consumes the events received since the last tick in order, then
// advances time-driven logic. now is the time since the program started.
func (m *Machine) Step(now time.Duration, events []core.Event) StepResult {
	m.now = now
	m.finished = false

	for _, ev := range events {
		if m.handle(ev) {
			return StepResult{Quit: true, Finished: m.finished}
		}
	}

	switch m.phase {
	case PhaseCountdown:
		m.stepCountdown()
	case PhasePlaying:
		m.stepPlaying()
	case PhaseGameOver:
		m.stepGameOver()
	}

	return StepResult{Finished: m.finished}
}

func (m *Machine) setPhase(p Phase) {
	if p == m.phase {
		return
	}
	from := m.phase
	m.phase = p
	m.phaseAt = m.now
	m.dragging = -1
	if p == PhaseCountdown {
		m.countdownIdx = 0
		m.countdownPop.mark(m.now)
	}
	m.observer.PhaseChanged(from, p)
}

// handle dispatches one event. Returns true when the game should quit.
func (m *Machine) handle(ev core.Event) bool {
	switch ev.Kind {
	case core.EventAction:
		return m.action(ev.Action)
	case core.EventLanePress:
		if m.phase == PhasePlaying && ev.Lane.Valid() {
			m.press(ev.Lane)
		}
	case core.EventPointer:
		return m.pointer(ev)
	}
	return false
}

// action applies a semantic action to the active phase. Actions a phase
// does not define are ignored.
func (m *Machine) action(a core.Action) bool {
	if b, ok := m.layout.ButtonFor(m.phase, a); ok {
		if m.phase == PhaseDifficultySelect && !m.debounced(a) {
			return false
		}
		m.buttonPop[b].mark(m.now)
	}

	switch m.phase {
	case PhaseMenu:
		switch a {
		case core.ActionStart:
			m.setPhase(PhaseDifficultySelect)
		case core.ActionCredits:
			m.setPhase(PhaseCredits)
		case core.ActionQuit:
			return true
		}
	case PhaseCredits:
		if a == core.ActionBack {
			m.setPhase(PhaseMenu)
		}
	case PhaseDifficultySelect:
		if a == core.ActionBack {
			m.setPhase(PhaseMenu)
			return false
		}
		if d, ok := a.Difficulty(); ok && m.debounced(a) {
			m.startRun(d)
		}
	case PhaseGameOver:
		switch a {
		case core.ActionRetry:
			m.resetRun()
			m.setPhase(PhaseCountdown)
		case core.ActionMenu:
			m.resetRun()
			m.setPhase(PhaseMenu)
			m.sounds.PlayMenu()
		}
	}
	return false
}

// debounced reports whether a difficulty choice is accepted: choices arriving
// right after the screen opened are carry-over clicks.
func (m *Machine) debounced(a core.Action) bool {
	if _, ok := a.Difficulty(); !ok {
		return true
	}
	return m.now-m.phaseAt > m.cfg.Timing.SelectDebounce
}

func (m *Machine) startRun(d core.Difficulty) {
	m.session.Difficulty = d
	m.resetRun()
	m.sounds.StopMenu()
	m.setPhase(PhaseCountdown)
}

func (m *Machine) resetRun() {
	m.session.Reset()
	m.engine.Reset()
	m.particles = m.particles[:0]
}

// press resolves a lane key during play.
func (m *Machine) press(lane core.Lane) {
	d := m.session.Difficulty
	if m.engine.ResolveHit(lane, m.hitZone) {
		m.session.Hit()
		m.lanePop[lane].mark(m.now)
		m.sounds.Hit()
		m.observer.CueHit(d)
		return
	}
	m.shake.mark(m.now)
	m.flash.mark(m.now)
	m.sounds.Miss()
	m.observer.PressMissed(d)
}

func (m *Machine) pointer(ev core.Event) bool {
	m.pointerX, m.pointerY, m.pointerSeen = ev.X, ev.Y, true

	switch ev.Pointer {
	case core.PointerPress:
		if b, ok := m.layout.ButtonAt(m.phase, ev.X, ev.Y); ok {
			return m.action(m.layout.Buttons[b].Action)
		}
		if m.phase == PhaseCredits {
			m.grab(ev.X, ev.Y)
		}
	case core.PointerMove:
		if m.dragging >= 0 {
			m.portraits[m.dragging] = Portrait{X: ev.X - m.dragDX, Y: ev.Y - m.dragDY}
		}
	case core.PointerRelease:
		m.dragging = -1
	}
	return false
}

// grab starts dragging the first portrait under the pointer.
func (m *Machine) grab(x, y int) {
	for i, p := range m.portraits {
		py := p.Y + m.portraitFloat(i)
		if core.NewRect(p.X, py, portraitSize, portraitSize).Contains(x, y) {
			m.dragging = i
			m.dragDX, m.dragDY = x-p.X, y-py
			return
		}
	}
}

func (m *Machine) stepCountdown() {
	idx := int((m.now - m.phaseAt) / m.cfg.Timing.CountdownPhase)
	if idx >= len(countdownLabels) {
		m.setPhase(PhasePlaying)
		return
	}
	if idx != m.countdownIdx {
		m.countdownIdx = idx
		m.countdownPop.mark(m.now)
	}
}

func (m *Machine) stepPlaying() {
	d := m.session.Difficulty
	tuning := m.cfg.Difficulties.For(d)

	m.engine.SpawnTick(tuning)
	missed := m.engine.Advance(tuning.FallSpeed)
	for range missed {
		m.observer.CueMissed(d)
		if m.session.Miss() {
			m.endRun()
		}
	}

	m.record.Update(d, m.session.Score)

	if m.shake.active(m.now, m.cfg.Timing.Shake) {
		for i := range m.shakeOffset {
			m.shakeOffset[i] = [2]int{
				m.fx.Intn(2*shakeAmplitude+1) - shakeAmplitude,
				m.fx.Intn(2*shakeAmplitude+1) - shakeAmplitude,
			}
		}
	} else {
		m.shakeOffset = [core.LaneCount][2]int{}
	}
}

func (m *Machine) endRun() {
	w, h := m.cfg.Playfield.Width, m.cfg.Playfield.Height
	if phrases := m.cfg.Session.Phrases; len(phrases) > 0 {
		m.phrase = phrases[m.fx.Intn(len(phrases))]
	} else {
		m.phrase = "GAME OVER"
	}
	m.particles = m.particles[:0]
	for range m.cfg.Session.Particles {
		m.particles = append(m.particles, Particle{
			X:      m.fx.Intn(w + 1),
			Y:      m.fx.Intn(h + 1),
			Radius: 10 + m.fx.Intn(21),
			Alpha:  255,
		})
	}

	run := storage.Run{
		Difficulty: m.session.Difficulty,
		Score:      m.session.Score,
		PlayedAt:   m.clock(),
	}
	m.runs = append(m.runs, run)
	m.finished = true

	m.sounds.GameOver()
	m.observer.RunFinished(run)
	m.setPhase(PhaseGameOver)
}

func (m *Machine) stepGameOver() {
	kept := m.particles[:0]
	for _, p := range m.particles {
		p.Alpha -= particleFade
		if p.Alpha > 0 {
			kept = append(kept, p)
		}
	}
	m.particles = kept
}

// Countdown returns the label shown during the countdown phase.
func (m *Machine) Countdown() string {
	if m.phase != PhaseCountdown {
		return ""
	}
	return countdownLabels[m.countdownIdx]
}
