package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/button-smasher/internal/assets"
	"github.com/vovakirdan/button-smasher/internal/config"
	"github.com/vovakirdan/button-smasher/internal/core"
	"github.com/vovakirdan/button-smasher/internal/games/smasher"
	"github.com/vovakirdan/button-smasher/internal/snapshot"
	"github.com/vovakirdan/button-smasher/internal/storage"
)

const (
	minCols    = 24
	minRows    = 12
	footerRows = 2
)

// Publisher receives a snapshot of the game after every tick.
type Publisher interface {
	Publish(id string, s smasher.Snapshot)
	Remove(id string)
}

// Options configures a Model.
type Options struct {
	Config    config.Config
	Sheet     *assets.Sheet
	Keeper    *storage.Keeper // Shared best scores; may be nil
	Sounds    smasher.Sounds
	Observer  smasher.Observer
	Publisher Publisher
	SessionID string
	Logger    *log.Logger

	Runtime       core.RuntimeConfig // Terminal size, tick rate and seed
	Start         time.Time          // Zero means now
	ScreenshotDir string             // Empty means ~/.smasher/screenshots

	// DisableScreenshots ignores ctrl+s. Set for remote sessions, which
	// must not write to the host's disk.
	DisableScreenshots bool
}

// Model is the Bubble Tea model of one game session.
type Model struct {
	opts    Options
	machine *smasher.Machine
	screen  *core.Screen
	canvas  *Canvas
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	events   []core.Event
	start    time.Time
	termW    int
	termH    int
	offsetX  int
	status   string
	quitting bool
}

// NewModel creates a session in the menu.
func NewModel(opts Options) Model {
	rt := &opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Start.IsZero() {
		opts.Start = time.Now()
	}
	if opts.Sheet == nil {
		opts.Sheet = assets.Default()
	}
	if opts.SessionID == "" {
		opts.SessionID = "local"
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		def := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	var record storage.Record
	if opts.Keeper != nil {
		record = opts.Keeper.Record()
	}

	pf := opts.Config.Playfield
	machine := smasher.NewMachine(opts.Config, opts.Sheet, smasher.Options{
		Seed:     rt.Seed,
		Record:   record,
		Sounds:   opts.Sounds,
		Observer: opts.Observer,
	})
	screen := core.NewScreen(minCols, minRows)

	h := help.New()
	h.ShowAll = false

	m := Model{
		opts:    opts,
		machine: machine,
		screen:  screen,
		canvas:  NewCanvas(screen, opts.Sheet, pf.Width, pf.Height),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		start:   opts.Start,
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m
}

// Machine returns the game state machine.
func (m Model) Machine() *smasher.Machine {
	return m.machine
}

// Screen returns the character buffer the last frame was drawn on.
func (m Model) Screen() *core.Screen {
	return m.screen
}

// Quitting reports whether the session has ended.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		m.finish()
		return m, tea.Quit
	case msg.String() == "ctrl+s":
		if !m.opts.DisableScreenshots {
			m.saveScreenshot()
		}
		return m, nil
	}

	if ev, ok := m.keys.Event(msg); ok {
		m.events = append(m.events, ev)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	col, row := msg.X-m.offsetX, msg.Y
	if col < 0 || row < 0 || col >= m.screen.Width() || row >= m.screen.Height() {
		return m, nil
	}

	var kind core.PointerKind
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		kind = core.PointerPress
	case tea.MouseActionRelease:
		kind = core.PointerRelease
	case tea.MouseActionMotion:
		kind = core.PointerMove
	default:
		return m, nil
	}

	x, y := m.canvas.ToPlayfield(col, row)
	m.events = append(m.events, core.PointerEvent(kind, x, y))
	return m, nil
}

// resize fits the playfield into the terminal, keeping its 3:4 aspect with
// cells twice as tall as they are wide.
func (m *Model) resize(width, height int) {
	m.termW, m.termH = width, height
	rows := max(height-footerRows, minRows)
	pf := m.opts.Config.Playfield
	cols := rows * 2 * pf.Width / pf.Height
	cols = max(min(cols, width), minCols)
	m.screen.Resize(cols, rows)
	m.offsetX = max((width-cols)/2, 0)
	m.help.Width = width
}

func (m Model) handleTick(t time.Time) (tea.Model, tea.Cmd) {
	now := t.Sub(m.start)
	events := m.events
	m.events = nil

	res := m.machine.Step(now, events)
	if res.Finished {
		m.commit()
		if m.opts.Config.Highscores.SaveOnGameOver && m.opts.Keeper != nil {
			if err := m.opts.Keeper.Flush(); err != nil {
				m.logger.Warn("could not save highscores", "error", err)
			}
		}
	}
	if m.opts.Publisher != nil {
		m.opts.Publisher.Publish(m.opts.SessionID, m.machine.Snapshot())
	}
	if res.Quit {
		m.finish()
		return m, tea.Quit
	}
	return m, tickCmd(m.opts.Runtime.TickRate)
}

// commit hands the best scores and finished runs to the keeper.
func (m *Model) commit() {
	if m.opts.Keeper == nil {
		return
	}
	m.opts.Keeper.Commit(m.machine.Record(), m.machine.TakeRuns())
}

// finish ends the session. Quitting from the menu and closing the window
// both come through here.
func (m *Model) finish() {
	m.commit()
	m.quitting = true
	if m.opts.Publisher != nil {
		m.opts.Publisher.Remove(m.opts.SessionID)
	}
}

// saveScreenshot writes the current frame as text and as a PNG.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = config.UserPath("screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	m.machine.Render(m.canvas)
	base := filepath.Join(dir, "smasher_"+time.Now().Format("20060102_150405"))
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	if err := snapshot.WritePNG(base+".png", m.machine, m.opts.Sheet, 1); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = fmt.Sprintf("saved %s.png", base)
	m.logger.Info("screenshot saved", "path", base)
}

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.machine.Render(m.canvas)
	frame := RenderScreen(m.screen)
	footer := footerStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = statusStyle.Render(m.status)
	}
	return lipgloss.PlaceHorizontal(m.termW, lipgloss.Center, frame) + "\n" + footer
}

// Run plays one session in the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.finish()
	}
	return err
}
