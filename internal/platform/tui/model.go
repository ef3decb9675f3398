package tui

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/roadrush/internal/audio"
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
	"github.com/vovakirdan/roadrush/internal/games/road"
	"github.com/vovakirdan/roadrush/internal/storage"
)

// FrameRecorder receives the input of every simulated frame.
type FrameRecorder interface {
	Record(in engine.Input)
}

// Options configure a game model.
type Options struct {
	Config     config.RoadConfig
	Runtime    core.RuntimeConfig
	HoldWindow time.Duration
	RunID      uuid.UUID      // identifies the first run; generated when zero
	Store      *storage.Store // optional
	Recorder   FrameRecorder  // optional
	Audio      engine.Audio   // defaults to a log sink on Logger
	Logger     *log.Logger    // defaults to discarding
}

// Model is the Bubble Tea model running one game of Road Rush.
type Model struct {
	engine   *engine.Engine
	game     *road.Game
	screen   *core.Screen
	store    *storage.Store
	recorder FrameRecorder
	logger   *log.Logger
	config   core.RuntimeConfig

	keys    GameKeyMap
	mapper  *KeyMapper
	hold    *holdTracker
	help    help.Model
	pending []engine.KeyEvent

	clock      func() time.Time
	lastTick   time.Time
	gameState  core.GameState
	runID      uuid.UUID
	scoreSaved bool // Whether score has been saved for the current run
	quitting   bool
}

// NewModel creates a new Bubble Tea model. A zero seed is replaced with the
// current time.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sink := opts.Audio
	if sink == nil {
		sink = audio.NewLogSink(logger.WithPrefix("audio"))
	}

	eng := engine.New(sink)
	game := road.New(opts.Config, rand.New(rand.NewSource(cfg.Seed)))
	game.Setup(eng.World, eng.Audio)

	keys := DefaultGameKeyMap()
	m := Model{
		engine:   eng,
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		store:    opts.Store,
		recorder: opts.Recorder,
		logger:   logger,
		config:   cfg,
		keys:     keys,
		mapper:   NewKeyMapper(keys),
		hold:     newHoldTracker(opts.HoldWindow),
		help:     help.New(),
		clock:    time.Now,
		runID:    opts.RunID,
	}
	if m.runID == uuid.Nil {
		m.runID = uuid.New()
	}
	m.gameState = game.State()
	logger.Info("run started", "run", m.runID, "seed", cfg.Seed)
	return m
}

// gameRows leaves the last terminal row for the help bar.
func gameRows(height int) int {
	return core.Max(1, height-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues discrete actions and refreshes held movement keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.mapper.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionDown:
		m.hold.press(a, m.clock())
	case core.ActionPause, core.ActionRestart:
		m.pending = append(m.pending, engine.Press(a))
	}
	return m, nil
}

// handleTick runs one frame of the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	in := engine.Input{
		Delta:     frameDelta(m.lastTick, now, m.config.TickRate),
		KeyEvents: m.pending,
		Held:      m.hold.held(now),
	}
	m.lastTick = now
	m.pending = nil

	restarted := false
	for _, ev := range in.KeyEvents {
		if ev.Action == core.ActionRestart {
			restarted = true
		}
	}

	if m.recorder != nil {
		m.recorder.Record(in)
	}
	m.engine.Step(in, m.game)
	m.gameState = m.game.State()

	if restarted {
		m.runID = uuid.New()
		m.scoreSaved = false
		m.hold.release()
		m.logger.Info("run restarted", "run", m.runID)
	}
	if m.gameState.Lost && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore stores the finished run. Failures are logged and never stop the game.
func (m Model) saveScore() {
	m.logger.Info("run lost", "run", m.runID, "score", m.gameState.Score)
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(road.ID, m.runID, m.gameState.Score); err != nil && !errors.Is(err, storage.ErrDuplicateRun) {
		m.logger.Warn("could not save score", "error", err)
	}
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunID returns the identifier of the current run.
func (m Model) RunID() uuid.UUID {
	return m.runID
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.engine.World, m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) (core.GameState, error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return core.GameState{}, nil
	}
	return m.State(), nil
}
