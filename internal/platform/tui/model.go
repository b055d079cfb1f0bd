package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/render"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// DefaultHoldWindow is how many ticks a movement key stays held after its
// last repeat. Terminal auto-repeat fires roughly every 30-50ms.
const DefaultHoldWindow = 15

// Options configures a game model beyond the runtime config.
type Options struct {
	Player     string      // Shown on the menu and stored with each run
	HoldWindow int         // Ticks before a held direction is released
	Logger     *log.Logger // Nil discards logs
}

// Model is the Bubble Tea model that drives one invaders session.
type Model struct {
	session   *invaders.Session
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keyMapper *KeyMapper
	input     core.InputFrame
	hold      holdState
	runs      *runRecorder
	board     *ScoreboardModel
	quitting  bool
}

// NewModel creates a new Bubble Tea model around an existing session.
func NewModel(session *invaders.Session, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Player != "" {
		logger = logger.With("player", opts.Player)
	}

	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		input:     core.NewInputFrame(),
		hold:      newHoldState(opts.HoldWindow),
		runs:      newRunRecorder(session, store, logger, opts.Player, cfg.Seed),
	}
}

// Close records the run in progress, if any, as abandoned. The SSH server
// calls it when a connection drops.
func (m Model) Close() {
	m.runs.abandon()
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues actions for the next tick and handles platform keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Quit):
		m.runs.abandon()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, keys.Scores):
		if m.session.State() == invaders.StateMenu {
			board := NewScoreboardModel(m.store, m.opts.Player, m.screen.Width(), m.screen.Height())
			board.embedded = true
			m.board = &board
		}
		return m, nil
	}

	action := m.keyMapper.MapKey(msg, m.session.State())
	switch action {
	case core.ActionMoveLeft, core.ActionMoveRight:
		action = m.hold.press(action)
	case core.ActionStopMove:
		m.hold.release()
	}
	m.input.Set(action)

	return m, nil
}

// updateBoard forwards input to the open scoreboard.
func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}

	m.board = &board
	return m, cmd
}

// handleResize processes window resize events.
// The field is scaled to the terminal, so the session itself is untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.board != nil {
		next, _ := m.board.Update(msg)
		if board, ok := next.(ScoreboardModel); ok {
			m.board = &board
		}
	}

	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if a := m.hold.tick(); a != core.ActionNone {
		m.input.Set(a)
	}

	events := m.session.Step(m.input)
	m.input.Clear()

	for _, e := range events {
		m.logEvent(e)
		m.runs.handle(e)
	}

	if m.session.State() != invaders.StatePlaying {
		m.hold.release()
	}

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// logEvent writes a simulation event to the log. Kills are frequent and
// only show at debug level.
func (m *Model) logEvent(e invaders.Event) {
	kv := []any{"kind", e.Kind, "tick", e.Tick, "score", e.Score, "lives", e.Lives, "level", e.Level}
	if e.Kind == invaders.EventEnemyKilled {
		m.logger.Debug("event", append(kv, "row", e.Row, "col", e.Col, "points", e.Points)...)
		return
	}
	m.logger.Info("event", kv...)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("invaders_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m *Model) draw() {
	snap := m.session.Snapshot()
	render.Draw(m.screen, &snap, render.Options{
		HighScore: m.runs.highScore,
		Player:    m.opts.Player,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(session *invaders.Session, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(session, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
