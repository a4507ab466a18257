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

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

// Approximate pointer pixels per terminal cell. Mouse motion arrives in
// cells and is scaled before it reaches the camera.
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// Leaderboard records finished runs. *storage.Store implements it.
type Leaderboard interface {
	SaveScore(entry storage.ScoreEntry) (int64, error)
}

// ModelOptions configures a Model beyond its game and runtime config.
type ModelOptions struct {
	Board   Leaderboard // nil disables the leaderboard
	Logger  *log.Logger
	Painter *Painter

	// Embedded models hand control back with BackMsg instead of quitting.
	Embedded bool
}

// BackMsg is emitted by an embedded Model when the player leaves the game.
type BackMsg struct{}

// Model is the Bubble Tea model for running one shooter game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	board    Leaderboard
	log      *log.Logger
	painter  *Painter
	keys     KeyMap
	config   core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	pointer  pointer
	embedded bool
	recorded bool // leaderboard entry written for the current game over
	quitting bool
}

type pointer struct {
	x, y  int
	known bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
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
	painter := opts.Painter
	if painter == nil {
		painter = defaultPainter
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		board:    opts.Board,
		log:      logger,
		painter:  painter,
		keys:     DefaultKeyMap(),
		config:   cfg,
		input:    core.NewInputFrame(),
		embedded: opts.Embedded,
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.game.Close()
		return m, tea.Quit

	case core.ActionBack:
		if !m.state.GameOver && !m.state.Paused {
			return m, nil
		}
		m.quitting = true
		m.game.Close()
		if m.embedded {
			return m, func() tea.Msg { return BackMsg{} }
		}
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.keys.MapKeyToFrame(msg, &m.input)
	return m, nil
}

// handleMouse turns pointer motion into look deltas.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.pointer.known && msg.Action == tea.MouseActionMotion {
		m.input.AddLook(
			float64((msg.X-m.pointer.x)*cellPixelsX),
			float64((msg.Y-m.pointer.y)*cellPixelsY),
		)
	}
	m.pointer = pointer{x: msg.X, y: msg.Y, known: true}
	return m
}

// handleResize adapts the screen buffer. The running game is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State

	switch {
	case m.state.GameOver && !m.recorded:
		m.recordRun()
		m.recorded = true
	case !m.state.GameOver:
		m.recorded = false
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun writes the finished run to the leaderboard. Empty runs are skipped.
func (m Model) recordRun() {
	if m.board == nil || m.state.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		RunID:  m.state.RunID,
		Score:  m.state.Score,
		Level:  m.state.Level,
	}
	if _, err := m.board.SaveScore(entry); err != nil {
		m.log.Warn("leaderboard save failed", "game", entry.GameID, "error", err)
		return
	}
	m.log.Debug("run recorded", "game", entry.GameID, "score", entry.Score, "level", entry.Level)
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.painter.Render(m.screen)
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Run plays game in the current terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
