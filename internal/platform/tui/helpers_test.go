package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

const stubID = "zz-tui-stub"

// lastStub is the most recent stub created through the registry.
var lastStub *stubGame

func init() {
	registry.Register(stubID, func() registry.Game {
		lastStub = &stubGame{}
		return lastStub
	})
}

type stubGame struct {
	resets int
	steps  int
	closes int
	state  core.GameState
	inputs []core.InputFrame
	preset string
	keeper core.ScoreKeeper
}

func (g *stubGame) ID() string                        { return stubID }
func (g *stubGame) Title() string                     { return "Stub Mode" }
func (g *stubGame) Reset(core.RuntimeConfig)          { g.resets++ }
func (g *stubGame) State() core.GameState             { return g.state }
func (g *stubGame) Close()                            { g.closes++ }
func (g *stubGame) SetPreset(name string)             { g.preset = name }
func (g *stubGame) SetScoreKeeper(k core.ScoreKeeper) { g.keeper = k }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) lastInput() core.InputFrame {
	return g.inputs[len(g.inputs)-1]
}

type fakeBoard struct {
	entries []storage.ScoreEntry
	err     error
}

func (b *fakeBoard) SaveScore(e storage.ScoreEntry) (int64, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.entries = append(b.entries, e)
	return int64(len(b.entries)), nil
}

type fakeSource struct {
	scores map[string][]storage.ScoreEntry
	fail   bool
}

func (s fakeSource) TopScores(gameID string, limit int) ([]storage.ScoreEntry, error) {
	if s.fail {
		return nil, errors.New("disk on fire")
	}
	rows := s.scores[gameID]
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (s fakeSource) GetGameStats(gameID string) (*storage.GameStats, error) {
	stats := &storage.GameStats{GameID: gameID, GamesCount: len(s.scores[gameID])}
	for _, e := range s.scores[gameID] {
		stats.HighScore = max(stats.HighScore, e.Score)
		stats.BestLevel = max(stats.BestLevel, e.Level)
	}
	return stats, nil
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick() TickMsg {
	return TickMsg(time.Time{})
}
