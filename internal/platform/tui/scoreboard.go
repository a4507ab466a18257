package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 24
	maxScores          = 100 // rows loaded per mode
	runIDWidth         = 8
	scoreboardChrome   = 10 // rows used by title, stats, borders and help
)

// ScoreSource supplies leaderboard rows. *storage.Store implements it.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next mode")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type scoreboardStyles struct {
	title    lipgloss.Style
	stats    lipgloss.Style
	panel    lipgloss.Style
	mode     lipgloss.Style
	current  lipgloss.Style
	best     lipgloss.Style
	empty    lipgloss.Style
	help     lipgloss.Style
	header   lipgloss.Style
	selected lipgloss.Style
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	frame := lipgloss.Color("240")
	header := r.NewStyle().Bold(true).Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).BorderForeground(frame).BorderBottom(true)
	return scoreboardStyles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		stats:    r.NewStyle().Foreground(lipgloss.Color("14")),
		panel:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(frame).Padding(0, 1),
		mode:     r.NewStyle(),
		current:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		best:     r.NewStyle().Foreground(lipgloss.Color("245")),
		empty:    r.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4),
		help:     r.NewStyle().Foreground(lipgloss.Color("241")),
		header:   header,
		selected: r.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	}
}

// ScoreboardModel is the Bubble Tea model for the leaderboard screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	bests      map[string]int
	gameCursor int
	source     ScoreSource
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	styles     scoreboardStyles
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel opens the leaderboard on gameID, or on the first mode
// when gameID is empty or unknown. source may be nil. r may be nil for the
// local terminal.
func NewScoreboardModel(source ScoreSource, gameID string, width, height int, r *lipgloss.Renderer) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		bests:  make(map[string]int),
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		styles: newScoreboardStyles(r),
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
		if source == nil {
			continue
		}
		if stats, err := source.GetGameStats(g.ID); err == nil && stats != nil && stats.GamesCount > 0 {
			m.bests[g.ID] = stats.HighScore
		}
	}

	m.table = m.newTable()
	if len(m.games) > 0 {
		m.loadScores(m.games[m.gameCursor].ID)
	}
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// newTable sizes the table to the window. Spare width goes to the date column.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 5},
		{Title: "Run", Width: runIDWidth},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 4
	if m.showSidebar() {
		avail -= sidebarWidth + 3
	}
	if extra := avail - 50; extra > 0 {
		columns[len(columns)-1].Width += min(extra, 8)
	}

	s := table.DefaultStyles()
	s.Header = m.styles.header
	s.Selected = m.styles.selected

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-scoreboardChrome)),
		table.WithStyles(s),
	)
	t.SetRows(scoreRows(m.scores))
	return t
}

func (m *ScoreboardModel) loadScores(gameID string) {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.source != nil {
		m.scores, m.loadErr = m.source.TopScores(gameID, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.source.GetGameStats(gameID)
		}
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

// scoreRows formats leaderboard entries as table rows.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		run := s.RunID
		if len(run) > runIDWidth {
			run = run[:runIDWidth]
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			run,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.shiftGame(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.shiftGame(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) shiftGame(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.loadScores(m.games[m.gameCursor].ID)
}

// GameID returns the mode currently shown.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	var body string
	if m.showSidebar() {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.panel.Width(sidebarWidth).Render(m.modeList()),
			"  ",
			m.styles.panel.Render(m.tableView()))
	} else {
		body = m.styles.panel.Render(m.tableView())
		if len(m.games) > 0 {
			body = centerText("< "+m.games[m.gameCursor].Title+" >", m.width) + "\n\n" + body
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		centerText(m.styles.title.Render(title), m.width),
		centerText(m.styles.stats.Render(m.statsLine()), m.width),
		"",
		body,
		"",
		m.styles.help.Render(m.help.View(m.keys)),
	)
}

// statsLine summarizes the mode's history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  Best: %d  Best level: %d  Avg: %.0f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.BestLevel, m.stats.AvgScore)
}

// modeList renders the sidebar: every mode with its best score.
func (m ScoreboardModel) modeList() string {
	lines := make([]string, 0, len(m.games)+2)
	lines = append(lines, "Modes", strings.Repeat("-", sidebarWidth-4))

	nameW := sidebarWidth - 12
	for i, g := range m.games {
		style, marker := m.styles.mode, "  "
		if i == m.gameCursor {
			style, marker = m.styles.current, "> "
		}
		line := style.Render(fmt.Sprintf("%s%-*s", marker, nameW, truncate(g.Title, nameW)))
		if best, ok := m.bests[g.ID]; ok {
			line += " " + m.styles.best.Render(strconv.Itoa(best))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// tableView renders the table or a placeholder.
func (m ScoreboardModel) tableView() string {
	switch {
	case m.source == nil:
		return m.styles.empty.Render("Leaderboard unavailable.")
	case m.loadErr != nil:
		return m.styles.empty.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.scores) == 0:
		return m.styles.empty.Render("No scores recorded yet.\nFinish a run to get on the board!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard in the local terminal and reports
// whether the player went back rather than quitting.
func RunScoreboard(source ScoreSource, gameID string, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(source, gameID, width, height, nil),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
