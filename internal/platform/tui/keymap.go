package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMap holds the in-game key bindings. Each binding maps to one action.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Fire        key.Binding
	Weapon1     key.Binding
	Weapon2     key.Binding
	Weapon3     key.Binding
	Weapon4     key.Binding
	Ascend      key.Binding
	Descend     key.Binding
	LookLeft    key.Binding
	LookRight   key.Binding
	LookUp      key.Binding
	LookDown    key.Binding
	Confirm     key.Binding
	Restart     key.Binding
	Pause       key.Binding
	Back        key.Binding
	Quit        key.Binding
	Screenshot  key.Binding
	actionTable []binding
}

type binding struct {
	key    key.Binding
	action core.Action
}

// DefaultKeyMap returns the default bindings: arrows or WASD to move, space
// to fire, digits for weapons, e/c to fly and h/j/k/l to look.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "forward")),
		Down:       key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "back")),
		Left:       key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Fire:       key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space", "fire")),
		Weapon1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "weapon")),
		Weapon2:    key.NewBinding(key.WithKeys("2")),
		Weapon3:    key.NewBinding(key.WithKeys("3")),
		Weapon4:    key.NewBinding(key.WithKeys("4")),
		Ascend:     key.NewBinding(key.WithKeys("e", "pgup"), key.WithHelp("e", "up")),
		Descend:    key.NewBinding(key.WithKeys("c", "pgdown"), key.WithHelp("c", "down")),
		LookLeft:   key.NewBinding(key.WithKeys("h"), key.WithHelp("hjkl", "look")),
		LookRight:  key.NewBinding(key.WithKeys("l")),
		LookUp:     key.NewBinding(key.WithKeys("k")),
		LookDown:   key.NewBinding(key.WithKeys("j")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "menu")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
	}
	km.buildTable()
	return km
}

func (km *KeyMap) buildTable() {
	km.actionTable = []binding{
		{km.Up, core.ActionUp},
		{km.Down, core.ActionDown},
		{km.Left, core.ActionLeft},
		{km.Right, core.ActionRight},
		{km.Fire, core.ActionFire},
		{km.Weapon1, core.ActionWeapon1},
		{km.Weapon2, core.ActionWeapon2},
		{km.Weapon3, core.ActionWeapon3},
		{km.Weapon4, core.ActionWeapon4},
		{km.Ascend, core.ActionAscend},
		{km.Descend, core.ActionDescend},
		{km.LookLeft, core.ActionLookLeft},
		{km.LookRight, core.ActionLookRight},
		{km.LookUp, core.ActionLookUp},
		{km.LookDown, core.ActionLookDown},
		{km.Confirm, core.ActionConfirm},
		{km.Restart, core.ActionRestart},
		{km.Pause, core.ActionPause},
		{km.Back, core.ActionBack},
		{km.Quit, core.ActionQuit},
	}
}

// Action translates a key message to a game action. Unbound keys map to
// ActionNone.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, b := range km.actionTable {
		if key.Matches(msg, b.key) {
			return b.action
		}
	}
	return core.ActionNone
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request.
func (km KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.Action(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Fire, km.Weapon1, km.Pause, km.Restart, km.Back, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Fire, km.Weapon1, km.Ascend, km.Descend, km.LookLeft},
		{km.Pause, km.Restart, km.Confirm, km.Back, km.Quit},
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MenuKeyMap holds the menu key bindings.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Back       key.Binding
	Quit       key.Binding
	Scoreboard key.Binding
}

// DefaultMenuKeyMap returns the menu bindings, with vim-style j/k.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/→", "difficulty")),
		Right:      key.NewBinding(key.WithKeys("right", "d", "l")),
		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		Back:       key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Scoreboard: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scores")),
	}
}

// Action translates a key to a menu action.
func (km MenuKeyMap) Action(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Up):
		return MenuActionUp
	case key.Matches(msg, km.Down):
		return MenuActionDown
	case key.Matches(msg, km.Left):
		return MenuActionLeft
	case key.Matches(msg, km.Right):
		return MenuActionRight
	case key.Matches(msg, km.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Back):
		return MenuActionBack
	case key.Matches(msg, km.Scoreboard):
		return MenuActionScoreboard
	}
	return MenuActionNone
}

// ShortHelp returns key bindings for the menu help line.
func (km MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Select, km.Scoreboard, km.Quit}
}

// FullHelp returns key bindings for the expanded menu help.
func (km MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp()}
}
