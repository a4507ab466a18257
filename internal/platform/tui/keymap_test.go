package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w moves forward", runeKey("w"), core.ActionUp},
		{"arrow up moves forward", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s moves back", runeKey("s"), core.ActionDown},
		{"a left", runeKey("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"f fires", runeKey("f"), core.ActionFire},
		{"weapon 3", runeKey("3"), core.ActionWeapon3},
		{"ascend", runeKey("e"), core.ActionAscend},
		{"descend page down", tea.KeyMsg{Type: tea.KeyPgDown}, core.ActionDescend},
		{"look left", runeKey("h"), core.ActionLookLeft},
		{"look down", runeKey("j"), core.ActionLookDown},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"restart", runeKey("r"), core.ActionRestart},
		{"pause", runeKey("p"), core.ActionPause},
		{"escape goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Action(tt.msg))
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	assert.False(t, km.MapKeyToFrame(runeKey("w"), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey("2"), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey("z"), &frame))
	assert.True(t, frame.Has(core.ActionUp))
	assert.True(t, frame.Has(core.ActionWeapon2))
	assert.False(t, frame.Has(core.ActionNone))

	assert.True(t, km.MapKeyToFrame(runeKey("q"), &frame))
	assert.False(t, frame.Has(core.ActionQuit))
}

func TestMenuKeyMapAction(t *testing.T) {
	km := DefaultMenuKeyMap()

	assert.Equal(t, MenuActionUp, km.Action(runeKey("k")))
	assert.Equal(t, MenuActionDown, km.Action(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionLeft, km.Action(runeKey("h")))
	assert.Equal(t, MenuActionRight, km.Action(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, MenuActionSelect, km.Action(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionBack, km.Action(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionScoreboard, km.Action(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionQuit, km.Action(runeKey("q")))
	assert.Equal(t, MenuActionNone, km.Action(runeKey("x")))
}

func TestHelpBindingsHaveText(t *testing.T) {
	for _, b := range DefaultKeyMap().ShortHelp() {
		assert.NotEmpty(t, b.Help().Key, "binding %v", b.Keys())
	}
	for _, b := range DefaultMenuKeyMap().ShortHelp() {
		assert.NotEmpty(t, b.Help().Desc, "binding %v", b.Keys())
	}
}
