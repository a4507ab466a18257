package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	require.Equal(t, 12, s.Width())
	require.Equal(t, 4, s.Height())
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			require.Equal(t, blankCell, s.GetCell(x, y), "cell (%d, %d)", x, y)
		}
	}
}

func TestScreenClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	assert.NotPanics(t, func() {
		s.Set(-1, 0, '@')
		s.Set(4, 0, '@')
		s.SetColored(0, -1, '@', ColorRed)
		s.SetColored(0, 2, '@', ColorRed)
	})
	assert.Equal(t, "    \n    ", s.String())
	assert.Equal(t, ' ', s.Get(-3, 9))
	assert.Equal(t, blankCell, s.GetCell(99, 0))

	s.DrawText(2, 1, "HP 100")
	assert.Equal(t, "    \n  HP", s.String(), "text past the right edge is dropped")
}

func TestScreenSetAndClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(2, 1, '@', ColorBrightGreen)
	s.Set(3, 1, '*')

	assert.Equal(t, Cell{Rune: '@', Color: ColorBrightGreen}, s.GetCell(2, 1))
	assert.Equal(t, Cell{Rune: '*', Color: ColorDefault}, s.GetCell(3, 1))

	s.Clear()
	assert.Equal(t, blankCell, s.GetCell(2, 1), "Clear resets colour as well as glyph")
	assert.Equal(t, strings.Repeat(" ", 6), strings.Split(s.String(), "\n")[1])
}

func TestScreenText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "Lv 3", ColorYellow)
	s.DrawTextCentered(2, "GO")

	rows := strings.Split(s.String(), "\n")
	assert.Equal(t, "Lv 3      ", rows[0])
	assert.Equal(t, "    GO    ", rows[2])
	for x := 0; x < 4; x++ {
		assert.Equal(t, ColorYellow, s.GetCell(x, 0).Color)
	}
	assert.Equal(t, ColorDefault, s.GetCell(4, 2).Color)
}

func TestScreenRectAndBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawRect(2, 1, 3, 2, '#', ColorGray)
	s.DrawBox(0, 0, 7, 5, ColorWhite)

	want := strings.Join([]string{
		"┌─────┐",
		"│ ### │",
		"│ ### │",
		"│     │",
		"└─────┘",
	}, "\n")
	assert.Equal(t, want, s.String())
	assert.Equal(t, ColorGray, s.GetCell(3, 2).Color)
	assert.Equal(t, ColorWhite, s.GetCell(6, 4).Color)
}

func TestScreenDrawMessageBox(t *testing.T) {
	s := NewScreen(20, 9)
	s.DrawRect(0, 0, 20, 9, '.', ColorDefault)
	s.DrawMessageBox("OVER", "R to restart")

	// 16x5 box centred at (2, 2).
	assert.Equal(t, '┌', s.Get(2, 2))
	assert.Equal(t, '┐', s.Get(17, 2))
	assert.Equal(t, '└', s.Get(2, 6))
	assert.Equal(t, '┘', s.Get(17, 6))

	rows := strings.Split(s.String(), "\n")
	assert.Equal(t, "..│     OVER     │..", rows[3])
	assert.Equal(t, "..│ R to restart │..", rows[5])
	assert.Equal(t, ColorBrightYellow, s.GetCell(8, 3).Color)
	assert.Equal(t, ' ', s.Get(5, 4), "box interior is cleared")
	assert.Equal(t, '.', s.Get(0, 0))
	assert.Equal(t, '.', s.Get(19, 8))
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.DrawText(4, 2, "cd")

	s.Resize(4, 2)
	assert.Equal(t, "ab  \n    ", s.String())

	s.Resize(5, 3)
	assert.Equal(t, "ab   \n     \n     ", s.String())

	s.Resize(5, 3)
	assert.Equal(t, 5, s.Width(), "same-size resize is a no-op")
}

func TestScreenDrawLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           [][2]int
	}{
		{"single cell", 3, 3, 3, 3, [][2]int{{3, 3}}},
		{"horizontal", 1, 2, 4, 2, [][2]int{{1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"diagonal", 0, 0, 3, 3, [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"right to left", 4, 0, 0, 0, [][2]int{{4, 0}, {3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"steep", 0, 0, 2, 4, [][2]int{{0, 0}, {1, 1}, {1, 2}, {2, 3}, {2, 4}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 8)
			s.DrawLine(tc.x0, tc.y0, tc.x1, tc.y1, '#', ColorGray)

			drawn := 0
			for y := 0; y < s.Height(); y++ {
				for x := 0; x < s.Width(); x++ {
					if s.Get(x, y) == '#' {
						drawn++
					}
				}
			}
			assert.Equal(t, len(tc.want), drawn)
			for _, p := range tc.want {
				assert.Equal(t, Cell{Rune: '#', Color: ColorGray}, s.GetCell(p[0], p[1]), "cell %v", p)
			}
		})
	}
}
