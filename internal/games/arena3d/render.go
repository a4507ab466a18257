package arena3d

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/behavior"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar    = '@'
	WallChar      = '#'
	BulletChar    = '*'
	TrailChar     = '·'
	minScreenW    = 40
	minScreenH    = 12
	hudRows       = 1
	footerRows    = 1
	headingArrows = "→↘↓↙←↖↑↗"
)

// Render draws the current game state into the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws the arena from above: X runs right, Z runs down.
// Height is shown only in the footer.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newViewport(dst, snap.WorldSize)

	for _, w := range snap.Walls {
		x0, y0 := v.cell(w.Start)
		x1, y1 := v.cell(w.End)
		dst.DrawLine(x0, y0, x1, y1, WallChar, core.ColorGray)
	}

	for _, b := range snap.Bullets {
		for _, t := range b.Trail {
			x, y := v.cell(t)
			if dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, TrailChar, core.ColorGray)
			}
		}
		x, y := v.cell(b.Pos)
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}

	for _, e := range snap.Enemies {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, e.Behavior.Glyph(), enemyColor(e))
	}

	c := snap.Camera
	px, py := v.cell(c.Pos)
	ahead := c.Pos.Add(core.V3(c.Forward.X, 0, c.Forward.Z).Normalize().Scale(v.unit() * 2))
	hx, hy := v.cell(ahead)
	if hx != px || hy != py {
		dst.SetColored(hx, hy, headingGlyph(c.Forward), core.ColorGreen)
	}
	dst.SetColored(px, py, PlayerChar, core.ColorBrightGreen)

	renderHUD(dst, snap)
	renderFooter(dst, snap)
	renderOverlay(dst, snap)
}

// viewport maps the square arena onto the screen below the HUD. Cells are
// about twice as tall as wide, so X gets two columns per row of Z.
type viewport struct {
	x0, y0, w, h int
	half         float64
}

func newViewport(dst *core.Screen, size float64) viewport {
	h := dst.Height() - hudRows - footerRows
	w := min(dst.Width(), h*2)
	return viewport{
		x0:   (dst.Width() - w) / 2,
		y0:   hudRows,
		w:    w,
		h:    h,
		half: size / 2,
	}
}

func (v viewport) cell(p core.Vec3) (int, int) {
	fx := (p.X + v.half) / (2 * v.half)
	fz := (p.Z + v.half) / (2 * v.half)
	x := v.x0 + int(math.Floor(fx*float64(v.w-1)+0.5))
	y := v.y0 + int(math.Floor(fz*float64(v.h-1)+0.5))
	return core.Clamp(x, v.x0, v.x0+v.w-1), core.Clamp(y, v.y0, v.y0+v.h-1)
}

// unit is the world distance covered by one row.
func (v viewport) unit() float64 {
	return 2 * v.half / float64(max(1, v.h-1))
}

func enemyColor(e EnemyView) core.Color {
	if e.MaxHealth > 0 && e.Health < e.MaxHealth {
		return core.ColorYellow
	}
	switch e.Behavior {
	case behavior.Flanker:
		return core.ColorMagenta
	case behavior.Ambusher:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// headingGlyph picks the arrow nearest to the forward direction on screen.
func headingGlyph(forward core.Vec3) rune {
	arrows := []rune(headingArrows)
	a := core.Degrees(math.Atan2(forward.Z, forward.X))
	if a < 0 {
		a += 360
	}
	idx := int(math.Round(a/45)) % len(arrows)
	return arrows[idx]
}

func renderHUD(dst *core.Screen, snap *Snapshot) {
	left := fmt.Sprintf("Score: %d  Hi: %d  Lv: %d", snap.Score, snap.HighScore, snap.Level)
	dst.DrawText(1, 0, left)

	var right strings.Builder
	fmt.Fprintf(&right, "HP %d/%d", int(math.Ceil(snap.Health)), int(snap.MaxHealth))
	if snap.Shield > 0 {
		fmt.Fprintf(&right, "  SH %d", int(math.Ceil(snap.Shield)))
	}
	text := right.String()
	dst.DrawTextColored(dst.Width()-len(text)-1, 0, text, core.HealthColor(snap.Health, snap.MaxHealth))
}

// renderFooter shows the camera pose, enemy count and the weapon kick.
func renderFooter(dst *core.Screen, snap *Snapshot) {
	y := dst.Height() - 1
	c := snap.Camera
	pose := fmt.Sprintf("Yaw %3.0f  Pitch %+3.0f  Alt %.1f  Enemies %d",
		c.Yaw, c.Pitch, c.Pos.Y, len(snap.Enemies))
	dst.DrawTextColored(1, y, pose, core.ColorWhite)

	sight := "[+]"
	color := core.ColorBrightCyan
	if snap.Recoil > 0 {
		sight = "[*]"
		color = core.ColorBrightYellow
	}
	dst.DrawTextColored(dst.Width()-len(sight)-1, y, sight, color)
}

func renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch snap.State {
	case StatePaused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  High: %d  |  Enter/R to restart", snap.Score, snap.HighScore)
		dst.DrawMessageBox("GAME OVER", subtitle)
	}
}
