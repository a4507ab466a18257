package arena

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-shooter/internal/behavior"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	ObstacleChar   = '▓'
	ShotChar       = '•'
	EnemyShotChar  = '*'
	TrailChar      = '·'
	minScreenW     = 40
	minScreenH     = 12
	hudRows        = 1
	footerRows     = 1
	headingArrows  = "→↘↓↙←↖↑↗"
	headingOctants = 8
)

// Render draws the current game state into the screen.
func (g *Game) Render(dst *core.Screen) {
	snap := g.Snapshot()
	RenderSnapshot(dst, &snap)
}

// RenderSnapshot draws a snapshot as a scaled top-down view with a HUD.
func RenderSnapshot(dst *core.Screen, snap *Snapshot) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := newViewport(dst, snap.World)
	dst.DrawBox(v.x0-1, v.y0-1, v.w+2, v.h+2, core.ColorGray)

	for _, o := range snap.Obstacles {
		x0, y0 := v.cell(core.V2(o.X, o.Y))
		x1, y1 := v.cell(core.V2(o.Right(), o.Bottom()))
		dst.DrawRect(x0, y0, max(1, x1-x0), max(1, y1-y0), ObstacleChar, core.ColorGray)
	}

	for _, pk := range snap.Pickups {
		x, y := v.cell(pk.Pos)
		c := pk.Type.Color()
		if pk.Pulse > 0.5 {
			c = core.ColorBrightWhite
		}
		dst.SetColored(x, y, pk.Type.Glyph(), c)
	}

	drawShots(dst, v, snap.Shots, ShotChar, core.ColorBrightYellow)
	drawShots(dst, v, snap.EnemyShots, EnemyShotChar, core.ColorBrightRed)

	for _, e := range snap.Enemies {
		x, y := v.cell(e.Pos)
		dst.SetColored(x, y, e.Behavior.Glyph(), enemyColor(e))
	}

	p := snap.Player
	px, py := v.cell(p.Pos)
	hx, hy := v.cell(p.Pos.Add(core.FromAngle(p.Angle).Scale(p.Radius * 3)))
	if hx != px || hy != py {
		dst.SetColored(hx, hy, headingGlyph(p.Angle), core.ColorGreen)
	}
	dst.SetColored(px, py, PlayerChar, core.ColorBrightGreen)

	renderHUD(dst, snap)
	renderFooter(dst, snap)
	renderOverlay(dst, snap)
}

// viewport maps world coordinates to the screen cells inside the border.
type viewport struct {
	x0, y0, w, h int
	world        core.Rect
}

func newViewport(dst *core.Screen, world core.Rect) viewport {
	return viewport{
		x0:    1,
		y0:    hudRows + 1,
		w:     dst.Width() - 2,
		h:     dst.Height() - hudRows - footerRows - 2,
		world: world,
	}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	fx := (p.X - v.world.X) / v.world.W
	fy := (p.Y - v.world.Y) / v.world.H
	x := v.x0 + int(math.Floor(fx*float64(v.w)))
	y := v.y0 + int(math.Floor(fy*float64(v.h)))
	return core.Clamp(x, v.x0, v.x0+v.w-1), core.Clamp(y, v.y0, v.y0+v.h-1)
}

func drawShots(dst *core.Screen, v viewport, shots []ShotView, head rune, c core.Color) {
	for _, s := range shots {
		for _, t := range s.Trail {
			x, y := v.cell(t)
			if dst.Get(x, y) == ' ' {
				dst.SetColored(x, y, TrailChar, core.ColorGray)
			}
		}
		x, y := v.cell(s.Pos)
		dst.SetColored(x, y, head, c)
	}
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

// headingGlyph picks the arrow nearest to angle degrees.
func headingGlyph(angle float64) rune {
	arrows := []rune(headingArrows)
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	idx := int(math.Round(a/(360/headingOctants))) % headingOctants
	return arrows[idx]
}

// renderHUD draws score, level and the player's vitals on the top row.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	p := snap.Player
	left := fmt.Sprintf("Score: %d  Hi: %d  Lv: %d", snap.Score, snap.HighScore, snap.Level)
	dst.DrawText(1, 0, left)

	var right strings.Builder
	fmt.Fprintf(&right, "HP %d/%d", int(math.Ceil(p.Health)), int(p.MaxHealth))
	if p.Shield > 0 {
		fmt.Fprintf(&right, "  SH %d", int(math.Ceil(p.Shield)))
	}
	if p.ScoreMultiplier > 1 {
		fmt.Fprintf(&right, "  x%d", p.ScoreMultiplier)
	}
	if p.SpeedBoosted {
		right.WriteString("  FAST")
	}
	text := right.String()
	dst.DrawTextColored(dst.Width()-len(text)-1, 0, text, core.HealthColor(p.Health, p.MaxHealth))
}

// renderFooter lists weapons; the selected one is bracketed, locked ones dimmed.
func renderFooter(dst *core.Screen, snap *Snapshot) {
	y := dst.Height() - 1
	x := 1
	owned := make(map[WeaponType]bool, len(snap.Player.Owned))
	for _, w := range snap.Player.Owned {
		owned[w] = true
	}
	for i, w := range AllWeapons() {
		label := fmt.Sprintf(" %d %s ", i+1, w)
		c := core.ColorGray
		switch {
		case w == snap.Player.Weapon:
			label = fmt.Sprintf("[%d %s]", i+1, w)
			c = core.ColorBrightCyan
		case owned[w]:
			c = core.ColorWhite
		}
		dst.DrawTextColored(x, y, label, c)
		x += len(label) + 1
	}
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
