package farm

import (
	"fmt"
	"math"

	"github.com/vovakirdan/crop-rush/internal/core"
)

// Minimum terminal size that can show the field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

// viewport maps arena pixels onto the cell grid inside the field border.
type viewport struct {
	x0, y0 int // Top-left inner cell
	cols   int
	rows   int
	sx, sy float64 // Cells per pixel
}

func newViewport(dst *core.Screen, arenaW, arenaH float64) viewport {
	// Row 0 is the HUD, the border takes one cell on every side.
	v := viewport{x0: 1, y0: 2, cols: dst.Width() - 2, rows: dst.Height() - 3}
	v.sx = float64(v.cols) / arenaW
	v.sy = float64(v.rows) / arenaH
	return v
}

// cells returns the inclusive cell span covered by r; every rect covers at
// least one cell.
func (v viewport) cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = v.x0 + int(math.Floor(r.X*v.sx))
	y0 = v.y0 + int(math.Floor(r.Y*v.sy))
	x1 = v.x0 + int(math.Ceil(r.Right()*v.sx)) - 1
	y1 = v.y0 + int(math.Ceil(r.Bottom()*v.sy)) - 1
	x1 = core.Clamp(max(x1, x0), v.x0, v.x0+v.cols-1)
	y1 = core.Clamp(max(y1, y0), v.y0, v.y0+v.rows-1)
	x0 = core.Clamp(x0, v.x0, x1)
	y0 = core.Clamp(y0, v.y0, y1)
	return x0, y0, x1, y1
}

// point returns the cell under an arena position.
func (v viewport) point(p core.Vec) (int, int) {
	x := core.Clamp(v.x0+int(p.X*v.sx), v.x0, v.x0+v.cols-1)
	y := core.Clamp(v.y0+int(p.Y*v.sy), v.y0, v.y0+v.rows-1)
	return x, y
}

func (v viewport) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x0, y0, x1, y1 := v.cells(r)
	dst.DrawRect(x0, y0, x1-x0+1, y1-y0+1, ch, c)
}

// Render draws the HUD, the field and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	g.renderHUD(dst)

	dst.DrawBox(0, 1, w, h-1)
	v := newViewport(dst, g.cfg.Arena.Width, g.cfg.Arena.Height)

	// Tilled soil
	for y := v.y0; y < v.y0+v.rows; y += 2 {
		for x := v.x0 + (y/2)%2; x < v.x0+v.cols; x += 4 {
			dst.SetColor(x, y, '·', core.ColorBrown)
		}
	}

	for _, o := range g.obstacles {
		v.fill(dst, o.Rect, '█', core.ColorGray)
	}
	for _, c := range g.crops {
		x, y := v.point(c.Rect.Center())
		dst.SetColor(x, y, c.Glyph(), c.Type.Color)
	}
	for _, c := range g.crows {
		x, y := v.point(c.Pos)
		glyph := 'v'
		if c.Vel.X < 0 {
			glyph = 'V'
		}
		dst.SetColor(x, y, glyph, core.ColorDarkGray)
	}
	if g.ai != nil {
		v.fill(dst, g.ai.Rect, '▓', core.ColorBrightBlue)
	}
	if g.farmer != nil {
		v.fill(dst, g.farmer.Rect, '▓', core.ColorOrange)
	}

	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score %d/%d", g.score, g.goal)
	if g.ai != nil {
		hud += fmt.Sprintf("  AI %d", g.aiScore)
	}
	hud += fmt.Sprintf("  Lvl %d/%d  Time %.1f", g.levelIndex+1, len(g.cfg.Levels), g.timeLeft)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	status := g.status
	if room := dst.Width() - len([]rune(hud)) - 2; len([]rune(status)) > room {
		if room <= 0 {
			return
		}
		status = string([]rune(status)[:room])
	}
	x := dst.Width() - len([]rune(status)) - 1
	dst.DrawTextColor(x, 0, status, statusColor(g.phase))
}

func statusColor(p Phase) core.Color {
	switch p {
	case PhasePlaying:
		return core.ColorBrightGreen
	case PhasePaused:
		return core.ColorYellow
	case PhaseWin:
		return core.ColorBrightYellow
	case PhaseGameOver:
		return core.ColorBrightRed
	}
	return core.ColorCyan
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhaseMenu:
		if g.cfgErr != nil {
			g.drawCenteredMessage(dst, StatusBadCfg, "Fix the level file and restart")
			return
		}
		g.drawCenteredMessage(dst, g.Title(), "Enter: start  Arrows/WASD: move  P: pause  R: menu")
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseWin:
		next := "Enter: next level"
		if g.levelIndex+1 >= len(g.cfg.Levels) {
			next = "All levels cleared!  Enter: play again"
		}
		g.drawCenteredMessage(dst, StatusWin, fmt.Sprintf("Score %d  |  %s", g.score, next))
	case PhaseGameOver:
		g.drawCenteredMessage(dst, g.status, fmt.Sprintf("Score %d  |  Enter: retry  R: menu", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Min(core.Max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColor(titleX, boxY+1, title, statusColor(g.phase))

	subtitleX := boxX + (boxW-len([]rune(subtitle)))/2
	dst.DrawText(max(subtitleX, boxX+1), boxY+3, subtitle)
}
