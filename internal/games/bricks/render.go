package bricks

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-bricks/internal/assets"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// Visual characters for rendering
const (
	BrickChar      = '█'
	PlainBrickChar = '▒' // brick whose texture has no color
	PaddleChar     = '▀'
	BallChar       = '●'
	BackgroundChar = '░'
)

// Screen layout
const (
	hudRows         = 1 // rows above the field border
	minBrickGapCols = 3 // bricks at least this wide keep a one-cell gap
)

// cellRenderer maps level pixel space onto a region of the screen.
type cellRenderer struct {
	dst      *core.Screen
	field    core.Rect // screen cells available to the level
	windowW  int
	windowH  int
	textures *assets.TexturePool
}

func newCellRenderer(dst *core.Screen, field core.Rect, s engine.Settings, textures *assets.TexturePool) *cellRenderer {
	return &cellRenderer{
		dst:      dst,
		field:    field,
		windowW:  s.WindowW,
		windowH:  s.WindowH,
		textures: textures,
	}
}

// scale converts a pixel rectangle to the screen cells it covers, clipped to
// the field. Anything visible covers at least one cell.
func (c *cellRenderer) scale(r core.Rect) (core.Rect, bool) {
	x0 := c.field.X + floorDiv(r.X*c.field.W, c.windowW)
	x1 := c.field.X + ceilDiv(r.Right()*c.field.W, c.windowW)
	y0 := c.field.Y + floorDiv(r.Y*c.field.H, c.windowH)
	y1 := c.field.Y + ceilDiv(r.Bottom()*c.field.H, c.windowH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = core.Max(x0, c.field.X)
	y0 = core.Max(y0, c.field.Y)
	x1 = core.Min(x1, c.field.Right())
	y1 = core.Min(y1, c.field.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}, false
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0), true
}

// center returns the screen cell holding the center of r.
func (c *cellRenderer) center(r core.Rect) (int, int, bool) {
	cx, cy := r.Center()
	x := c.field.X + floorDiv(cx*c.field.W, c.windowW)
	y := c.field.Y + floorDiv(cy*c.field.H, c.windowH)
	return x, y, c.field.Contains(x, y)
}

// FillRect implements engine.Renderer for the paddle and the ball.
func (c *cellRenderer) FillRect(r core.Rect, col core.Color) {
	if col == engine.BallColor {
		if x, y, ok := c.center(r); ok {
			c.dst.SetColored(x, y, BallChar, col)
		}
		return
	}
	if cells, ok := c.scale(r); ok {
		c.dst.DrawRectColored(cells, PaddleChar, col)
	}
}

// DrawTexture implements engine.Renderer for the background and bricks.
func (c *cellRenderer) DrawTexture(index int, r core.Rect) {
	col := c.textures.Color(index)

	if r.W >= c.windowW && r.H >= c.windowH {
		if col != core.ColorDefault {
			c.dst.DrawRectColored(c.field, BackgroundChar, col)
		}
		return
	}

	cells, ok := c.scale(r)
	if !ok {
		return
	}
	if cells.W >= minBrickGapCols {
		cells.W--
	}
	glyph := BrickChar
	if col == core.ColorDefault {
		glyph = PlainBrickChar
	}
	c.dst.DrawRectColored(cells, glyph, col)
}

func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	border := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows)
	dst.DrawBox(border)

	if g.level != nil {
		field := core.NewRect(border.X+1, border.Y+1, border.W-2, border.H-2)
		g.level.Render(newCellRenderer(dst, field, g.level.Settings(), g.textures))
	}

	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	// Score on left
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	// Lives in center
	lives := fmt.Sprintf("Lives: %d", g.lives)
	if !g.sounds.Enabled() {
		lives += "  [muted]"
	}
	dst.DrawTextCentered(0, lives)

	// Level on right
	name := ""
	if g.level != nil {
		name = g.level.Name()
	}
	levelText := fmt.Sprintf("%d/%d %s", g.levelIndex+1, len(g.levels), name)
	dst.DrawText(dst.Width()-utf8.RuneCountInString(levelText)-1, 0, levelText)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateReady:
		secs := 0
		if rate := g.runtime.TickRate; rate > 0 {
			secs = (g.readyTicks + rate - 1) / rate
		}
		msg := "Get ready..."
		if secs > 0 {
			msg = fmt.Sprintf("Get ready... %d", secs)
		}
		dst.DrawTextCentered(dst.Height()-1, " "+msg+" ")

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "P resume  |  R restart")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box background
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
