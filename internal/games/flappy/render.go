package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	AvatarBodyChar = '●'
	PipeChar       = '█'
	PipeCapChar    = '▓'
	GroundTopChar  = '═'
	GroundChar     = '░'
)

// cellMapper projects logical playfield coordinates onto a cell grid.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(dst *core.Screen, width, height float64) cellMapper {
	return cellMapper{
		sx: float64(dst.Width()) / width,
		sy: float64(dst.Height()) / height,
	}
}

// span converts a logical interval [start, start+length) to cells.
// Anything with positive length covers at least one cell.
func span(start, length, scale float64) (int, int) {
	c0 := int(math.Round(start * scale))
	c1 := int(math.Round((start + length) * scale))
	if c1 <= c0 && length > 0 {
		c1 = c0 + 1
	}
	return c0, c1 - c0
}

// fill draws a logical rectangle.
func (m cellMapper) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	x, w := span(r.X, r.W, m.sx)
	y, h := span(r.Y, r.H, m.sy)
	dst.FillRect(x, y, w, h, ch, c)
}

// avatarGlyph picks the beak glyph for a display rotation in degrees.
func avatarGlyph(rotation float64) rune {
	switch {
	case rotation < -10:
		return '▲'
	case rotation > 45:
		return '▼'
	default:
		return '▶'
	}
}

// render draws the engine state scaled to dst. It only reads from e.
func render(e *Engine, dst *core.Screen) {
	dst.Clear()

	cfg := e.cfg
	m := newCellMapper(dst, cfg.Playfield.Width, cfg.Playfield.Height)

	for _, o := range e.obstacles.obstacles {
		drawObstacle(dst, m, o, cfg.Obstacles.Width, cfg.Obstacles.CapOverhang, cfg.Obstacles.CapHeight)
	}

	drawAvatar(dst, m, e.session.Avatar)

	// Ground strip
	groundY := cfg.Playfield.GroundY()
	m.fill(dst, core.NewRect(0, groundY, cfg.Playfield.Width, cfg.Playfield.GroundHeight), GroundChar, core.ColorBrown)
	gy, _ := span(groundY, cfg.Playfield.GroundHeight, m.sy)
	dst.DrawHLine(0, gy, dst.Width(), GroundTopChar, core.ColorOrange)

	switch e.session.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, "FLAPPY", "Space / click to flap")
	case PhaseEnded:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d  |  Space or R to restart", e.session.Score, e.highScore))
	}
}

// drawObstacle renders both segments and their caps. Caps overhang the
// collision rectangle and are purely cosmetic.
func drawObstacle(dst *core.Screen, m cellMapper, o Obstacle, width, overhang, capH float64) {
	m.fill(dst, o.TopRect(width), PipeChar, core.ColorGreen)
	m.fill(dst, o.BottomRect(width), PipeChar, core.ColorGreen)

	if o.TopHeight > 0 {
		h := math.Min(capH, o.TopHeight)
		m.fill(dst, core.NewRect(o.X-overhang, o.TopHeight-h, width+2*overhang, h), PipeCapChar, core.ColorBrightGreen)
	}
	if o.BottomHeight > 0 {
		h := math.Min(capH, o.BottomHeight)
		m.fill(dst, core.NewRect(o.X-overhang, o.BottomY, width+2*overhang, h), PipeCapChar, core.ColorBrightGreen)
	}
}

// drawAvatar renders the avatar body with a beak glyph on its right edge
// that follows the rotation.
func drawAvatar(dst *core.Screen, m cellMapper, a Avatar) {
	x, w := span(a.X, a.W, m.sx)
	y, h := span(a.Y, a.H, m.sy)
	dst.FillRect(x, y, w, h, AvatarBodyChar, core.ColorBrightYellow)
	dst.SetColored(x+w-1, y+h/2, avatarGlyph(a.Rotation), core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	dst.DrawTextCentered(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorWhite)
}
