package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// skyBands is the number of horizontal strips used for the sky gradient.
const skyBands = 12

// debug font cell size used to centre text
const glyphW = 6

var (
	skyTop      = color.RGBA{R: 78, G: 192, B: 202, A: 255}
	skyBottom   = color.RGBA{R: 196, G: 236, B: 236, A: 255}
	pipeFill    = color.RGBA{R: 115, G: 191, B: 46, A: 255}
	pipeCap     = color.RGBA{R: 96, G: 166, B: 36, A: 255}
	pipeOutline = color.RGBA{R: 42, G: 72, B: 18, A: 255}
	groundFill  = color.RGBA{R: 222, G: 216, B: 149, A: 255}
	groundTop   = color.RGBA{R: 92, G: 168, B: 60, A: 255}
	avatarBody  = color.RGBA{R: 250, G: 212, B: 52, A: 255}
	avatarEye   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	avatarPupil = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	avatarBeak  = color.RGBA{R: 240, G: 120, B: 40, A: 255}
	overlayDim  = color.RGBA{A: 120}
)

// lerpColor blends a toward b by t in [0, 1].
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = core.ClampF(t, 0, 1)
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// pipeRects returns the rectangles drawn for one obstacle: the two bodies
// followed by the two caps. Caps overhang the body on both sides, sit at
// the gap edges and are never taller than their segment.
func pipeRects(o flappy.Obstacle, cfg config.FlappyObstacles) [4]core.Rect {
	capX := o.X - cfg.CapOverhang
	capW := cfg.Width + 2*cfg.CapOverhang
	topCap := math.Max(math.Min(cfg.CapHeight, o.TopHeight), 0)
	bottomCap := math.Max(math.Min(cfg.CapHeight, o.BottomHeight), 0)
	return [4]core.Rect{
		o.TopRect(cfg.Width),
		o.BottomRect(cfg.Width),
		core.NewRect(capX, o.TopHeight-topCap, capW, topCap),
		core.NewRect(capX, o.BottomY, capW, bottomCap),
	}
}

// Draw renders the current engine state. It never changes the state.
func (g *Game) Draw(screen *ebiten.Image) {
	cfg := g.engine.Config()
	pf := cfg.Playfield

	drawSky(screen, pf)
	for _, o := range g.engine.Obstacles() {
		drawPipe(screen, o, cfg.Obstacles)
	}
	g.drawAvatar(screen, g.engine.Session().Avatar)
	drawGround(screen, pf)
	g.drawHUD(screen, pf)
}

func drawSky(screen *ebiten.Image, pf config.FlappyPlayfield) {
	bandH := pf.GroundY() / skyBands
	for i := range skyBands {
		c := lerpColor(skyTop, skyBottom, float64(i)/float64(skyBands-1))
		fillRect(screen, core.NewRect(0, float64(i)*bandH, pf.Width, bandH+1), c)
	}
}

func drawPipe(screen *ebiten.Image, o flappy.Obstacle, cfg config.FlappyObstacles) {
	rects := pipeRects(o, cfg)
	for i, r := range rects {
		fill := pipeFill
		if i >= 2 {
			fill = pipeCap
		}
		if r.W <= 0 || r.H <= 0 {
			continue
		}
		fillRect(screen, r, fill)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, pipeOutline, false)
	}
}

func drawGround(screen *ebiten.Image, pf config.FlappyPlayfield) {
	fillRect(screen, core.NewRect(0, pf.GroundY(), pf.Width, pf.GroundHeight), groundFill)
	fillRect(screen, core.NewRect(0, pf.GroundY(), pf.Width, 6), groundTop)
}

// drawAvatar draws the avatar sprite rotated about its centre.
func (g *Game) drawAvatar(screen *ebiten.Image, a flappy.Avatar) {
	w, h := int(math.Ceil(a.W)), int(math.Ceil(a.H))
	if w <= 0 || h <= 0 {
		return
	}
	if g.sprite == nil || g.sprite.Bounds().Dx() != w || g.sprite.Bounds().Dy() != h {
		g.sprite = avatarSprite(w, h)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-a.W/2, -a.H/2)
	op.GeoM.Rotate(a.Rotation * math.Pi / 180)
	op.GeoM.Translate(a.X+a.W/2, a.Y+a.H/2)
	screen.DrawImage(g.sprite, op)
}

// avatarSprite paints the unrotated avatar facing right.
func avatarSprite(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)
	vector.DrawFilledRect(img, 0, 0, fw, fh, avatarBody, false)
	vector.StrokeRect(img, 0, 0, fw, fh, 2, pipeOutline, false)
	vector.DrawFilledCircle(img, fw*0.68, fh*0.32, fw*0.14, avatarEye, true)
	vector.DrawFilledCircle(img, fw*0.72, fh*0.32, fw*0.06, avatarPupil, true)
	vector.DrawFilledRect(img, fw*0.8, fh*0.5, fw*0.2, fh*0.2, avatarBeak, false)
	return img
}

func (g *Game) drawHUD(screen *ebiten.Image, pf config.FlappyPlayfield) {
	s := g.engine.Session()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best: %d", g.engine.HighScore()), 8, 24)

	switch {
	case g.paused:
		drawOverlay(screen, pf, "PAUSED", "P to resume")
	case s.Phase == flappy.PhaseStart:
		drawOverlay(screen, pf, "FLAPPY", "Space / click to flap")
	case s.Phase == flappy.PhaseEnded:
		drawOverlay(screen, pf, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", s.Score, g.engine.HighScore()),
			"Space or R to restart")
	}
}

func drawOverlay(screen *ebiten.Image, pf config.FlappyPlayfield, lines ...string) {
	const lineH = 18
	boxH := float64(len(lines)*lineH + 24)
	top := (pf.GroundY() - boxH) / 2
	fillRect(screen, core.NewRect(20, top, pf.Width-40, boxH), overlayDim)

	for i, line := range lines {
		x := int(pf.Width/2) - len(line)*glyphW/2
		y := int(top) + 12 + i*lineH
		ebitenutil.DebugPrintAt(screen, line, x, y)
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
