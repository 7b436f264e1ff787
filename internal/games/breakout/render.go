package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '▀'
	BallChar    = '●'
	PreviewChar = '○'
)

// BlockGlyphs alternate by grid column so neighbouring blocks stay
// distinguishable.
var BlockGlyphs = []rune{'█', '▓'}

// Minimum terminal size for a level to be drawn.
const (
	MinScreenW = 32
	MinScreenH = 12
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws snap into dst.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorTitle)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorHint)
		return
	}

	switch snap.Scene {
	case SceneStart:
		drawCenteredBox(dst, core.ColorTitle,
			"B R E A K O U T ! !",
			"Swept-collision brick breaker",
			"Press any key to continue...")
	case SceneFinish:
		drawCenteredBox(dst, core.ColorTitle,
			"N I C E ! !",
			fmt.Sprintf("Your final score is %d", snap.Score),
			"Press any key to continue...")
	case SceneLevel:
		renderLevel(dst, snap)
	}
}

// viewport maps world units to screen cells. World y points up, screen
// rows point down.
type viewport struct {
	offX, offY int // top-left cell of the field
	cols, rows int // field size in cells
	sx, sy     float64
	shake      core.Vec2
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	// Row 0 is the HUD; the field box takes the rest.
	availCols := dst.Width() - 2
	availRows := dst.Height() - 3

	sx := math.Max(snap.BlockW/4, snap.W/float64(availCols))
	sy := math.Max(snap.BlockH, snap.H/float64(availRows))
	cols := min(int(math.Ceil(snap.W/sx)), availCols)
	rows := min(int(math.Ceil(snap.H/sy)), availRows)

	return viewport{
		offX:  (dst.Width() - cols) / 2,
		offY:  2 + (availRows-rows)/2,
		cols:  cols,
		rows:  rows,
		sx:    sx,
		sy:    sy,
		shake: snap.Shake,
	}
}

// col converts a world x to a field column.
func (v viewport) col(x float64) int {
	return int(math.Floor((x + v.shake.X()) / v.sx))
}

// row converts a world y to a field row counted from the bottom.
func (v viewport) row(y float64) int {
	return int(math.Floor((y + v.shake.Y()) / v.sy))
}

// cell converts a world point to a screen cell.
func (v viewport) cell(p core.Vec2) (int, int) {
	return v.offX + v.col(p.X()), v.offY + v.rows - 1 - v.row(p.Y())
}

// fillWorldRect fills the cells covered by a world rectangle, clipped to
// the field. Every rectangle covers at least one cell.
func (v viewport) fillWorldRect(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	c0, c1 := v.col(r.Origin.X()), v.col(r.Right())-1
	r0, r1 := v.row(r.Origin.Y()), v.row(r.Top())-1
	c0, r0 = core.Clamp(c0, 0, v.cols-1), core.Clamp(r0, 0, v.rows-1)
	c1 = core.Clamp(max(c1, c0), 0, v.cols-1)
	r1 = core.Clamp(max(r1, r0), 0, v.rows-1)
	for rr := r0; rr <= r1; rr++ {
		y := v.offY + v.rows - 1 - rr
		for cc := c0; cc <= c1; cc++ {
			dst.SetColor(v.offX+cc, y, ch, c)
		}
	}
}

func renderLevel(dst *core.Screen, snap Snapshot) {
	renderHUD(dst, snap)

	vp := newViewport(dst, snap)
	dst.DrawBox(vp.offX-1, vp.offY-1, vp.cols+2, vp.rows+2, core.ColorBorder)

	for _, b := range snap.Blocks {
		gridCol := int(b.Rect.Origin.X() / snap.BlockW)
		glyph := BlockGlyphs[gridCol%len(BlockGlyphs)]
		vp.fillWorldRect(dst, b.Rect, glyph, core.ColorBlock)
	}

	p := snap.Paddle
	paddleTop := core.NewRect(p.Origin.X(), p.Origin.Y()+p.H/2, p.W, 0)
	vp.fillWorldRect(dst, paddleTop, PaddleChar, core.ColorPaddle)

	if snap.Launching {
		x, y := vp.cell(snap.Preview.Center)
		dst.SetColor(x, y, PreviewChar, core.ColorHint)
	}
	for _, b := range snap.Balls {
		x, y := vp.cell(b.Circle.Center)
		if y < vp.offY || y >= vp.offY+vp.rows {
			continue
		}
		dst.SetColor(x, y, BallChar, core.ColorBall)
	}

	bottom := vp.offY + vp.rows
	switch {
	case snap.Paused:
		drawCenteredBox(dst, core.ColorTitle, "PAUSED", "", "Press P to resume")
	case snap.Launching && snap.BallsLeft > 0:
		dst.DrawTextCentered(bottom, " SPACE to launch ", core.ColorHint)
	}
}

// renderHUD draws the score, lives, and level indicator.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorHUD)
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", snap.BallsLeft), core.ColorHUD)

	var levelText string
	if snap.Mode == ModeEndless {
		levelText = fmt.Sprintf("Level: %d", snap.Level)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", snap.Level, snap.LevelCount)
	}
	dst.DrawTextColor(dst.Width()-len(levelText)-1, 0, levelText, core.ColorHUD)
}

// drawCenteredBox draws a centered message box with a title, a body line
// and a hint.
func drawCenteredBox(dst *core.Screen, titleColor core.Color, title, body, hint string) {
	boxW := max(len([]rune(title)), len([]rune(body)), len([]rune(hint))) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBorder)

	dst.DrawTextCentered(boxY+1, title, titleColor)
	dst.DrawTextCentered(boxY+3, body, core.ColorDefault)
	dst.DrawTextCentered(boxY+5, hint, core.ColorHint)
}
