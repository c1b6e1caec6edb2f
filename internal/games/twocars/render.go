package twocars

import (
	"fmt"

	"github.com/ddrozdov/twocars/internal/core"
)

// Render draws the current state into dst, scaling the virtual playfield to
// the buffer size. Row 0 is a HUD; the playfield uses the rest.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateMenu:
		g.renderMenu(dst)
	default:
		g.renderField(dst)
		if g.state == StateGameOver {
			g.renderGameOver(dst)
		}
	}
}

// scaler maps virtual-pixel coordinates onto a screen buffer, reserving the
// given number of top rows for the HUD.
type scaler struct {
	w, h, top int
}

func newScaler(dst *core.Screen, top int) scaler {
	return scaler{w: dst.Width(), h: dst.Height() - top, top: top}
}

func (s scaler) x(vx int) int { return vx * s.w / VirtualWidth }
func (s scaler) y(vy int) int { return s.top + vy*s.h/VirtualHeight }

// rect scales a virtual rect, keeping at least one cell in each dimension so
// small sprites stay visible on tiny terminals.
func (s scaler) rect(r core.Rect) core.Rect {
	x, y := s.x(r.X), s.y(r.Y)
	w := core.Max(1, r.W*s.w/VirtualWidth)
	h := core.Max(1, r.H*s.h/VirtualHeight)
	return core.NewRect(x, y, w, h)
}

func (g *Game) renderMenu(dst *core.Screen) {
	sc := newScaler(dst, 0)
	dst.DrawTextCentered(sc.y(VirtualHeight/4), "T W O   C A R S", core.ColorBrightWhite)
	dst.DrawTextCentered(sc.y(VirtualHeight/4)+1, "red: D    blue: A", core.ColorGray)
	dst.DrawTextCentered(sc.y(VirtualHeight/2+g.menuBob*6), "press any key to play", core.ColorYellow)
	if g.highscore > 0 {
		dst.DrawTextCentered(dst.Height()-2, fmt.Sprintf("best: %d", g.highscore), core.ColorWhite)
	}
}

func (g *Game) renderField(dst *core.Screen) {
	sc := newScaler(dst, 1)

	dst.DrawText(1, 0, fmt.Sprintf("score %d", g.score), core.ColorBrightWhite)
	best := fmt.Sprintf("best %d", g.highscore)
	dst.DrawText(dst.Width()-len(best)-1, 0, best, core.ColorGray)

	// lane separators; the center line splits the two cars' halves
	for i, vx := range []int{LaneWidth, 2 * LaneWidth, 3 * LaneWidth} {
		r := '┆'
		if i == 1 {
			r = '│'
		}
		dst.DrawVLine(sc.x(vx), sc.top, dst.Height()-sc.top, r, core.ColorGray)
	}

	for _, e := range g.field.Obstacles() {
		col := core.ColorBlue
		if e.Kind.Side() == SideRed {
			col = core.ColorRed
		}
		fill := '■'
		if e.Kind.IsCircle() {
			fill = '●'
		}
		dst.DrawRect(sc.rect(e.Rect()), fill, col)
	}

	g.renderCar(dst, sc, g.blue, core.ColorBrightBlue)
	g.renderCar(dst, sc, g.red, core.ColorBrightRed)
}

func (g *Game) renderCar(dst *core.Screen, sc scaler, c *Car, col core.Color) {
	r := sc.rect(c.Rect())
	dst.DrawRect(r, '█', col)
	// lean the roofline while the car is tilting
	if c.Angle > 1 && r.H > 1 {
		lean := '/'
		if c.targetX > c.X {
			lean = '\\'
		}
		dst.DrawHLine(r.X, r.Y, r.W, lean, col)
	}
}

func (g *Game) renderGameOver(dst *core.Screen) {
	sc := newScaler(dst, 1)

	box := core.NewRect(dst.Width()/2-14, dst.Height()/2-4, 28, 9)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	dst.DrawTextCentered(box.Y+1, "G A M E   O V E R", core.ColorBrightRed)
	dst.DrawTextCentered(box.Y+3, fmt.Sprintf("score %d   best %d", g.score, g.highscore), core.ColorWhite)

	restart := sc.rect(RestartButton)
	home := sc.rect(HomeButton)
	dst.DrawTextCentered(restart.Y+restart.H/2, "[R] restart", core.ColorYellow)
	dst.DrawTextCentered(home.Y+home.H/2, "[H] menu", core.ColorYellow)
}
