package road

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/engine"
)

// Visual characters for rendering
const (
	CarBody     = '█'
	CarNose     = '▶'
	CarNoseUp   = '╱'
	CarNoseDown = '╲'
	BlockChar   = '▓'
	CoinChar    = '●'
	BuffChar    = '◆'
	MarkerChar  = '━'
	EdgeChar    = '═'
)

// worldHalfWidth is half of the visible track length in world units.
const worldHalfWidth = 640.0

// viewport maps world coordinates (y up, origin centered) onto screen cells.
type viewport struct {
	w, h  int
	halfH float64
}

func (v viewport) col(x float64) float64 {
	return (x + worldHalfWidth) / (2 * worldHalfWidth) * float64(v.w)
}

func (v viewport) row(y float64) float64 {
	return (v.halfH - y) / (2 * v.halfH) * float64(v.h)
}

// cells returns the screen rectangle covered by a world box, at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(v.col(b.Center.X - b.HalfW)))
	x1 := int(math.Ceil(v.col(b.Center.X + b.HalfW)))
	y0 := int(math.Floor(v.row(b.Center.Y + b.HalfH)))
	y1 := int(math.Ceil(v.row(b.Center.Y - b.HalfH)))
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the world into dst.
func (g *Game) Render(w *engine.World, dst *core.Screen) {
	dst.Clear()
	v := viewport{w: dst.Width(), h: dst.Height(), halfH: g.cfg.Track.HalfHeight}

	dst.DrawHLine(0, 0, dst.Width(), EdgeChar, core.ColorGray)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), EdgeChar, core.ColorGray)

	for _, m := range g.ents.markers {
		r := v.cells(m.Box())
		dst.DrawHLine(r.X, r.Y+r.H/2, r.W, MarkerChar, core.ColorWhite)
	}
	for _, c := range g.ents.collectibles {
		fill(dst, v.cells(c.Box()), CoinChar, core.ColorBrightYellow)
	}
	fill(dst, v.cells(g.ents.buff.Box()), BuffChar, core.ColorMagenta)
	for _, o := range g.ents.obstacles {
		fill(dst, v.cells(o.Box()), BlockChar, core.ColorRed)
	}
	g.drawPlayer(dst, v)

	for _, t := range w.Texts() {
		if t.Label == labelGameOver {
			continue
		}
		n := utf8.RuneCountInString(t.Value)
		x := int(v.col(t.Translation.X)) - n/2
		y := int(v.row(t.Translation.Y))
		dst.DrawTextColored(core.Clamp(x, 0, core.Max(0, dst.Width()-n)), y, t.Value, g.textColor(t.Label))
	}
	g.drawStatus(dst)

	if g.session.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if w.HasText(labelGameOver) {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press N to restart", g.session.Score))
	}
}

// textColor picks the readout color; health turns red when one more hit
// would leave the player on the last point.
func (g *Game) textColor(label string) core.Color {
	switch label {
	case labelHealth:
		if g.session.Health <= 2 {
			return core.ColorBrightRed
		}
		return core.ColorGreen
	case labelSpeed:
		return core.ColorCyan
	default:
		return core.ColorBrightCyan
	}
}

// drawPlayer renders the car; it grows and turns yellow while invulnerable.
func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	p := g.ents.player
	r := v.cells(p.Box())
	color := core.ColorBlue
	if g.session.Invulnerable {
		color = core.ColorYellow
	}
	fill(dst, r, CarBody, color)

	nose := CarNose
	switch {
	case p.Rotation > 0:
		nose = CarNoseUp
	case p.Rotation < 0:
		nose = CarNoseDown
	}
	dst.SetColored(r.Right(), r.Y+r.H/2, nose, color)
}

// drawStatus shows the remaining time of active buffs on the bottom row.
func (g *Game) drawStatus(dst *core.Screen) {
	s := &g.session
	line := ""
	if s.Invulnerability.Running() {
		line += fmt.Sprintf(" INVULNERABLE %.1fs ", s.Invulnerability.Remaining().Seconds())
	}
	if s.Slow.Running() {
		line += fmt.Sprintf(" SLOW %.1fs ", s.Slow.Remaining().Seconds())
	}
	if line != "" {
		dst.DrawTextColored(2, dst.Height()-1, line, core.ColorBrightCyan)
	}
}

func fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, ch, c)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
