// Package term draws stamps onto a tcell screen. Pixel coordinates are
// mapped onto the character grid through a fixed cell size, so the same
// simulation drives a window and a terminal.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/systems"
)

// spinFrames are indexed by rotation in 45 degree steps.
var spinFrames = []rune{'|', '/', '-', '\\', '|', '/', '-', '\\'}

// Glyph describes how a particle kind looks in the terminal.
type Glyph struct {
	Center rune // used for single-cell particles and the center cell
	Body   rune // fills the rest of the disc
	Spin   bool // replace Center with a spinner frame following rotation
	Color  colorful.Color
}

// DefaultGlyphs returns the glyph set for suns and moons.
func DefaultGlyphs() map[components.ParticleKind]Glyph {
	return map[components.ParticleKind]Glyph{
		components.KindSun:  {Center: '*', Body: 'o', Spin: true, Color: mustHex("#ffc430")},
		components.KindMoon: {Center: 'C', Body: '.', Color: mustHex("#dce2ff")},
	}
}

// Surface implements systems.Surface on a tcell.Screen.
type Surface struct {
	screen tcell.Screen
	cellW  int
	cellH  int
	glyphs map[components.ParticleKind]Glyph
}

// NewSurface creates a surface where each cell covers cellW x cellH pixels.
func NewSurface(screen tcell.Screen, cellW, cellH int, glyphs map[components.ParticleKind]Glyph) *Surface {
	if glyphs == nil {
		glyphs = DefaultGlyphs()
	}
	return &Surface{
		screen: screen,
		cellW:  max(cellW, 1),
		cellH:  max(cellH, 1),
		glyphs: glyphs,
	}
}

// PixelSize returns the screen size in pixels.
func (s *Surface) PixelSize() (int, int) {
	cols, rows := s.screen.Size()
	return cols * s.cellW, rows * s.cellH
}

// DrawStamp implements systems.Surface.
func (s *Surface) DrawStamp(st systems.Stamp) {
	g, ok := s.glyphs[st.Kind]
	if !ok || st.Alpha == 0 {
		return
	}

	col := int(math.Floor(st.X / float64(s.cellW)))
	row := int(math.Floor(st.Y / float64(s.cellH)))
	rx := st.Size / s.cellW
	ry := st.Size / s.cellH

	style := tcell.StyleDefault.Foreground(shade(g, st.Alpha))
	cols, rows := s.screen.Size()

	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			if !insideEllipse(dx, dy, rx, ry) {
				continue
			}
			x, y := col+dx, row+dy
			if x < 0 || y < 0 || x >= cols || y >= rows {
				continue
			}
			r := g.Body
			if dx == 0 && dy == 0 {
				r = g.Center
				if g.Spin {
					r = SpinFrame(st.Rotation)
				}
			}
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
}

// SpinFrame returns the spinner rune for a rotation in degrees.
func SpinFrame(rotation float64) rune {
	deg := math.Mod(rotation+22.5, 360)
	if deg < 0 {
		deg += 360
	}
	return spinFrames[int(deg/45)%len(spinFrames)]
}

func insideEllipse(dx, dy, rx, ry int) bool {
	if rx == 0 && ry == 0 {
		return dx == 0 && dy == 0
	}
	var fx, fy float64
	if rx > 0 {
		fx = float64(dx) / float64(rx)
	} else if dx != 0 {
		return false
	}
	if ry > 0 {
		fy = float64(dy) / float64(ry)
	} else if dy != 0 {
		return false
	}
	return fx*fx+fy*fy <= 1
}

// shade blends the glyph color over a black background by opacity.
func shade(g Glyph, alpha uint8) tcell.Color {
	c := colorful.Color{}.BlendRgb(g.Color, float64(alpha)/255).Clamped()
	r, gr, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(gr), int32(b))
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
