// Package raster is a headless software surface. Stamps are composited
// into an in-memory RGBA image with golang.org/x/image/draw, which makes
// the render path observable without a GPU or a window.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/systems"
)

// Surface composites stamps into Dst.
type Surface struct {
	Dst    *image.RGBA
	images map[components.ParticleKind]image.Image
	interp draw.Transformer
	stamps int
}

// NewSurface creates a width x height transparent surface that stamps the
// given image per particle kind.
func NewSurface(width, height int, images map[components.ParticleKind]image.Image) *Surface {
	return &Surface{
		Dst:    image.NewRGBA(image.Rect(0, 0, width, height)),
		images: images,
		interp: draw.BiLinear,
	}
}

// Clear fills the whole surface with c and resets the stamp counter.
func (s *Surface) Clear(c color.Color) {
	draw.Draw(s.Dst, s.Dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	s.stamps = 0
}

// Stamps returns how many stamps were composited since the last Clear.
func (s *Surface) Stamps() int {
	return s.stamps
}

// DrawStamp implements systems.Surface.
func (s *Surface) DrawStamp(st systems.Stamp) {
	src, ok := s.images[st.Kind]
	if !ok || st.Size <= 0 || st.Alpha == 0 {
		return
	}
	sr := src.Bounds()
	if sr.Empty() {
		return
	}

	m := StampTransform(st, sr.Dx(), sr.Dy())
	s.interp.Transform(s.Dst, m, src, sr, draw.Over, &draw.Options{
		SrcMask: image.NewUniform(color.Alpha{A: st.Alpha}),
	})
	s.stamps++
}

// StampTransform maps source pixel coordinates of a w x h image to surface
// coordinates: stretch into [-Size,Size]^2, rotate clockwise by Rotation
// degrees (y grows downward), then move the center to (X, Y).
func StampTransform(st systems.Stamp, w, h int) f64.Aff3 {
	size := float64(st.Size)
	kx := 2 * size / float64(w)
	ky := 2 * size / float64(h)

	rad := st.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)

	return f64.Aff3{
		kx * cos, -ky * sin, -size*cos + size*sin + st.X,
		kx * sin, ky * cos, -size*sin - size*cos + st.Y,
	}
}
