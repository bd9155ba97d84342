// Package art generates the sun and moon images used when no image file is
// configured. Shapes are rasterized with golang.org/x/image/vector into
// plain RGBA images, so every host (GPU, terminal, raster) can share them.
package art

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

var (
	sunCore  = color.RGBA{R: 255, G: 176, B: 32, A: 255}
	sunRays  = color.RGBA{R: 255, G: 214, B: 64, A: 255}
	moonFace = color.RGBA{R: 232, G: 236, B: 255, A: 255}
)

// SunRayCount is the number of rays around the sun disc.
const SunRayCount = 12

// Sun returns a size x size image of a sun: a disc with triangular rays.
func Sun(size int) *image.RGBA {
	if size <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float32(size) / 2
	outer := c
	inner := c * 0.62

	rays := vector.NewRasterizer(size, size)
	half := math.Pi / SunRayCount / 2
	for i := 0; i < SunRayCount; i++ {
		a := 2 * math.Pi * float64(i) / SunRayCount
		rays.MoveTo(polar(c, c, outer, a))
		rays.LineTo(polar(c, c, inner, a+half))
		rays.LineTo(polar(c, c, inner, a-half))
		rays.ClosePath()
	}
	rays.Draw(dst, dst.Bounds(), image.NewUniform(sunRays), image.Point{})

	disc := vector.NewRasterizer(size, size)
	circle(disc, c, c, c*0.55)
	disc.Draw(dst, dst.Bounds(), image.NewUniform(sunCore), image.Point{})

	return dst
}

// Moon returns a size x size image of a crescent moon.
func Moon(size int) *image.RGBA {
	if size <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float32(size) / 2
	r := c * 0.9

	face := vector.NewRasterizer(size, size)
	circle(face, c, c, r)
	face.Draw(dst, dst.Bounds(), image.NewUniform(moonFace), image.Point{})

	// Carve the crescent: fade the face out under an offset disc
	bite := image.NewAlpha(dst.Bounds())
	cut := vector.NewRasterizer(size, size)
	circle(cut, c+r*0.45, c-r*0.2, r*0.8)
	cut.Draw(bite, bite.Bounds(), image.Opaque, image.Point{})
	subtract(dst, bite)

	return dst
}

// subtract scales every premultiplied pixel of dst by the inverse of mask.
// Both images must share bounds.
func subtract(dst *image.RGBA, mask *image.Alpha) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[dst.PixOffset(b.Min.X, y):]
		mrow := mask.Pix[mask.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			keep := 255 - uint32(mrow[x])
			px := row[4*x : 4*x+4]
			for i := range px {
				px[i] = uint8(uint32(px[i]) * keep / 255)
			}
		}
	}
}

// BaseHalfSize returns half of the larger intrinsic dimension of img.
func BaseHalfSize(img image.Image) float64 {
	b := img.Bounds()
	return float64(max(b.Dx(), b.Dy())) / 2
}

func polar(cx, cy, r float32, a float64) (float32, float32) {
	return cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))
}

func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := r * kappa
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
