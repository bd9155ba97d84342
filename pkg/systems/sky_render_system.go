package systems

import (
	"math"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/store"
)

// Stamp is one transformed image draw.
//
// The image of Kind is stretched into the box [-Size,-Size,Size,Size],
// rotated by Rotation degrees around its center, moved so that center sits
// at (X, Y), and blended with opacity Alpha (0-255). A stamp carries its
// whole transform, so no state leaks from one stamp to the next.
type Stamp struct {
	Kind     components.ParticleKind
	X, Y     float64
	Rotation float64 // degrees, not wrapped
	Size     int     // half extent in pixels
	Alpha    uint8
}

// Surface is the host drawing target.
type Surface interface {
	DrawStamp(s Stamp)
}

// SkyRenderSystem turns the particle stores into stamps.
type SkyRenderSystem struct {
	stores    []*store.ParticleStore
	halfSizes map[components.ParticleKind]float64
}

// NewSkyRenderSystem creates a render system. halfSizes gives the image
// base half-size per kind.
func NewSkyRenderSystem(stores []*store.ParticleStore, halfSizes map[components.ParticleKind]float64) *SkyRenderSystem {
	return &SkyRenderSystem{
		stores:    stores,
		halfSizes: halfSizes,
	}
}

// Render stamps every visible particle on surface and returns the number
// of stamps issued. viewHeight is the surface height in pixels.
func (rs *SkyRenderSystem) Render(surface Surface, viewHeight int) int {
	drawn := 0
	for _, s := range rs.stores {
		for _, p := range s.Snapshot() {
			stamp, ok := rs.stampFor(p, viewHeight)
			if !ok {
				continue
			}
			surface.DrawStamp(stamp)
			drawn++
		}
	}
	return drawn
}

// stampFor computes the stamp for p, or false when p is culled.
func (rs *SkyRenderSystem) stampFor(p *components.SkyParticle, viewHeight int) (Stamp, bool) {
	h := float64(viewHeight)
	y := p.Y()
	imageHalfSize := p.HalfSize(rs.halfSizes[p.Kind])

	// Ignore the particle if it is fully outside the view bounds
	if y+imageHalfSize < 0 || y-imageHalfSize > h {
		return Stamp{}, false
	}

	// Rotation follows how far the particle has travelled
	var progress float64
	if h > 0 {
		progress = (y + imageHalfSize) / h
	}

	return Stamp{
		Kind:     p.Kind,
		X:        p.X,
		Y:        y,
		Rotation: 360 * progress,
		Size:     int(math.Round(imageHalfSize)),
		Alpha:    AlphaByte(p.Alpha),
	}, true
}

// AlphaByte converts an opacity in [0,1] to a byte, clamping overshoot.
func AlphaByte(alpha float64) uint8 {
	v := math.Round(255 * alpha)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
