package entities

import (
	"sync"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/utils"
)

// Spawn parameters (生成参数)
const (
	ScaleMinPart    = 0.45 // Minimum scale of an image
	ScaleRandomPart = 0.55 // How much of the scale is random
	AlphaScalePart  = 0.5  // How much of the alpha follows the scale
	AlphaRandomPart = 0.5  // How much of the alpha is random

	// DefaultBaseSpeedDpPerSecond is the base speed at reference density.
	DefaultBaseSpeedDpPerSecond = 200.0
)

// AlphaPolicy decides what happens to an alpha outside [0,1] at creation.
type AlphaPolicy int

const (
	// AlphaOvershoot keeps the computed alpha as is.
	AlphaOvershoot AlphaPolicy = iota
	// AlphaClamp clamps the computed alpha to [0,1].
	AlphaClamp
)

// ParticleFactory creates fully parameterized sky particles.
//
// Each particle consumes exactly four draws from the random stream, in the
// order scale, x, y offset, alpha. The order is part of the contract: the
// same seed and the same sequence of Create calls always yield the same sky.
type ParticleFactory struct {
	mu          sync.Mutex
	rnd         utils.RandomSource
	baseSpeed   float64
	alphaPolicy AlphaPolicy
}

// NewParticleFactory creates a factory. baseSpeed is in pixels per second,
// already multiplied by the display density.
func NewParticleFactory(rnd utils.RandomSource, baseSpeed float64, alphaPolicy AlphaPolicy) *ParticleFactory {
	return &ParticleFactory{
		rnd:         rnd,
		baseSpeed:   baseSpeed,
		alphaPolicy: alphaPolicy,
	}
}

// BaseSpeed returns the speed in pixels per second of a particle with
// alpha and scale both equal to 1.
func (f *ParticleFactory) BaseSpeed() float64 {
	return f.baseSpeed
}

// Create builds a particle of the given kind just below a view of
// viewWidth x viewHeight pixels.
//
// The particle starts fully below the visible area, plus a random extra
// offset of up to a quarter of the view height so spawns do not appear in
// lockstep.
func (f *ParticleFactory) Create(kind components.ParticleKind, viewWidth, viewHeight int, baseHalfSize float64) *components.SkyParticle {
	w := float64(viewWidth)
	h := float64(viewHeight)

	f.mu.Lock()
	scale := ScaleMinPart + ScaleRandomPart*f.rnd.Float64()
	x := w * f.rnd.Float64()
	y := h + scale*baseHalfSize + h*f.rnd.Float64()/4
	alpha := AlphaScalePart*scale + AlphaRandomPart*f.rnd.Float64()
	f.mu.Unlock()

	if f.alphaPolicy == AlphaClamp {
		alpha = clamp01(alpha)
	}

	// The bigger and brighter a particle is, the faster it moves
	speed := f.baseSpeed * alpha * scale

	return components.NewSkyParticle(kind, x, y, scale, alpha, speed)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
