package components

import (
	"math"
	"sync/atomic"
)

// ParticleKind 区分太阳和月亮，两者形状相同，只是使用不同的图片
type ParticleKind int

const (
	KindSun  ParticleKind = iota // 太阳
	KindMoon                     // 月亮
)

// ParticleKinds lists every kind in render order.
var ParticleKinds = []ParticleKind{KindSun, KindMoon}

// String returns the lower-case kind name used in logs and config.
func (k ParticleKind) String() string {
	switch k {
	case KindSun:
		return "sun"
	case KindMoon:
		return "moon"
	default:
		return "unknown"
	}
}

// SkyParticle is one rising sun or moon.
//
// X, Scale, Alpha and Speed are fixed once the particle is created.
// Only the vertical center changes, and it is stored atomically so the
// render path may read it while the motion path writes it.
type SkyParticle struct {
	Kind ParticleKind

	// Position (像素坐标, y 轴向下)
	X float64 // Horizontal center, in [0, viewWidth)

	// Visual properties
	Scale float64 // Multiplier on the image base half-size, in [0.45, 1.0)
	Alpha float64 // Opacity, 0 = transparent, 1 = opaque

	// Speed in pixels per second. Particles travel toward decreasing y.
	Speed float64

	y atomic.Uint64 // math.Float64bits of the vertical center
}

// NewSkyParticle builds a particle with its vertical center at y.
func NewSkyParticle(kind ParticleKind, x, y, scale, alpha, speed float64) *SkyParticle {
	p := &SkyParticle{
		Kind:  kind,
		X:     x,
		Scale: scale,
		Alpha: alpha,
		Speed: speed,
	}
	p.SetY(y)
	return p
}

// Y returns the current vertical center.
func (p *SkyParticle) Y() float64 {
	return math.Float64frombits(p.y.Load())
}

// SetY stores a new vertical center.
func (p *SkyParticle) SetY(y float64) {
	p.y.Store(math.Float64bits(y))
}

// HalfSize returns the on-screen half extent for the given image base half-size.
func (p *SkyParticle) HalfSize(baseHalfSize float64) float64 {
	return p.Scale * baseHalfSize
}
