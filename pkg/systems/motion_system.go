package systems

import (
	"sync/atomic"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/store"
)

// ExitPolicy decides what happens to a particle that has risen past the
// top of the viewport.
type ExitPolicy int

const (
	// ExitRetain keeps the particle forever. It keeps moving and keeps being
	// culled, and the store keeps growing with every spawn.
	ExitRetain ExitPolicy = iota
	// ExitRecycle replaces the particle with a freshly spawned one.
	ExitRecycle
)

// Respawner creates the replacement for a particle that left the view.
type Respawner func(old *components.SkyParticle) *components.SkyParticle

// MotionSystem moves every particle upward at its own constant speed.
//
// It runs for all particles regardless of visibility. Under ExitRetain it
// never removes anything; under ExitRecycle exited particles are swapped
// for fresh ones in place.
type MotionSystem struct {
	stores    []*store.ParticleStore
	halfSizes map[components.ParticleKind]float64
	policy    ExitPolicy
	respawn   Respawner
	recycled  atomic.Int64
}

// NewMotionSystem creates a motion system over stores. halfSizes gives the
// image base half-size per kind and is only consulted by ExitRecycle.
func NewMotionSystem(stores []*store.ParticleStore, halfSizes map[components.ParticleKind]float64, policy ExitPolicy, respawn Respawner) *MotionSystem {
	return &MotionSystem{
		stores:    stores,
		halfSizes: halfSizes,
		policy:    policy,
		respawn:   respawn,
	}
}

// Update advances every particle by deltaMs milliseconds.
func (ms *MotionSystem) Update(deltaMs float64) {
	// Speeds are in px/s
	deltaSeconds := deltaMs / 1000

	for _, s := range ms.stores {
		for i, p := range s.Snapshot() {
			p.SetY(p.Y() - p.Speed*deltaSeconds)

			if ms.policy != ExitRecycle || ms.respawn == nil {
				continue
			}
			// Recycle once the particle is completely above the view
			if p.Y()+p.HalfSize(ms.halfSizes[p.Kind]) < 0 {
				if fresh := ms.respawn(p); fresh != nil && s.Replace(i, fresh) {
					ms.recycled.Add(1)
				}
			}
		}
	}
}

// Recycled returns how many particles have been replaced so far.
func (ms *MotionSystem) Recycled() int {
	return int(ms.recycled.Load())
}
