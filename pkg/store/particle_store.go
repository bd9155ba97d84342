// Package store holds the particle collections shared by the motion and
// render systems.
//
// A ParticleStore is copy-on-append: every write publishes a brand new
// slice through an atomic pointer, so readers iterate an immutable
// snapshot without taking a lock. Writers serialize among themselves only.
package store

import (
	"sync"
	"sync/atomic"

	"github.com/decker502/skyfall/pkg/components"
)

// ParticleStore is an append-only collection of particles of one kind.
type ParticleStore struct {
	kind components.ParticleKind

	writeMu  sync.Mutex
	snapshot atomic.Pointer[[]*components.SkyParticle]
}

// NewParticleStore creates an empty store for kind.
func NewParticleStore(kind components.ParticleKind) *ParticleStore {
	s := &ParticleStore{kind: kind}
	empty := make([]*components.SkyParticle, 0)
	s.snapshot.Store(&empty)
	return s
}

// Kind returns the particle kind this store holds.
func (s *ParticleStore) Kind() components.ParticleKind {
	return s.kind
}

// Append publishes p. It is visible to every Snapshot taken after Append returns.
func (s *ParticleStore) Append(p *components.SkyParticle) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	old := *s.snapshot.Load()
	next := make([]*components.SkyParticle, len(old), len(old)+1)
	copy(next, old)
	next = append(next, p)
	s.snapshot.Store(&next)
}

// Replace swaps the particle at index i for p. It returns false when i is
// out of range. Used by the recycle exit policy; the store never shrinks.
func (s *ParticleStore) Replace(i int, p *components.SkyParticle) bool {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	old := *s.snapshot.Load()
	if i < 0 || i >= len(old) {
		return false
	}
	next := make([]*components.SkyParticle, len(old))
	copy(next, old)
	next[i] = p
	s.snapshot.Store(&next)
	return true
}

// Snapshot returns the current particles. The returned slice must not be
// modified; it stays valid and unchanged regardless of later appends.
func (s *ParticleStore) Snapshot() []*components.SkyParticle {
	return *s.snapshot.Load()
}

// Len returns the number of particles in the current snapshot.
func (s *ParticleStore) Len() int {
	return len(*s.snapshot.Load())
}
