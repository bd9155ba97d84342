package utils

import (
	"math/rand"
	"sync"
)

// DefaultSeed is the seed used when the configuration does not name one.
const DefaultSeed int64 = 1337

// RandomSource produces uniform floats in [0,1).
type RandomSource interface {
	Float64() float64
}

// SeededRandom is a deterministic RandomSource. The same seed and the same
// sequence of calls always yield the same values.
//
// Safe for concurrent use; draws are serialized so each caller sees a
// contiguous slice of the stream.
type SeededRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSeededRandom creates a stream seeded with seed.
func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns the next value of the stream.
func (r *SeededRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

// ScriptedRandom replays a fixed list of values, wrapping around at the end.
// Used to pin particle parameters in tests and tools.
type ScriptedRandom struct {
	mu     sync.Mutex
	values []float64
	next   int
}

// NewScriptedRandom returns a stream that yields values in order.
// With no values it always yields 0.
func NewScriptedRandom(values ...float64) *ScriptedRandom {
	return &ScriptedRandom{values: values}
}

// Float64 returns the next scripted value.
func (r *ScriptedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// Draws returns how many values have been consumed.
func (r *ScriptedRandom) Draws() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}
