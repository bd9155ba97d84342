package game

import (
	"log"
	"sync"
	"time"
)

// ClockState is the lifecycle state of a SimulationClock.
type ClockState int

const (
	ClockDetached ClockState = iota // 未绑定宿主
	ClockRunning                    // 正在产生 tick
	ClockPaused                     // 已暂停，播放时间冻结
)

func (s ClockState) String() string {
	switch s {
	case ClockDetached:
		return "detached"
	case ClockRunning:
		return "running"
	case ClockPaused:
		return "paused"
	default:
		return "unknown"
	}
}

// TickListener receives the total play time and the delta since the
// previous tick (or since attach, for the first tick).
type TickListener func(playTime, delta time.Duration)

// SimulationClock turns host frames into play-time deltas.
//
// State machine: Detached -> Running <-> Paused -> ... -> Detached.
// Play time excludes every paused interval: Resume re-bases the start
// instant so the first delta after a long pause is a normal frame delta.
//
// The listener is always invoked outside the clock's lock, so it may call
// back into the clock.
type SimulationClock struct {
	mu         sync.Mutex
	timeSource TimeSource
	state      ClockState
	listener   TickListener

	startTime       time.Time     // play time 0, shifted on resume
	lastPlayTime    time.Duration // play time delivered by the previous tick
	currentPlayTime time.Duration // play time recorded at pause
}

// NewSimulationClock creates a detached clock reading time from ts.
func NewSimulationClock(ts TimeSource) *SimulationClock {
	if ts == nil {
		ts = SystemTimeSource{}
	}
	return &SimulationClock{timeSource: ts}
}

// State returns the current state.
func (c *SimulationClock) State() ClockState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Attach starts the clock. Only effective when Detached.
func (c *SimulationClock) Attach(listener TickListener) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ClockDetached {
		return false
	}
	c.state = ClockRunning
	c.listener = listener
	c.startTime = c.timeSource.Now()
	c.lastPlayTime = 0
	c.currentPlayTime = 0
	log.Printf("[SimulationClock] attached")
	return true
}

// Detach stops the clock and drops the listener.
func (c *SimulationClock) Detach() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == ClockDetached {
		return
	}
	c.state = ClockDetached
	c.listener = nil
	log.Printf("[SimulationClock] detached")
}

// Pause freezes play time. Only effective when Running.
func (c *SimulationClock) Pause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ClockRunning {
		return false
	}
	c.currentPlayTime = c.timeSource.Now().Sub(c.startTime)
	c.state = ClockPaused
	log.Printf("[SimulationClock] paused at %v", c.currentPlayTime)
	return true
}

// Resume continues from the play time recorded at Pause.
// Only effective when Paused.
func (c *SimulationClock) Resume() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != ClockPaused {
		return false
	}
	c.startTime = c.timeSource.Now().Add(-c.currentPlayTime)
	c.state = ClockRunning
	log.Printf("[SimulationClock] resumed at %v", c.currentPlayTime)
	return true
}

// PlayTime returns the total play time so far.
func (c *SimulationClock) PlayTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case ClockRunning:
		return c.timeSource.Now().Sub(c.startTime)
	case ClockPaused:
		return c.currentPlayTime
	default:
		return 0
	}
}

// Frame is called by the host once per frame. When Running it delivers
// one tick to the listener; otherwise it does nothing.
func (c *SimulationClock) Frame() {
	c.mu.Lock()
	if c.state != ClockRunning || c.listener == nil {
		c.mu.Unlock()
		return
	}
	playTime := c.timeSource.Now().Sub(c.startTime)
	delta := playTime - c.lastPlayTime
	if delta < 0 {
		delta = 0
	}
	c.lastPlayTime = playTime
	listener := c.listener
	c.mu.Unlock()

	listener(playTime, delta)
}
