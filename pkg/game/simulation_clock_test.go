package game

import (
	"testing"
	"time"
)

// tickRecorder collects the ticks delivered by a clock.
type tickRecorder struct {
	playTimes []time.Duration
	deltas    []time.Duration
}

func (r *tickRecorder) listen(playTime, delta time.Duration) {
	r.playTimes = append(r.playTimes, playTime)
	r.deltas = append(r.deltas, delta)
}

func (r *tickRecorder) lastDelta(t *testing.T) time.Duration {
	t.Helper()
	if len(r.deltas) == 0 {
		t.Fatal("no tick delivered")
	}
	return r.deltas[len(r.deltas)-1]
}

func newTestClock() (*SimulationClock, *ManualTimeSource) {
	ts := NewManualTimeSource(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return NewSimulationClock(ts), ts
}

func TestClockStateTransitions(t *testing.T) {
	clock, _ := newTestClock()
	rec := &tickRecorder{}

	if clock.State() != ClockDetached {
		t.Fatalf("new clock state = %v, want detached", clock.State())
	}
	if clock.Pause() || clock.Resume() {
		t.Error("Pause/Resume must be no-ops while detached")
	}

	if !clock.Attach(rec.listen) {
		t.Fatal("Attach on a detached clock should succeed")
	}
	if clock.Attach(rec.listen) {
		t.Error("second Attach should be ignored")
	}
	if clock.Resume() {
		t.Error("Resume while running should be a no-op")
	}

	if !clock.Pause() || clock.State() != ClockPaused {
		t.Fatalf("Pause should move to paused, state = %v", clock.State())
	}
	if clock.Pause() {
		t.Error("Pause while paused should be a no-op")
	}
	if !clock.Resume() || clock.State() != ClockRunning {
		t.Fatalf("Resume should move to running, state = %v", clock.State())
	}

	clock.Detach()
	if clock.State() != ClockDetached {
		t.Errorf("state after Detach = %v", clock.State())
	}
}

func TestClockStateString(t *testing.T) {
	tests := map[ClockState]string{
		ClockDetached:  "detached",
		ClockRunning:   "running",
		ClockPaused:    "paused",
		ClockState(42): "unknown",
	}
	for state, want := range tests {
		if got := state.String(); got != want {
			t.Errorf("ClockState(%d).String() = %q, want %q", int(state), got, want)
		}
	}
}

func TestClockFrameDeltas(t *testing.T) {
	clock, ts := newTestClock()
	rec := &tickRecorder{}
	clock.Attach(rec.listen)

	ts.Advance(16 * time.Millisecond)
	clock.Frame()
	ts.Advance(17 * time.Millisecond)
	clock.Frame()
	clock.Frame() // no time passed

	wantDeltas := []time.Duration{16 * time.Millisecond, 17 * time.Millisecond, 0}
	wantPlay := []time.Duration{16 * time.Millisecond, 33 * time.Millisecond, 33 * time.Millisecond}
	if len(rec.deltas) != len(wantDeltas) {
		t.Fatalf("got %d ticks, want %d", len(rec.deltas), len(wantDeltas))
	}
	for i := range wantDeltas {
		if rec.deltas[i] != wantDeltas[i] || rec.playTimes[i] != wantPlay[i] {
			t.Errorf("tick %d = (%v, %v), want (%v, %v)", i, rec.playTimes[i], rec.deltas[i], wantPlay[i], wantDeltas[i])
		}
	}
}

// TestClockResumeAfterLongPause verifies the paused interval never shows up
// in a delta.
func TestClockResumeAfterLongPause(t *testing.T) {
	clock, ts := newTestClock()
	rec := &tickRecorder{}
	clock.Attach(rec.listen)

	ts.Advance(16 * time.Millisecond)
	clock.Frame()
	ts.Advance(10 * time.Millisecond)
	clock.Pause()

	ts.Advance(10 * time.Second)
	clock.Frame()
	if len(rec.deltas) != 1 {
		t.Fatalf("paused clock delivered a tick")
	}
	if got := clock.PlayTime(); got != 26*time.Millisecond {
		t.Errorf("PlayTime while paused = %v, want 26ms", got)
	}

	clock.Resume()
	ts.Advance(16 * time.Millisecond)
	clock.Frame()

	// 10ms before the pause plus 16ms after the resume
	if got := rec.lastDelta(t); got != 26*time.Millisecond {
		t.Errorf("first delta after resume = %v, want 26ms", got)
	}
	if got := clock.PlayTime(); got != 42*time.Millisecond {
		t.Errorf("PlayTime after resume = %v, want 42ms", got)
	}
}

func TestClockRedundantCallsKeepTiming(t *testing.T) {
	clock, ts := newTestClock()
	rec := &tickRecorder{}
	clock.Attach(rec.listen)

	ts.Advance(20 * time.Millisecond)
	clock.Resume() // running: no-op
	clock.Frame()

	clock.Pause()
	ts.Advance(time.Second)
	clock.Pause() // paused: no-op
	clock.Resume()
	ts.Advance(20 * time.Millisecond)
	clock.Frame()

	for i, d := range rec.deltas {
		if d != 20*time.Millisecond {
			t.Errorf("tick %d delta = %v, want 20ms", i, d)
		}
	}
}

func TestClockDetachStopsTicks(t *testing.T) {
	clock, ts := newTestClock()
	rec := &tickRecorder{}
	clock.Attach(rec.listen)

	clock.Detach()
	ts.Advance(time.Second)
	clock.Frame()

	if len(rec.deltas) != 0 {
		t.Errorf("detached clock delivered %d ticks", len(rec.deltas))
	}
	if clock.PlayTime() != 0 {
		t.Errorf("PlayTime after detach = %v, want 0", clock.PlayTime())
	}

	// Reattach starts again from zero
	clock.Attach(rec.listen)
	ts.Advance(5 * time.Millisecond)
	clock.Frame()
	if got := rec.lastDelta(t); got != 5*time.Millisecond {
		t.Errorf("first delta after reattach = %v, want 5ms", got)
	}
}

// TestClockListenerMayCallBack verifies the listener runs without the lock held.
func TestClockListenerMayCallBack(t *testing.T) {
	clock, ts := newTestClock()
	var seen ClockState
	clock.Attach(func(time.Duration, time.Duration) {
		seen = clock.State()
		clock.Pause()
	})

	ts.Advance(time.Millisecond)
	clock.Frame()

	if seen != ClockRunning {
		t.Errorf("state seen by listener = %v, want running", seen)
	}
	if clock.State() != ClockPaused {
		t.Errorf("Pause from listener not applied, state = %v", clock.State())
	}
}
