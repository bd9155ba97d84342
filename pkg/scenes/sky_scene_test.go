package scenes

import (
	"math"
	"testing"
	"time"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/game"
	"github.com/decker502/skyfall/pkg/systems"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStampGeoM(t *testing.T) {
	tests := []struct {
		name         string
		stamp        systems.Stamp
		srcX, srcY   float64
		wantX, wantY float64
	}{
		{
			name:  "top-left corner without rotation",
			stamp: systems.Stamp{X: 100, Y: 200, Size: 25},
			srcX:  0,
			srcY:  0,
			wantX: 75,
			wantY: 175,
		},
		{
			name:  "center stays on the particle",
			stamp: systems.Stamp{X: 100, Y: 200, Size: 25, Rotation: 123},
			srcX:  25,
			srcY:  25,
			wantX: 100,
			wantY: 200,
		},
		{
			name:  "quarter turn moves the right edge down",
			stamp: systems.Stamp{X: 0, Y: 0, Size: 10, Rotation: 90},
			srcX:  50,
			srcY:  25,
			wantX: 0,
			wantY: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := stampGeoM(tt.stamp, 50, 50)
			x, y := m.Apply(tt.srcX, tt.srcY)
			if !near(x, tt.wantX) || !near(y, tt.wantY) {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.srcX, tt.srcY, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func newTestController(ts game.TimeSource) *game.AnimationController {
	return game.NewAnimationController(game.ControllerConfig{
		Seed:         1337,
		BaseSpeed:    200,
		SunHalfSize:  48,
		MoonHalfSize: 48,
		TimeSource:   ts,
	})
}

func TestHandleFocusAutoPause(t *testing.T) {
	ts := game.NewManualTimeSource(time.Unix(0, 0))
	ctrl := newTestController(ts)
	ctrl.SetSize(480, 800)
	ctrl.OnAttach()

	s := &SkyScene{controller: ctrl, focused: true}

	s.handleFocus(false)
	if !ctrl.Paused() {
		t.Fatal("expected pause on focus loss")
	}

	s.handleFocus(true)
	if ctrl.Paused() {
		t.Error("expected resume on focus regain")
	}
}

func TestHandleFocusKeepsManualPause(t *testing.T) {
	ts := game.NewManualTimeSource(time.Unix(0, 0))
	ctrl := newTestController(ts)
	ctrl.SetSize(480, 800)
	ctrl.OnAttach()
	ctrl.Pause()

	s := &SkyScene{controller: ctrl, focused: true}
	s.handleFocus(false)
	s.handleFocus(true)

	if !ctrl.Paused() {
		t.Error("manual pause must survive a focus round trip")
	}
}

func TestHUDText(t *testing.T) {
	st := game.Stats{Suns: 3, Moons: 2, Drawn: 4, State: game.ClockRunning, PlayTime: 1500 * time.Millisecond}

	want := "suns 3  moons 2  drawn 4\nrunning 1.5s  recycled 0\n[S]un [M]oon [Space] pause [H]ud"
	if text := hudText(st, false); text != want {
		t.Errorf("hudText() = %q, want %q", text, want)
	}

	want = "suns 3  moons 2  drawn 4\nrunning 1.5s  recycled 0\ntap left: sun  tap right: moon"
	if text := hudText(st, true); text != want {
		t.Errorf("hudText(touch) = %q, want %q", text, want)
	}
}

func TestTapKind(t *testing.T) {
	tests := []struct {
		x, width int
		want     components.ParticleKind
	}{
		{0, 480, components.KindSun},
		{239, 480, components.KindSun},
		{240, 480, components.KindMoon},
		{479, 480, components.KindMoon},
		{100, 0, components.KindSun},
	}
	for _, tt := range tests {
		if got := tapKind(tt.x, tt.width); got != tt.want {
			t.Errorf("tapKind(%d, %d) = %v, want %v", tt.x, tt.width, got, tt.want)
		}
	}
}
