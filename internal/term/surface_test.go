package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/systems"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() failed: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDrawStampSingleCell(t *testing.T) {
	screen := newScreen(t, 40, 20)
	s := NewSurface(screen, 8, 16, nil)

	// Size smaller than a cell: only the center cell is drawn
	s.DrawStamp(systems.Stamp{Kind: components.KindMoon, X: 84, Y: 40, Size: 4, Alpha: 255})
	screen.Show()

	mainc, _, style, _ := screen.GetContent(10, 2)
	if mainc != 'C' {
		t.Errorf("expected moon glyph 'C' at (10,2), got %q", mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(220, 226, 255) {
		t.Errorf("expected full-brightness moon color, got %v", fg)
	}

	if c, _, _, _ := screen.GetContent(11, 2); c == 'C' || c == '.' {
		t.Errorf("expected neighbour cell untouched, got %q", c)
	}
}

func TestDrawStampFillsDisc(t *testing.T) {
	screen := newScreen(t, 40, 20)
	s := NewSurface(screen, 8, 16, nil)

	// Size 16 spans two cells horizontally and one vertically
	s.DrawStamp(systems.Stamp{Kind: components.KindSun, X: 84, Y: 40, Size: 16, Alpha: 255})
	screen.Show()

	if c, _, _, _ := screen.GetContent(10, 2); c != '|' {
		t.Errorf("expected spinner '|' at the center, got %q", c)
	}
	for _, pos := range [][2]int{{8, 2}, {12, 2}, {10, 1}, {10, 3}} {
		if c, _, _, _ := screen.GetContent(pos[0], pos[1]); c != 'o' {
			t.Errorf("expected body 'o' at %v, got %q", pos, c)
		}
	}
	if c, _, _, _ := screen.GetContent(12, 3); c == 'o' {
		t.Error("corner (12,3) should lie outside the disc")
	}
}

func TestDrawStampDimsWithAlpha(t *testing.T) {
	screen := newScreen(t, 10, 10)
	s := NewSurface(screen, 8, 16, nil)

	s.DrawStamp(systems.Stamp{Kind: components.KindMoon, X: 4, Y: 8, Size: 1, Alpha: 51})
	screen.Show()

	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	if want := tcell.NewRGBColor(44, 45, 51); fg != want {
		t.Errorf("expected dimmed color %v, got %v", want, fg)
	}
}

func TestDrawStampClipsOffscreen(t *testing.T) {
	screen := newScreen(t, 10, 10)
	s := NewSurface(screen, 8, 16, nil)

	// Must not panic for negative or far away positions
	s.DrawStamp(systems.Stamp{Kind: components.KindSun, X: -30, Y: -30, Size: 40, Alpha: 255})
	s.DrawStamp(systems.Stamp{Kind: components.KindSun, X: 5000, Y: 5000, Size: 40, Alpha: 255})
}

func TestSpinFrame(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '|'},
		{45, '/'},
		{90, '-'},
		{135, '\\'},
		{180, '|'},
		{359, '|'},
		{-45, '\\'},
		{720 + 90, '-'},
	}
	for _, tt := range tests {
		if got := SpinFrame(tt.rotation); got != tt.want {
			t.Errorf("SpinFrame(%v) = %q, want %q", tt.rotation, got, tt.want)
		}
	}
}

func TestPixelSize(t *testing.T) {
	screen := newScreen(t, 40, 20)
	s := NewSurface(screen, 8, 16, nil)

	w, h := s.PixelSize()
	if w != 320 || h != 320 {
		t.Errorf("PixelSize() = %dx%d, want 320x320", w, h)
	}
}
