package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/skyfall/pkg/components"
	"github.com/decker502/skyfall/pkg/game"
	"github.com/decker502/skyfall/pkg/systems"
	"github.com/decker502/skyfall/pkg/utils"
)

// skyBackground 夜空背景色
var skyBackground = color.RGBA{R: 12, G: 18, B: 44, A: 255}

// SkyScene hosts the rising suns and moons in an Ebitengine window.
//
// Controls:
//
//	S       - add a sun
//	M       - add a moon
//	Space   - pause / resume
//	H       - toggle the HUD
//
// A tap or click on the left half adds a sun, on the right half a moon.
type SkyScene struct {
	controller *game.AnimationController
	surface    *ebitenSurface

	showHUD bool

	// autoPaused 记录是否因为窗口失去焦点而自动暂停
	autoPaused bool
	focused    bool
}

// NewSkyScene creates a scene drawing the controller's particles with the
// given images.
func NewSkyScene(controller *game.AnimationController, sky *game.SkyArt) *SkyScene {
	return &SkyScene{
		controller: controller,
		surface: &ebitenSurface{
			images: map[components.ParticleKind]*ebiten.Image{
				components.KindSun:  ebiten.NewImageFromImage(sky.Sun),
				components.KindMoon: ebiten.NewImageFromImage(sky.Moon),
			},
		},
		showHUD: true,
		focused: true,
	}
}

// OnAttach implements game.Attachable.
func (s *SkyScene) OnAttach() {
	s.controller.OnAttach()
}

// OnDetach implements game.Attachable.
func (s *SkyScene) OnDetach() {
	s.controller.OnDetach()
}

// Layout implements game.LayoutAware.
func (s *SkyScene) Layout(width, height int) {
	s.controller.SetSize(width, height)
	log.Printf("[SkyScene] layout %dx%d", width, height)
}

// Update handles input and drives one clock frame.
func (s *SkyScene) Update(deltaTime float64) {
	s.handleInput()
	s.handleFocus(ebiten.IsFocused())
	s.controller.Frame()
}

func (s *SkyScene) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.controller.AddSun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.controller.AddMoon()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.controller.TogglePause()
		s.autoPaused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.showHUD = !s.showHUD
	}

	if pressed, x, _ := utils.IsPointerJustPressed(); pressed {
		w, _ := s.controller.Size()
		if tapKind(x, w) == components.KindMoon {
			s.controller.AddMoon()
		} else {
			s.controller.AddSun()
		}
	}
}

// tapKind maps a tap at x on a surface of the given width to a particle kind.
func tapKind(x, width int) components.ParticleKind {
	if width > 0 && 2*x >= width {
		return components.KindMoon
	}
	return components.KindSun
}

// handleFocus pauses when the window goes to the background and resumes
// when it comes back, unless the user paused by hand.
func (s *SkyScene) handleFocus(focused bool) {
	if focused == s.focused {
		return
	}
	s.focused = focused
	if !focused {
		if !s.controller.Paused() {
			s.controller.Pause()
			s.autoPaused = s.controller.Paused()
		}
		return
	}
	if s.autoPaused {
		s.controller.Resume()
		s.autoPaused = false
	}
}

// Draw renders the sky.
func (s *SkyScene) Draw(screen *ebiten.Image) {
	screen.Fill(skyBackground)

	s.surface.target = screen
	s.controller.Draw(s.surface)
	s.surface.target = nil

	if s.showHUD {
		ebitenutil.DebugPrint(screen, hudText(s.controller.Stats(), utils.IsMobile()))
	}
}

func hudText(st game.Stats, touch bool) string {
	help := "[S]un [M]oon [Space] pause [H]ud"
	if touch {
		help = "tap left: sun  tap right: moon"
	}
	return fmt.Sprintf("suns %d  moons %d  drawn %d\n%s %.1fs  recycled %d\n%s",
		st.Suns, st.Moons, st.Drawn, st.State, st.PlayTime.Seconds(), st.Recycled, help)
}

// ebitenSurface implements systems.Surface on an ebiten.Image.
type ebitenSurface struct {
	target *ebiten.Image
	images map[components.ParticleKind]*ebiten.Image
}

// DrawStamp implements systems.Surface.
func (es *ebitenSurface) DrawStamp(st systems.Stamp) {
	img, ok := es.images[st.Kind]
	if !ok || es.target == nil || st.Size <= 0 {
		return
	}
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	op.GeoM = stampGeoM(st, b.Dx(), b.Dy())
	op.ColorScale.ScaleAlpha(float32(st.Alpha) / 255)
	op.Filter = ebiten.FilterLinear
	es.target.DrawImage(img, op)
}

// stampGeoM stretches a w x h image into [-Size,Size]^2, rotates it by
// Rotation degrees and moves its center to (X, Y).
func stampGeoM(st systems.Stamp, w, h int) ebiten.GeoM {
	size := float64(st.Size)
	var m ebiten.GeoM
	m.Scale(2*size/float64(w), 2*size/float64(h))
	m.Translate(-size, -size)
	m.Rotate(st.Rotation * math.Pi / 180)
	m.Translate(st.X, st.Y)
	return m
}
