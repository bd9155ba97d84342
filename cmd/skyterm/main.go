// Package main runs the sky animation in a terminal.
//
// Usage:
//
//	go run ./cmd/skyterm [flags]
//
// Flags:
//
//	--config <path>   Sky YAML config (default: built-in defaults)
//	--suns <n>        Suns to spawn at start
//	--moons <n>       Moons to spawn at start
//	--verbose         Log to stderr (the screen is redrawn over it)
//
// Controls:
//
//	s     - add a sun
//	m     - add a moon
//	p     - pause / resume
//	q/Esc - quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/skyfall/internal/term"
	"github.com/decker502/skyfall/pkg/app"
	"github.com/decker502/skyfall/pkg/game"
)

var (
	configFlag  = flag.String("config", "", "Path to a sky YAML config")
	sunsFlag    = flag.Int("suns", 3, "Suns to spawn at start")
	moonsFlag   = flag.Int("moons", 3, "Moons to spawn at start")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
)

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "skyterm: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	sky, err := app.LoadConfig(*configFlag)
	if err != nil {
		return err
	}

	// Pixel sizes in the terminal are cell-based, so the images only
	// provide the base half-size
	controller, _, err := app.NewController(sky, nil)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	surface := term.NewSurface(screen, sky.Terminal.CellWidth, sky.Terminal.CellHeight, nil)
	controller.SetSize(surface.PixelSize())

	redraw := make(chan struct{}, 1)
	requestRedraw := func() {
		select {
		case redraw <- struct{}{}:
		default:
		}
	}
	controller.OnInvalidate(requestRedraw)
	controller.OnAttach()
	defer controller.OnDetach()

	for i := 0; i < *sunsFlag; i++ {
		controller.AddSun()
	}
	for i := 0; i < *moonsFlag; i++ {
		controller.AddMoon()
	}

	quit := make(chan struct{})
	go pollInput(screen, controller, surface, requestRedraw, quit)

	ticker := time.NewTicker(time.Second / time.Duration(sky.Terminal.FPS))
	defer ticker.Stop()

	for {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			controller.Frame()
		case <-redraw:
			draw(screen, controller, surface)
		}
	}
}

func draw(screen tcell.Screen, controller *game.AnimationController, surface *term.Surface) {
	screen.Clear()
	controller.Draw(surface)

	st := controller.Stats()
	status := fmt.Sprintf(" suns %d  moons %d  drawn %d  %s %.1fs  [s]un [m]oon [p]ause [q]uit ",
		st.Suns, st.Moons, st.Drawn, st.State, st.PlayTime.Seconds())
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		screen.SetContent(i, 0, r, nil, style)
	}
	screen.Show()
}

// pollInput handles keys and resizes. Paused animations produce no ticks,
// so state changes request a redraw themselves.
func pollInput(screen tcell.Screen, controller *game.AnimationController, surface *term.Surface, requestRedraw func(), quit chan<- struct{}) {
	defer close(quit)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			controller.SetSize(surface.PixelSize())
			requestRedraw()
			log.Printf("[skyterm] resized to %v", ev)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			switch ev.Rune() {
			case 's':
				controller.AddSun()
			case 'm':
				controller.AddMoon()
			case 'p':
				controller.TogglePause()
				requestRedraw()
			case 'q':
				return
			}
		}
	}
}
