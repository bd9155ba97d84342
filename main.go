package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/skyfall/pkg/app"
	"github.com/decker502/skyfall/pkg/embedded"
)

var (
	configFlag  = flag.String("config", "", "Path to a sky YAML config (default: embedded data/sky.yaml)")
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging (default off)")
	sunsFlag    = flag.Int("suns", 0, "Extra suns to spawn at start")
	moonsFlag   = flag.Int("moons", 0, "Extra moons to spawn at start")
)

func main() {
	flag.Parse()

	// 初始化内嵌资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	skyApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		ConfigPath: *configFlag,
		Suns:       *sunsFlag,
		Moons:      *moonsFlag,
	})
	if err != nil {
		// 非 verbose 模式下日志被丢弃，致命错误必须输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	win := skyApp.WindowConfig()
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Start the loop; Update and Draw run until the window closes
	if err := ebiten.RunGame(skyApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
