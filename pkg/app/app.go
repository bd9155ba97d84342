// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/skyfall/pkg/config"
	"github.com/decker502/skyfall/pkg/embedded"
	"github.com/decker502/skyfall/pkg/game"
	"github.com/decker502/skyfall/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 指定 YAML 配置文件，为空则使用内嵌默认配置
	ConfigPath string
	// Suns / Moons 启动时额外生成的数量（叠加在配置文件的 initialSuns/initialMoons 上）
	Suns  int
	Moons int
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	controller   *game.AnimationController
	sky          *config.SkyConfig

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 使用内嵌默认配置时，调用此函数前必须先调用 embedded.Init()。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sky, err := LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	controller, art, err := NewController(sky, nil)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.Layout(sky.Window.Width, sky.Window.Height)
	sceneManager.SwitchTo(scenes.NewSkyScene(controller, art))

	for i := 0; i < sky.Animation.InitialSuns+cfg.Suns; i++ {
		controller.AddSun()
	}
	for i := 0; i < sky.Animation.InitialMoons+cfg.Moons; i++ {
		controller.AddMoon()
	}

	log.Printf("[App] ready: %dx%d seed=%d exitPolicy=%s alphaPolicy=%s",
		sky.Window.Width, sky.Window.Height, sky.Animation.Seed, sky.Animation.ExitPolicy, sky.Animation.AlphaPolicy)

	return &App{
		sceneManager: sceneManager,
		controller:   controller,
		sky:          sky,
	}, nil
}

// LoadConfig 加载配置：path 为空时使用内嵌默认配置
// 没有内嵌配置的宿主（例如终端版）使用 config.DefaultSkyConfig()
func LoadConfig(path string) (*config.SkyConfig, error) {
	if path == "" {
		if !embedded.Exists(config.DefaultSkyConfigPath) {
			log.Printf("[Config] 未找到内嵌配置，使用内置默认值")
			return config.DefaultSkyConfig(), nil
		}
		sky, err := config.LoadDefaultSkyConfig()
		if err != nil {
			return nil, fmt.Errorf("默认配置加载失败: %w", err)
		}
		return sky, nil
	}
	sky, err := config.LoadSkyConfig(path)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	log.Printf("[Config] 加载配置文件: %s", path)
	return sky, nil
}

// NewController 加载图片并创建动画控制器
// ts 为 nil 时使用系统时间
func NewController(sky *config.SkyConfig, ts game.TimeSource) (*game.AnimationController, *game.SkyArt, error) {
	art, err := game.NewResourceManager().LoadSkyArt(sky.Assets)
	if err != nil {
		return nil, nil, fmt.Errorf("图片资源加载失败: %w", err)
	}
	cc := game.NewControllerConfig(sky, art)
	cc.TimeSource = ts
	return game.NewAnimationController(cc), art, nil
}

// Controller 返回动画控制器，供移动端绑定调用
func (a *App) Controller() *game.AnimationController {
	return a.controller
}

// WindowConfig 返回窗口配置
func (a *App) WindowConfig() config.WindowConfig {
	return a.sky.Window
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.sky.Window.Width, a.sky.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.sky.Window.Width, a.sky.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.sceneManager.Close()
		return ebiten.Termination
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.sceneManager.Layout(a.sky.Window.Width, a.sky.Window.Height)
	return a.sky.Window.Width, a.sky.Window.Height
}
