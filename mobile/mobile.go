//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 手动构建：
//
//	# Android
//	make prepare-mobile && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.skyfall -o build/android/skyfall.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	make prepare-mobile && ebitenmobile bind -target ios -tags mobile -o build/ios/Skyfall.xcframework -v ./mobile
//
// 宿主通过导出的 AddSun / AddMoon / Pause / Resume 控制动画，
// Activity 的 onPause / onResume 应分别调用 Pause / Resume。
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/skyfall/pkg/app"
	"github.com/decker502/skyfall/pkg/embedded"
)

var skyApp *app.App

func init() {
	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	var err error
	skyApp, err = app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(skyApp)
}

// AddSun 添加一个太阳
func AddSun() { skyApp.Controller().AddSun() }

// AddMoon 添加一个月亮
func AddMoon() { skyApp.Controller().AddMoon() }

// Pause 暂停动画
func Pause() { skyApp.Controller().Pause() }

// Resume 恢复动画，不会因暂停时长产生跳变
func Resume() { skyApp.Controller().Resume() }

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
