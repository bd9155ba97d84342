package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Attachable 是一个可选接口，场景在成为当前场景时收到 OnAttach，
// 被替换时收到 OnDetach（对应宿主表面的绑定/解绑）
type Attachable interface {
	OnAttach()
	OnDetach()
}

// LayoutAware 是一个可选接口，场景在屏幕尺寸确定或改变时收到通知
type LayoutAware interface {
	Layout(width, height int)
}
