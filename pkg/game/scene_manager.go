package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	width        int
	height       int
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is detached and the new one attached; if a layout is
// already known it is forwarded before attach.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if old, ok := sm.currentScene.(Attachable); ok {
		old.OnDetach()
	}
	sm.currentScene = scene
	if scene == nil {
		return
	}
	if la, ok := scene.(LayoutAware); ok && sm.width > 0 && sm.height > 0 {
		la.Layout(sm.width, sm.height)
	}
	if a, ok := scene.(Attachable); ok {
		a.OnAttach()
	}
	log.Printf("[SceneManager] switched to %T", scene)
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Layout records the screen size and forwards changes to the current scene.
func (sm *SceneManager) Layout(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if la, ok := sm.currentScene.(LayoutAware); ok {
		la.Layout(width, height)
	}
}

// Close detaches the current scene.
func (sm *SceneManager) Close() {
	sm.SwitchTo(nil)
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
