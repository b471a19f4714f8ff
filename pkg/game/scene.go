package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the wardrobe or the barbershop).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Unloadable 是一个可选接口，场景被替换时调用
//
// 实现此接口的场景应在 Unload 中取消订阅并恢复光标，
// 避免旧场景的回调在新场景中继续触发
type Unloadable interface {
	Unload()
}
