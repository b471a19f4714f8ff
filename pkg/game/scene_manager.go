package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 根据场景名创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
//
// 加载请求在下一次 Update 开始时才生效，
// 所以事件回调中可以安全地请求切换场景。
type SceneManager struct {
	currentScene  Scene
	currentName   string
	sceneFactory  SceneFactory
	pendingName   string
	hasPending    bool
	quitRequested bool
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use LoadScene or SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene is unloaded if it implements Unloadable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if u, ok := sm.currentScene.(Unloadable); ok && sm.currentScene != scene {
		u.Unload()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentSceneName 返回当前场景名
func (sm *SceneManager) CurrentSceneName() string {
	return sm.currentName
}

// LoadSceneNow 立即加载指定场景
// 启动时使用，返回创建失败的错误
func (sm *SceneManager) LoadSceneNow(name string) error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}
	scene, err := sm.sceneFactory(name)
	if err != nil {
		return fmt.Errorf("create scene %s: %w", name, err)
	}
	sm.SwitchTo(scene)
	sm.currentName = name
	log.Printf("[SceneManager] 成功切换到场景: %s", name)
	return nil
}

// LoadScene 请求加载指定场景（下一帧生效）
func (sm *SceneManager) LoadScene(name string) {
	log.Printf("[SceneManager] 请求加载场景: %s", name)
	sm.pendingName = name
	sm.hasPending = true
}

// ReloadScene 请求重新加载当前场景（下一帧生效）
func (sm *SceneManager) ReloadScene() {
	if sm.currentName == "" {
		log.Printf("[SceneManager] Warning: 没有可重新加载的场景")
		return
	}
	sm.LoadScene(sm.currentName)
}

// QuitGame 请求退出游戏
// App.Update 检测到后返回 ebiten.Termination
func (sm *SceneManager) QuitGame() {
	log.Printf("[SceneManager] 请求退出游戏")
	sm.quitRequested = true
}

// QuitRequested 是否已请求退出
func (sm *SceneManager) QuitRequested() bool {
	return sm.quitRequested
}

// applyPending 执行挂起的加载请求
// 创建失败时保留当前场景，只记录错误
func (sm *SceneManager) applyPending() {
	if !sm.hasPending {
		return
	}
	name := sm.pendingName
	sm.hasPending = false
	sm.pendingName = ""

	if err := sm.LoadSceneNow(name); err != nil {
		log.Printf("[SceneManager] 错误: %v", err)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	sm.applyPending()
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
