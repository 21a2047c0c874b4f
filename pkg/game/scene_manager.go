package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数，用于按需重建场景，避免循环依赖
type SceneFactory func() Scene

// SceneManager 管理当前活动场景，同一时刻只有一个场景接收 Update/Draw
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager 创建场景管理器，初始无活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 通过工厂函数重建场景并切换过去
//
// 返回：
//   - bool: 是否成功切换
func (sm *SceneManager) Reload() bool {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return false
	}

	newScene := sm.sceneFactory()
	if newScene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景")
		return false
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 场景已重建")
	return true
}

// SaveOnExit 若当前场景实现了 Saveable，则调用其保存
func (sm *SceneManager) SaveOnExit() bool {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// Update 更新当前场景，没有活动场景时什么也不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 渲染当前场景，没有活动场景时什么也不做
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
