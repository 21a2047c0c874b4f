package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景（目前只有跑酷场景）
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 渲染到屏幕
	Draw(screen *ebiten.Image)
}

// Saveable 场景在窗口关闭时保存状态（可选接口）
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败，程序仍正常退出
	SaveOnExit() bool
}
