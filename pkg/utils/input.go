// Package utils 提供平台相关的工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSample 某一帧的原始指针采样
// 鼠标与触摸共用这一形状，触摸优先
type PointerSample struct {
	// Down 是否有指针按下（鼠标左键或任意触摸）
	Down bool
	// X, Y 指针屏幕坐标，仅在 HasPosition 为 true 时有效
	X, Y int
	// HasPosition 本帧是否取得了坐标
	HasPosition bool
	// Touch 是否来自触摸输入
	Touch bool
	// TouchID 跟踪中的触摸ID（鼠标为 -1）
	TouchID ebiten.TouchID
}

// SamplePointer 采样当前帧的指针状态
//
// 参数：
//   - tracked: 上一帧跟踪的触摸ID（无则传 -1）。仍在触摸时沿用该ID，
//     保证多指操作时拖拽不会跳到另一根手指上。
func SamplePointer(tracked ebiten.TouchID) PointerSample {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		id := touchIDs[0]
		for _, t := range touchIDs {
			if t == tracked {
				id = t
				break
			}
		}
		x, y := ebiten.TouchPosition(id)
		return PointerSample{Down: true, X: x, Y: y, HasPosition: true, Touch: true, TouchID: id}
	}

	// 触摸刚释放的那一帧没有坐标可读
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		return PointerSample{Touch: true, TouchID: -1}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Down:        ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:           x,
		Y:           y,
		HasPosition: true,
		TouchID:     -1,
	}
}
