package scenes

import (
	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerAction 一帧采样归一化后的指针动作
type PointerAction int

const (
	PointerIdle PointerAction = iota
	PointerPress
	PointerMove
	PointerRelease
)

func (a PointerAction) String() string {
	switch a {
	case PointerIdle:
		return "idle"
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	}
	return "unknown"
}

// PointerSource 把逐帧的鼠标/触摸采样转换为按下、移动、抬起事件
//
// 鼠标和触摸在这里统一，游戏逻辑只看到 components.PointerEvent。
type PointerSource struct {
	down    bool
	lastX   int
	touchID ebiten.TouchID
}

// NewPointerSource 创建指针源
func NewPointerSource() *PointerSource {
	return &PointerSource{touchID: -1}
}

// TouchID 当前跟踪的触摸ID，没有时为 -1
func (ps *PointerSource) TouchID() ebiten.TouchID {
	return ps.touchID
}

// Next 消费一帧采样，返回本帧产生的动作及事件
// 按住且水平坐标未变化时不产生移动事件
func (ps *PointerSource) Next(sample utils.PointerSample) (PointerAction, components.PointerEvent) {
	switch {
	case sample.Down && !ps.down:
		ps.down = true
		ps.touchID = sample.TouchID
		if sample.HasPosition {
			ps.lastX = sample.X
		}
		return PointerPress, toPointerEvent(sample)

	case sample.Down && ps.down:
		ps.touchID = sample.TouchID
		if sample.HasPosition {
			if sample.X == ps.lastX {
				return PointerIdle, components.PointerEvent{}
			}
			ps.lastX = sample.X
		}
		return PointerMove, toPointerEvent(sample)

	case !sample.Down && ps.down:
		ps.down = false
		ps.touchID = -1
		return PointerRelease, toPointerEvent(sample)
	}
	return PointerIdle, components.PointerEvent{}
}

func toPointerEvent(sample utils.PointerSample) components.PointerEvent {
	if !sample.HasPosition {
		return components.PointerEvent{}
	}
	return components.PointerAt(float64(sample.X))
}
