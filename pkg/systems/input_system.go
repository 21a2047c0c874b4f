package systems

import (
	"fmt"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/game"
)

// InputError 指针事件没有可用坐标
//
// 合规的输入源不应产生这种事件；调用方记录后忽略该采样即可。
type InputError struct {
	Event string // "press" 或 "move"
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input: %s event carries no pointer coordinate", e.Event)
}

// InputSystem 把指针事件转换为"按下"标志和轨道水平位移
type InputSystem struct {
	session     *game.Session
	sensitivity float64
	onRestart   func()
}

// NewInputSystem 创建输入系统
//
// 参数:
//   - sensitivity: 指针水平位移到轨道位移的换算系数
//   - onRestart: 会话已失败时按下指针触发的重启请求，可为 nil
func NewInputSystem(sensitivity float64, onRestart func()) *InputSystem {
	return &InputSystem{
		sensitivity: sensitivity,
		onRestart:   onRestart,
	}
}

// Bind 绑定当前会话（重启后由循环驱动器重新绑定）
func (is *InputSystem) Bind(s *game.Session) {
	is.session = s
}

// PressStart 指针按下
// 会话已失败时不记录按下状态，而是发出重启请求
func (is *InputSystem) PressStart(ev components.PointerEvent) error {
	if !ev.Valid {
		return &InputError{Event: "press"}
	}
	if is.session == nil {
		return nil
	}

	if !is.session.Active() {
		if is.onRestart != nil {
			is.onRestart()
		}
		return nil
	}

	is.session.Pointer.Pressed = true
	is.session.Pointer.LastHorizontal = ev.X
	return nil
}

// Move 指针移动：按下状态下把水平位移换算后平移整条轨道
func (is *InputSystem) Move(ev components.PointerEvent) error {
	if is.session == nil || !is.session.Pointer.Pressed {
		return nil
	}
	if !ev.Valid {
		return &InputError{Event: "move"}
	}

	delta := ev.X - is.session.Pointer.LastHorizontal
	is.session.Track.Shift(delta * is.sensitivity)
	is.session.Pointer.LastHorizontal = ev.X
	return nil
}

// PressEnd 指针抬起
func (is *InputSystem) PressEnd() {
	if is.session == nil {
		return
	}
	is.session.Pointer.Pressed = false
}

// Pressed 返回当前是否处于按下状态
func (is *InputSystem) Pressed() bool {
	return is.session != nil && is.session.Pointer.Pressed
}
