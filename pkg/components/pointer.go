package components

// PointerState 指针采样状态（仅存在于内存中）
type PointerState struct {
	Pressed        bool
	LastHorizontal float64
}

// PointerEvent 统一后的指针事件
// 鼠标与触摸在输入边界处被归一化为这一种形状
type PointerEvent struct {
	X     float64
	Valid bool // 事件是否携带有效坐标
}

// PointerAt 构造带坐标的指针事件
func PointerAt(x float64) PointerEvent {
	return PointerEvent{X: x, Valid: true}
}
