package systems

// Scheduler 下一帧回调调度器
// 帧循环不直接依赖显示刷新，便于在测试中逐帧驱动
type Scheduler interface {
	RequestNextFrame(callback func())
}

// FrameQueue 最简单的调度器：请求的回调在下一次 RunPending 时执行
//
// Ebitengine 的每个 Update tick 调用一次 RunPending；测试中手动调用即可单步执行。
type FrameQueue struct {
	pending []func()
}

// RequestNextFrame 登记一个在下一帧执行的回调
func (q *FrameQueue) RequestNextFrame(callback func()) {
	q.pending = append(q.pending, callback)
}

// RunPending 执行本帧之前登记的所有回调
// 回调内部再次登记的回调留到下一帧
//
// 返回:
//   - int: 执行的回调数量
func (q *FrameQueue) RunPending() int {
	callbacks := q.pending
	q.pending = nil
	for _, cb := range callbacks {
		cb()
	}
	return len(callbacks)
}

// Len 返回等待执行的回调数量
func (q *FrameQueue) Len() int {
	return len(q.pending)
}
