package game

import "github.com/decker502/hopball/pkg/components"

// Listener 接收会话内发生的事件
//
// 渲染、分数显示、音效和重启逻辑都通过它与核心解耦。
// 所有回调都在帧循环线程上同步调用，实现方不得阻塞。
type Listener interface {
	// PlatformSpawned 新平台加入轨道（渲染端在此分配可视句柄）
	PlatformSpawned(p *components.PlatformComponent)
	// PlatformRetired 平台滑出轨道窗口
	PlatformRetired(p *components.PlatformComponent)
	// Bounced 小球在领头平台上弹起
	Bounced()
	// ScoreChanged 分数变化
	ScoreChanged(score int)
	// SessionFailed 会话进入终止状态，参数为最终分数
	SessionFailed(finalScore int)
}

// NopListener 忽略所有事件
type NopListener struct{}

func (NopListener) PlatformSpawned(*components.PlatformComponent) {}
func (NopListener) PlatformRetired(*components.PlatformComponent) {}
func (NopListener) Bounced()                                      {}
func (NopListener) ScoreChanged(int)                              {}
func (NopListener) SessionFailed(int)                             {}

// MultiListener 按顺序把事件分发给多个监听者
type MultiListener []Listener

func (m MultiListener) PlatformSpawned(p *components.PlatformComponent) {
	for _, l := range m {
		l.PlatformSpawned(p)
	}
}

func (m MultiListener) PlatformRetired(p *components.PlatformComponent) {
	for _, l := range m {
		l.PlatformRetired(p)
	}
}

func (m MultiListener) Bounced() {
	for _, l := range m {
		l.Bounced()
	}
}

func (m MultiListener) ScoreChanged(score int) {
	for _, l := range m {
		l.ScoreChanged(score)
	}
}

func (m MultiListener) SessionFailed(finalScore int) {
	for _, l := range m {
		l.SessionFailed(finalScore)
	}
}
