package systems

import (
	"log"

	"github.com/decker502/hopball/pkg/game"
)

// CollisionSystem 碰撞与计分状态机（Airborne / OnLead / Failed）
//
// 只检测小球与领头平台：按游戏流程小球不可能先碰到其他平台。
type CollisionSystem struct {
	physics       *PhysicsSystem
	failThreshold float64
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - physics: 用于触发弹起和重算小球包围盒
//   - failThreshold: 小球高度低于该值即失败
func NewCollisionSystem(physics *PhysicsSystem, failThreshold float64) *CollisionSystem {
	return &CollisionSystem{
		physics:       physics,
		failThreshold: failThreshold,
	}
}

// Update 重算包围盒并处理与领头平台的接触
//
// 接触时弹起；若此刻指针处于按下状态，则把目标深度设为下一个平台、
// 推进轨道并加一分。"接触 + 按下"是唯一的得分条件。
//
// 返回:
//   - bool: 本帧是否发生了接触
func (cs *CollisionSystem) Update(s *game.Session) bool {
	if !s.Active() {
		return false
	}

	cs.physics.RefreshBounds(s)
	s.Track.RefreshBounds()

	if !s.Ball.Bounds.Intersects(s.Track.Lead().Bounds) {
		s.State = game.StateAirborne
		return false
	}

	s.State = game.StateOnLead
	cs.physics.Bounce(s)
	s.Listener().Bounced()

	if s.Pointer.Pressed {
		s.TargetDepth = s.Track.At(1).Depth
		s.Track.Advance()
		s.AddPoint()
		log.Printf("[CollisionSystem] Hop to depth %.1f, score=%d", s.TargetDepth, s.Score())
	}
	return true
}

// CheckFailure 小球掉到阈值以下时终止会话
//
// 返回:
//   - bool: 本次调用是否触发了失败
func (cs *CollisionSystem) CheckFailure(s *game.Session) bool {
	if !s.Active() {
		return false
	}
	if s.Ball.Position.Y() < cs.failThreshold {
		s.Fail()
		return true
	}
	return false
}
