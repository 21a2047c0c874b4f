package systems

import (
	"github.com/decker502/hopball/pkg/config"
	"github.com/decker502/hopball/pkg/game"
)

// PhysicsSystem 小球的运动学积分
//
// 使用每帧一次、不分步的显式欧拉积分。模拟只用于表现，不追求物理准确。
type PhysicsSystem struct {
	gravity        float64
	bounceVelocity float64
	forwardStep    float64
}

// NewPhysicsSystem 创建物理系统
func NewPhysicsSystem(cfg *config.GameplayConfig) *PhysicsSystem {
	return &PhysicsSystem{
		gravity:        cfg.Gravity,
		bounceVelocity: cfg.BounceVelocity,
		forwardStep:    cfg.ForwardStep,
	}
}

// Integrate 推进一帧：速度加上重力，再用新速度更新高度
// 会话失败后不做任何事
func (ps *PhysicsSystem) Integrate(s *game.Session) {
	if !s.Active() {
		return
	}
	ball := s.Ball
	ball.Velocity += ps.gravity
	ball.Position[1] += ball.Velocity
}

// AdvanceForward 小球尚未到达目标深度时，小球与相机一起前进一步
//
// 最后一步可能越过目标一帧的距离，不做修正。
func (ps *PhysicsSystem) AdvanceForward(s *game.Session) {
	if !s.Active() {
		return
	}
	if s.Ball.Position.Z() > s.TargetDepth {
		s.Ball.Position[2] -= ps.forwardStep
		s.CameraDepth -= ps.forwardStep
	}
}

// Bounce 把垂直速度设为固定的正值，模拟弹起
func (ps *PhysicsSystem) Bounce(s *game.Session) {
	s.Ball.Velocity = ps.bounceVelocity
}

// RefreshBounds 重算小球包围盒
func (ps *PhysicsSystem) RefreshBounds(s *game.Session) {
	s.Ball.RefreshBounds()
}
