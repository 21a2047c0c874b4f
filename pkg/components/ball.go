package components

import "github.com/go-gl/mathgl/mgl64"

// BallComponent 玩家控制的小球
//
// 深度（Z）只会减小（向前移动）；高度在重力下自由下落，被弹起事件重置速度。
// 小球本身是球体，但碰撞使用立方体包围盒。
type BallComponent struct {
	Position mgl64.Vec3 // 世界坐标
	Velocity float64    // 垂直速度（每帧）
	Radius   float64
	Bounds   AABB
}

// NewBall 在指定位置创建小球并计算初始包围盒
func NewBall(position mgl64.Vec3, radius float64) *BallComponent {
	b := &BallComponent{
		Position: position,
		Radius:   radius,
	}
	b.RefreshBounds()
	return b
}

// RefreshBounds 根据当前位置重算包围盒
func (b *BallComponent) RefreshBounds() {
	b.Bounds.SetFromCenter(b.Position, mgl64.Vec3{b.Radius, b.Radius, b.Radius})
}
