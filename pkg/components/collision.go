package components

import "github.com/go-gl/mathgl/mgl64"

// AABB 轴对齐包围盒
// 作为物体实际形状的廉价替身，用于重叠检测（小球与平台）
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewAABBFromCenter 根据中心点和半尺寸构造包围盒
func NewAABBFromCenter(center, halfExtents mgl64.Vec3) AABB {
	return AABB{
		Min: center.Sub(halfExtents),
		Max: center.Add(halfExtents),
	}
}

// SetFromCenter 原地重算包围盒，避免每帧分配
func (b *AABB) SetFromCenter(center, halfExtents mgl64.Vec3) {
	b.Min = center.Sub(halfExtents)
	b.Max = center.Add(halfExtents)
}

// Intersects 检查两个包围盒是否在三个轴上都重叠
// 边界接触视为相交
func (b AABB) Intersects(other AABB) bool {
	return b.Max.X() >= other.Min.X() && b.Min.X() <= other.Max.X() &&
		b.Max.Y() >= other.Min.Y() && b.Min.Y() <= other.Max.Y() &&
		b.Max.Z() >= other.Min.Z() && b.Min.Z() <= other.Max.Z()
}
