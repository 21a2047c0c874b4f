package components

import (
	"github.com/decker502/hopball/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// PlatformComponent 轨道上的一块平台
//
// LocalX 是平台相对轨道的水平偏移，生成时随机决定；
// 轨道整体拖动时只改变轨道偏移，平台自身不动。
type PlatformComponent struct {
	LocalX float64
	Depth  float64
	Bounds AABB

	// Handle 渲染端为该平台分配的可视句柄，核心逻辑不读取
	Handle ecs.EntityID
}

// WorldPosition 返回平台中心的世界坐标
func (p *PlatformComponent) WorldPosition(trackOffset float64) mgl64.Vec3 {
	return mgl64.Vec3{trackOffset + p.LocalX, 0, p.Depth}
}

// RefreshBounds 根据当前变换重算包围盒
func (p *PlatformComponent) RefreshBounds(trackOffset float64, halfExtents mgl64.Vec3) {
	p.Bounds.SetFromCenter(p.WorldPosition(trackOffset), halfExtents)
}
