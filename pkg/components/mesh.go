package components

import "github.com/go-gl/mathgl/mgl64"

// MeshKind 可视网格类型
type MeshKind int

const (
	// MeshBox 长方体（平台）
	MeshBox MeshKind = iota
	// MeshSphere 球体（小球）
	MeshSphere
)

// MeshComponent 实体的可视表现
type MeshComponent struct {
	Kind MeshKind
	// Size 长方体为完整尺寸，球体只使用 X 作为半径
	Size  mgl64.Vec3
	Color [4]uint8
}
