package systems

import (
	"image"
	"image/color"
	"slices"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem 以透视投影绘制平台与小球
//
// 平台实体由场景在 PlatformSpawned 时创建（MeshComponent + *PlatformComponent），
// 小球实体在场景创建时建立，每局重启后替换其 *BallComponent。
// 绘制顺序按深度由远到近（画家算法）。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *components.CameraComponent

	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex // 复用，避免每帧分配
	indices       []uint16
}

// drawItem 一个待绘制实体及其深度
type drawItem struct {
	id    ecs.EntityID
	depth float64

	mesh     *components.MeshComponent
	platform *components.PlatformComponent // 仅 MeshBox
	ball     *components.BallComponent     // 仅 MeshSphere
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera *components.CameraComponent) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
		vertices:      make([]ebiten.Vertex, 0, 8),
		indices:       make([]uint16, 0, 12),
	}
}

// Camera 返回渲染使用的相机
func (s *RenderSystem) Camera() *components.CameraComponent {
	return s.camera
}

// Draw 绘制所有网格实体
//
// 参数:
//   - screen: 绘制目标
//   - trackOffset: 轨道当前水平偏移（平台世界 X = 偏移 + LocalX）
func (s *RenderSystem) Draw(screen *ebiten.Image, trackOffset float64) {
	for _, item := range s.collectDrawItems() {
		switch item.mesh.Kind {
		case components.MeshBox:
			s.drawBox(screen, item.platform.WorldPosition(trackOffset), item.mesh)
		case components.MeshSphere:
			s.drawSphere(screen, item.ball.Position, item.mesh)
		}
	}
}

// collectDrawItems 收集网格实体并按深度由远到近排序
// 网格类型决定需要的变换组件：长方体取平台，球体取小球；缺少对应组件的实体跳过
func (s *RenderSystem) collectDrawItems() []drawItem {
	ids := ecs.GetEntitiesWith1[*components.MeshComponent](s.entityManager)
	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		mesh, _ := ecs.GetComponent[*components.MeshComponent](s.entityManager, id)
		switch mesh.Kind {
		case components.MeshBox:
			if platform, ok := ecs.GetComponent[*components.PlatformComponent](s.entityManager, id); ok {
				items = append(items, drawItem{id: id, depth: platform.Depth, mesh: mesh, platform: platform})
			}
		case components.MeshSphere:
			if ball, ok := ecs.GetComponent[*components.BallComponent](s.entityManager, id); ok {
				items = append(items, drawItem{id: id, depth: ball.Position.Z(), mesh: mesh, ball: ball})
			}
		}
	}

	slices.SortStableFunc(items, func(a, b drawItem) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})
	return items
}

// boxFaces 返回长方体朝向相机的两个面：顶面与前面（+Z 一侧）
// 每个面按顺时针给出 4 个顶点
func boxFaces(center, size mgl64.Vec3) [2][4]mgl64.Vec3 {
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2
	cx, cy, cz := center.X(), center.Y(), center.Z()

	top := [4]mgl64.Vec3{
		{cx - hx, cy + hy, cz - hz},
		{cx + hx, cy + hy, cz - hz},
		{cx + hx, cy + hy, cz + hz},
		{cx - hx, cy + hy, cz + hz},
	}
	front := [4]mgl64.Vec3{
		{cx - hx, cy + hy, cz + hz},
		{cx + hx, cy + hy, cz + hz},
		{cx + hx, cy - hy, cz + hz},
		{cx - hx, cy - hy, cz + hz},
	}
	return [2][4]mgl64.Vec3{top, front}
}

func (s *RenderSystem) drawBox(screen *ebiten.Image, center mgl64.Vec3, mesh *components.MeshComponent) {
	faces := boxFaces(center, mesh.Size)
	// 顶面原色，前面压暗以区分体积
	shades := [2]float32{1.0, 0.6}

	for i, face := range faces {
		s.vertices = s.vertices[:0]
		visible := true
		for _, corner := range face {
			x, y, _, ok := s.camera.Project(corner)
			if !ok {
				visible = false
				break
			}
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX:   float32(x),
				DstY:   float32(y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(mesh.Color[0]) / 255 * shades[i],
				ColorG: float32(mesh.Color[1]) / 255 * shades[i],
				ColorB: float32(mesh.Color[2]) / 255 * shades[i],
				ColorA: float32(mesh.Color[3]) / 255,
			})
		}
		if !visible {
			continue
		}

		s.indices = append(s.indices[:0], 0, 1, 2, 0, 2, 3)
		screen.DrawTriangles(s.vertices, s.indices, s.white(), &ebiten.DrawTrianglesOptions{})
	}
}

func (s *RenderSystem) drawSphere(screen *ebiten.Image, center mgl64.Vec3, mesh *components.MeshComponent) {
	x, y, dist, ok := s.camera.Project(center)
	if !ok {
		return
	}
	r := mesh.Size.X() * s.camera.PixelsPerUnit(dist)
	clr := color.RGBA{R: mesh.Color[0], G: mesh.Color[1], B: mesh.Color[2], A: mesh.Color[3]}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), clr, true)
}

// white 延迟创建 1x1 白色源图（DrawTriangles 需要源纹理）
func (s *RenderSystem) white() *ebiten.Image {
	if s.whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		s.whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return s.whiteSubImage
}
