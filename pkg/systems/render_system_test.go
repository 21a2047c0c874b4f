package systems

import (
	"testing"

	"github.com/decker502/hopball/pkg/components"
	"github.com/decker502/hopball/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

func TestRenderSystemDrawOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, components.NewCameraComponent(75, 480, 800))

	addPlatform := func(depth float64) ecs.EntityID {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.MeshComponent{Kind: components.MeshBox})
		ecs.AddComponent(em, id, &components.PlatformComponent{Depth: depth})
		return id
	}

	near := addPlatform(0)
	far := addPlatform(-30)
	mid := addPlatform(-15)

	ball := em.CreateEntity()
	ecs.AddComponent(em, ball, &components.MeshComponent{Kind: components.MeshSphere})
	ecs.AddComponent(em, ball, components.NewBall(mgl64.Vec3{0, 3, -7}, 0.7))

	// 只有网格没有变换的实体不参与绘制
	orphan := em.CreateEntity()
	ecs.AddComponent(em, orphan, &components.MeshComponent{Kind: components.MeshSphere})

	items := rs.collectDrawItems()
	want := []ecs.EntityID{far, mid, ball, near}
	if len(items) != len(want) {
		t.Fatalf("draw items: got %d, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].id != id {
			t.Errorf("draw order[%d]: got entity %d, want %d", i, items[i].id, id)
		}
	}
}

func TestRenderSystemMeshKindSelectsTransform(t *testing.T) {
	em := ecs.NewEntityManager()
	rs := NewRenderSystem(em, components.NewCameraComponent(75, 480, 800))

	// 长方体网格挂在小球上：类型与变换不匹配，跳过
	boxOnBall := em.CreateEntity()
	ecs.AddComponent(em, boxOnBall, &components.MeshComponent{Kind: components.MeshBox})
	ecs.AddComponent(em, boxOnBall, components.NewBall(mgl64.Vec3{0, 3, -7}, 0.7))

	// 球体网格挂在平台上：同样跳过
	sphereOnPlatform := em.CreateEntity()
	ecs.AddComponent(em, sphereOnPlatform, &components.MeshComponent{Kind: components.MeshSphere})
	ecs.AddComponent(em, sphereOnPlatform, &components.PlatformComponent{Depth: -15})

	platform := em.CreateEntity()
	ecs.AddComponent(em, platform, &components.MeshComponent{Kind: components.MeshBox})
	ecs.AddComponent(em, platform, &components.PlatformComponent{Depth: -30})

	ball := em.CreateEntity()
	ecs.AddComponent(em, ball, &components.MeshComponent{Kind: components.MeshSphere})
	ecs.AddComponent(em, ball, components.NewBall(mgl64.Vec3{0, 3, -7}, 0.7))

	items := rs.collectDrawItems()
	if len(items) != 2 {
		t.Fatalf("draw items: got %d, want 2", len(items))
	}
	if items[0].id != platform || items[0].platform == nil || items[0].ball != nil {
		t.Errorf("first item: got entity %d (platform=%v, ball=%v), want platform entity %d",
			items[0].id, items[0].platform != nil, items[0].ball != nil, platform)
	}
	if items[1].id != ball || items[1].ball == nil || items[1].platform != nil {
		t.Errorf("second item: got entity %d (platform=%v, ball=%v), want ball entity %d",
			items[1].id, items[1].platform != nil, items[1].ball != nil, ball)
	}
}

func TestBoxFaces(t *testing.T) {
	faces := boxFaces(mgl64.Vec3{1, 0, -15}, mgl64.Vec3{5, 0.5, 5})
	top, front := faces[0], faces[1]

	for i, v := range top {
		if v.Y() != 0.25 {
			t.Errorf("top vertex %d: y = %v, want 0.25", i, v.Y())
		}
	}
	for i, v := range front {
		if v.Z() != -12.5 {
			t.Errorf("front vertex %d: z = %v, want -12.5", i, v.Z())
		}
	}
	if top[0].X() != -1.5 || top[1].X() != 3.5 {
		t.Errorf("top x extent: got [%v, %v], want [-1.5, 3.5]", top[0].X(), top[1].X())
	}
}
