package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraComponent 透视跟随相机
//
// 相机朝向 -Z 方向，不做俯仰；跟随时只改变 Eye 的深度分量。
type CameraComponent struct {
	// Eye 相机位置（世界坐标）
	Eye mgl64.Vec3
	// FOV 垂直视野（度）
	FOV float64
	// Near, Far 裁剪平面
	Near, Far float64
	// ViewportW, ViewportH 视口像素尺寸
	ViewportW, ViewportH float64

	viewProj mgl64.Mat4
}

// NewCameraComponent 创建相机
func NewCameraComponent(fov, viewportW, viewportH float64) *CameraComponent {
	c := &CameraComponent{
		FOV:       fov,
		Near:      0.1,
		Far:       1000,
		ViewportW: viewportW,
		ViewportH: viewportH,
	}
	c.MoveTo(mgl64.Vec3{})
	return c
}

// MoveTo 移动相机并重算视图投影矩阵
func (c *CameraComponent) MoveTo(eye mgl64.Vec3) {
	c.Eye = eye
	proj := mgl64.Perspective(mgl64.DegToRad(c.FOV), c.ViewportW/c.ViewportH, c.Near, c.Far)
	view := mgl64.Translate3D(-eye.X(), -eye.Y(), -eye.Z())
	c.viewProj = proj.Mul4(view)
}

// Project 把世界坐标投影为屏幕像素坐标
//
// 返回：
//   - x, y: 屏幕坐标（左上角为原点）
//   - dist: 点到相机平面的距离
//   - ok: 点在近裁剪面之前时为 false
func (c *CameraComponent) Project(world mgl64.Vec3) (x, y, dist float64, ok bool) {
	clip := c.viewProj.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w <= c.Near {
		return 0, 0, w, false
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	x = (ndcX + 1) / 2 * c.ViewportW
	y = (1 - ndcY) / 2 * c.ViewportH
	return x, y, w, true
}

// PixelsPerUnit 距离 dist 处一个世界单位对应的屏幕像素数
func (c *CameraComponent) PixelsPerUnit(dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	focal := (c.ViewportH / 2) / math.Tan(mgl64.DegToRad(c.FOV)/2)
	return focal / dist
}
