package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	nearPlane = 0.05
	farPlane  = 500.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]plane // left, right, bottom, top, near, far
}

// plane is ax + by + cz + d = 0 with a unit normal.
type plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts the frustum planes of camera using the
// Gribb/Hartmann method. aspect is width over height of the viewport.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, nearPlane, farPlane)
	}

	vp := rl.MatrixMultiply(view, proj)

	var f Frustum
	// left, right: row4 +- row1
	f.planes[0] = normalizePlane(rl.Vector3{X: vp.M3 + vp.M0, Y: vp.M7 + vp.M4, Z: vp.M11 + vp.M8}, vp.M15+vp.M12)
	f.planes[1] = normalizePlane(rl.Vector3{X: vp.M3 - vp.M0, Y: vp.M7 - vp.M4, Z: vp.M11 - vp.M8}, vp.M15-vp.M12)
	// bottom, top: row4 +- row2
	f.planes[2] = normalizePlane(rl.Vector3{X: vp.M3 + vp.M1, Y: vp.M7 + vp.M5, Z: vp.M11 + vp.M9}, vp.M15+vp.M13)
	f.planes[3] = normalizePlane(rl.Vector3{X: vp.M3 - vp.M1, Y: vp.M7 - vp.M5, Z: vp.M11 - vp.M9}, vp.M15-vp.M13)
	// near, far: row4 +- row3
	f.planes[4] = normalizePlane(rl.Vector3{X: vp.M3 + vp.M2, Y: vp.M7 + vp.M6, Z: vp.M11 + vp.M10}, vp.M15+vp.M14)
	f.planes[5] = normalizePlane(rl.Vector3{X: vp.M3 - vp.M2, Y: vp.M7 - vp.M6, Z: vp.M11 - vp.M10}, vp.M15-vp.M14)
	return f
}

func normalizePlane(n rl.Vector3, d float32) plane {
	length := rl.Vector3Length(n)
	if length == 0 {
		return plane{normal: n, distance: d}
	}
	return plane{
		normal:   rl.Vector3Scale(n, 1.0/length),
		distance: d / length,
	}
}

// ContainsSphere tests if a sphere is inside or intersects the frustum
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	return f.ContainsSphere(point, 0)
}
