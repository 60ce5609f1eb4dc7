package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

var (
	zeroSize = rl.Vector3{}
	halfSize = rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}
)

func floorConvex(n rl.Vector3) Convex {
	return Convex{Planes: []Plane{{N: n, D: 0}}}
}

func TestConvexTraceThroughFloorInOneStep(t *testing.T) {
	floor := floorConvex(Up)

	trace := floor.Trace(rl.Vector3{Z: 10}, rl.Vector3{Z: -10}, zeroSize)

	assert.InDelta(t, 0.5, trace.Fraction, 0.01)
	assert.Equal(t, Up, trace.Plane.N)
}

func TestConvexTracePointDownUsingSmallSteps(t *testing.T) {
	floor := floorConvex(Up)

	z := float32(1.0)
	dz := float32(-0.1)

	for math32.Abs(dz) > 0.0001 && z > 0 {
		pos := rl.Vector3{Z: z}
		trace := floor.Trace(pos, rl.Vector3{Z: z + dz}, zeroSize)
		z += trace.Fraction * dz
		dz *= 0.999
	}

	assert.Greater(t, z, float32(0))
}

func TestConvexTraceBoxDownUsingSmallSteps(t *testing.T) {
	floor := floorConvex(Up)

	z := float32(1.0)
	dz := float32(-0.1)

	for math32.Abs(dz) > 0.0001 {
		pos := rl.Vector3{Z: z}
		trace := floor.Trace(pos, rl.Vector3{Z: z + dz}, halfSize)
		z += trace.Fraction * dz
		dz *= 0.9999
	}

	// the box lands on the floor, it does not sink into it
	assert.Greater(t, z, float32(0.5-Epsilon))
}

func TestConvexTracePointDownSlopedFloorUsingSmallSteps(t *testing.T) {
	up := rl.Vector3Normalize(rl.Vector3{X: 0, Y: 0.1, Z: 0.9})
	floor := floorConvex(up)

	delta := rl.Vector3Scale(up, -1)
	pos := rl.Vector3{Z: 1}

	for math32.Abs(delta.Z) > 0.0001 && pos.Z > 0 {
		trace := floor.Trace(pos, rl.Vector3Add(pos, delta), zeroSize)
		pos = rl.Vector3Add(pos, rl.Vector3Scale(delta, trace.Fraction))
		delta = rl.Vector3Scale(delta, 0.999)
	}

	assert.Greater(t, pos.Z, float32(0))
}

func TestConvexTraceEntersAndLeavesCube(t *testing.T) {
	cube := unitCube.Convex

	trace := cube.Trace(rl.Vector3{X: -2, Y: 0.5, Z: 0.5}, rl.Vector3{X: 2, Y: 0.5, Z: 0.5}, zeroSize)

	assert.InDelta(t, (2-Epsilon)/4, trace.Fraction, 1e-5)
	assert.Equal(t, rl.Vector3{X: -1}, trace.Plane.N)
}

func TestConvexTraceBoxIsInflatedByHalfSize(t *testing.T) {
	cube := unitCube.Convex
	half := rl.Vector3{X: 0.25, Y: 0.25, Z: 0.25}

	trace := cube.Trace(rl.Vector3{X: -2, Y: 0.5, Z: 0.5}, rl.Vector3{X: 2, Y: 0.5, Z: 0.5}, half)

	assert.InDelta(t, (1.75-Epsilon)/4, trace.Fraction, 1e-5)
}

func TestConvexTraceMissesCube(t *testing.T) {
	cube := unitCube.Convex

	trace := cube.Trace(rl.Vector3{X: -2, Y: 2, Z: 0.5}, rl.Vector3{X: 2, Y: 2, Z: 0.5}, zeroSize)

	assert.Equal(t, float32(1), trace.Fraction)
	assert.False(t, trace.Blocked())
}

func TestConvexTraceLeavingFromInsideIsNotBlocked(t *testing.T) {
	cube := unitCube.Convex

	trace := cube.Trace(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, rl.Vector3{X: 3, Y: 0.5, Z: 0.5}, zeroSize)

	assert.Equal(t, float32(1), trace.Fraction)
}

func TestConvexTraceEdgeCases(t *testing.T) {
	tests := []struct {
		name   string
		convex Convex
		a, b   rl.Vector3
	}{
		{"no planes", Convex{}, rl.Vector3{X: -5}, rl.Vector3{X: 5}},
		{"zero-length move resting on floor", floorConvex(Up), rl.Vector3{Z: 0.5}, rl.Vector3{Z: 0.5}},
		{"zero-length move inside cube", unitCube.Convex, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}},
		{"moving away from floor", floorConvex(Up), rl.Vector3{Z: 1}, rl.Vector3{Z: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := tt.convex.Trace(tt.a, tt.b, halfSize)
			assert.Equal(t, float32(1), trace.Fraction)
		})
	}
}

func TestConvexContains(t *testing.T) {
	cube := unitCube.Convex

	assert.True(t, cube.Contains(rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, zeroSize))
	assert.True(t, cube.Contains(rl.Vector3{X: 1.2, Y: 0.5, Z: 0.5}, halfSize))
	assert.False(t, cube.Contains(rl.Vector3{X: 1.5, Y: 0.5, Z: 0.5}, halfSize))
	assert.False(t, Convex{}.Contains(rl.Vector3{}, halfSize))
}

func TestPlaneDist(t *testing.T) {
	p := PlaneFromPoint(Up, rl.Vector3{X: 3, Y: 4, Z: 2})

	assert.Equal(t, float32(2), p.D)
	assert.Equal(t, float32(1), p.Dist(rl.Vector3{Z: 3}))
	assert.Equal(t, float32(-2), p.Dist(rl.Vector3{X: 9}))
}
