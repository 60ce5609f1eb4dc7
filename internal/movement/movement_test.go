package movement

import (
	"testing"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

// wallShape blocks boxes crossing x=0 or y=0 from the positive side.
type wallShape struct{}

func (wallShape) Sweep(a, b, halfSize rl.Vector3) physics.Trace {
	r := physics.Trace{Fraction: 1}
	delta := rl.Vector3Subtract(b, a)

	if b.X-halfSize.X < 0 && a.X-halfSize.X >= 0 {
		if f := (a.X - halfSize.X) / -delta.X; f < r.Fraction {
			r.Fraction = f
			r.Plane = physics.Plane{N: rl.Vector3{X: 1}}
		}
	}
	if b.Y-halfSize.Y < 0 && a.Y-halfSize.Y >= 0 {
		if f := (a.Y - halfSize.Y) / -delta.Y; f < r.Fraction {
			r.Fraction = f
			r.Plane = physics.Plane{N: rl.Vector3{Y: 1}}
		}
	}
	return r
}

func newWallWorld() (*physics.PhysicsWorld, *physics.Body) {
	world := physics.NewPhysicsWorld(nil)
	walls := physics.NewBody()
	walls.Solid = true
	walls.Shape = wallShape{}
	world.AddBody(walls)

	mover := physics.NewBody()
	world.AddBody(mover)
	return world, mover
}

func planeEdifice(n rl.Vector3) physics.EdificeFunc {
	floor := physics.Convex{Planes: []physics.Plane{{N: rl.Vector3Normalize(n)}}}
	return func(box physics.Box, delta rl.Vector3) physics.Trace {
		a := box.Center()
		return floor.Trace(a, rl.Vector3Add(a, delta), box.HalfSize())
	}
}

func TestSlideMoveAlongWall(t *testing.T) {
	world, mover := newWallWorld()
	mover.Pos = rl.Vector3{X: 10, Y: 10}

	SlideMove(world, mover, rl.Vector3{X: -20, Y: 20})

	assert.InDelta(t, 0, mover.Pos.X, 0.1)
	assert.InDelta(t, 30, mover.Pos.Y, 0.1)
	assert.InDelta(t, 0, mover.Pos.Z, 0.1)
}

func TestSlideMoveUnobstructed(t *testing.T) {
	world, mover := newWallWorld()
	mover.Pos = rl.Vector3{X: 10, Y: 10}

	SlideMove(world, mover, rl.Vector3{X: 3, Y: -4, Z: 5})

	assert.Equal(t, rl.Vector3{X: 13, Y: 6, Z: 5}, mover.Pos)
}

func TestSlideMoveStopsInCorner(t *testing.T) {
	world, mover := newWallWorld()
	mover.Pos = rl.Vector3{X: 5, Y: 5}

	SlideMove(world, mover, rl.Vector3{X: -10, Y: -10})

	assert.InDelta(t, 0, mover.Pos.X, 1e-4)
	assert.InDelta(t, 0, mover.Pos.Y, 1e-4)
}

func TestSlideMoveAlongSlope(t *testing.T) {
	world := physics.NewPhysicsWorld(planeEdifice(rl.Vector3{X: -1, Z: 1}))
	mover := physics.NewBody()
	mover.Pos = rl.Vector3{X: -5, Z: 0}
	world.AddBody(mover)

	// walk into a 45 degree ramp rising towards +x
	SlideMove(world, mover, rl.Vector3{X: 10})

	assert.Greater(t, mover.Pos.X, float32(-5))
	assert.Greater(t, mover.Pos.Z, float32(0), "slid up the ramp")
}

func TestSlideMoveAxesReportsBlockedAxis(t *testing.T) {
	world, mover := newWallWorld()
	mover.Pos = rl.Vector3{X: 2, Y: 10}

	blocked := SlideMoveAxes(world, mover, rl.Vector3{X: -5, Y: 3, Z: 1})

	assert.Equal(t, AxisBlocked{X: true}, blocked)
	assert.True(t, blocked.Any())
	assert.InDelta(t, 0, mover.Pos.X, 1e-4)
	assert.InDelta(t, 13, mover.Pos.Y, 1e-4)
	assert.InDelta(t, 1, mover.Pos.Z, 1e-4)
}

func TestSlideMoveAxesSkipsZeroAxes(t *testing.T) {
	world, mover := newWallWorld()
	mover.Pos = rl.Vector3{X: 2, Y: 2}

	blocked := SlideMoveAxes(world, mover, rl.Vector3{})

	assert.False(t, blocked.Any())
	assert.Equal(t, rl.Vector3{X: 2, Y: 2}, mover.Pos)
}

func TestIsOnGround(t *testing.T) {
	tests := []struct {
		name   string
		normal rl.Vector3
		want   bool
	}{
		{"flat floor", rl.Vector3{Z: 1}, true},
		{"gentle slope", rl.Vector3{X: 0.2, Z: 1}, true},
		{"steep slope", rl.Vector3{X: 1, Z: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := physics.NewPhysicsWorld(planeEdifice(tt.normal))
			b := physics.NewBody()
			b.Pos = rl.Vector3{X: -0.5, Y: -0.5, Z: 3}
			world.AddBody(b)

			world.MoveBody(b, rl.Vector3{Z: -10})

			assert.Equal(t, tt.want, IsOnGround(world, b))
		})
	}
}

func TestIsOnGroundInTheAir(t *testing.T) {
	world := physics.NewPhysicsWorld(planeEdifice(rl.Vector3{Z: 1}))
	b := physics.NewBody()
	b.Pos = rl.Vector3{Z: 2}
	world.AddBody(b)

	assert.False(t, IsOnGround(world, b))
}

func TestIsOnGroundOnBody(t *testing.T) {
	world := physics.NewPhysicsWorld(nil)
	crate := physics.NewBody()
	crate.Solid = true
	crate.Size = rl.Vector3{X: 4, Y: 4, Z: 1}
	world.AddBody(crate)

	b := physics.NewBody()
	b.Pos = rl.Vector3{X: 1, Y: 1, Z: 1.05}
	world.AddBody(b)

	assert.True(t, IsOnGround(world, b))
}

func TestVectorFromAngles(t *testing.T) {
	v := VectorFromAngles(0, 0)
	assert.InDelta(t, 1, v.X, 1e-6)
	assert.InDelta(t, 0, v.Y, 1e-6)

	v = VectorFromAngles(0, 3.14159265/2)
	assert.InDelta(t, 1, v.Z, 1e-6)
	assert.InDelta(t, 1, rl.Vector3Length(VectorFromAngles(1.2, -0.3)), 1e-6)
}
