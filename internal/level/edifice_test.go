package level

import (
	"testing"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubeBrush(pos, size rl.Vector3) physics.Convex {
	vertices, faces := cuboid(pos, size)
	return buildBrush("cube", vertices, faces)
}

func TestEdificeTraceKeepsNearestBrush(t *testing.T) {
	unit := rl.Vector3{X: 1, Y: 1, Z: 1}
	e := NewEdifice([]physics.Convex{
		cubeBrush(rl.Vector3{X: 5}, unit),
		cubeBrush(rl.Vector3{X: 3}, unit),
	})

	tr := e.Trace(physics.Box{Size: unit}, rl.Vector3{X: 10})

	require.True(t, tr.Blocked())
	assert.InDelta(t, 0.2, tr.Fraction, 0.01)
	assert.InDelta(t, -1, tr.Plane.N.X, 1e-5)
	assert.Nil(t, tr.Blocker)
}

func TestEdificeTraceMiss(t *testing.T) {
	unit := rl.Vector3{X: 1, Y: 1, Z: 1}
	e := NewEdifice([]physics.Convex{cubeBrush(rl.Vector3{X: 3}, unit)})

	tr := e.Trace(physics.Box{Pos: rl.Vector3{Y: 5}, Size: unit}, rl.Vector3{X: 10})
	assert.False(t, tr.Blocked())

	empty := NewEdifice(nil)
	assert.False(t, empty.Trace(physics.Box{Size: unit}, rl.Vector3{X: 10}).Blocked())
}

func TestEdificeOverlaps(t *testing.T) {
	e := NewEdifice([]physics.Convex{cubeBrush(rl.Vector3{}, rl.Vector3{X: 4, Y: 4, Z: 4})})
	small := rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}

	assert.True(t, e.Overlaps(physics.Box{Pos: rl.Vector3{X: 1, Y: 1, Z: 1}, Size: small}))
	assert.False(t, e.Overlaps(physics.Box{Pos: rl.Vector3{X: 6, Y: 1, Z: 1}, Size: small}))
}

func TestBodyLandsOnEdifice(t *testing.T) {
	e := NewEdifice([]physics.Convex{cubeBrush(rl.Vector3{X: -5, Y: -5, Z: -1}, rl.Vector3{X: 10, Y: 10, Z: 1})})
	world := physics.NewPhysicsWorld(e.Trace)

	b := physics.NewBody()
	b.Pos = rl.Vector3{Z: 3}
	world.AddBody(b)

	tr := world.MoveBody(b, rl.Vector3{Z: -10})

	assert.True(t, tr.Blocked())
	assert.InDelta(t, 0, b.Pos.Z, 0.01)
	assert.InDelta(t, 1, tr.Plane.N.Z, 1e-5)
}
