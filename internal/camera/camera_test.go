package camera

import (
	"testing"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

type wallRaycaster struct {
	distance float32
}

func (w wallRaycaster) Raycast(origin, direction rl.Vector3, maxDistance float32, except *physics.Body) (physics.RaycastHit, bool) {
	if w.distance > maxDistance {
		return physics.RaycastHit{}, false
	}
	return physics.RaycastHit{Distance: w.distance}, true
}

func TestLookClampsPitch(t *testing.T) {
	c := New()
	c.Look(rl.Vector2{Y: -10000})
	assert.Equal(t, float32(89), c.Pitch)
	c.Look(rl.Vector2{Y: 10000})
	assert.Equal(t, float32(-89), c.Pitch)
}

func TestLookWrapsYaw(t *testing.T) {
	c := New()
	c.Look(rl.Vector2{X: 100}) // -10 degrees
	assert.InDelta(t, 350, c.Yaw, 1e-4)
}

func TestFollowWithoutObstacle(t *testing.T) {
	c := New()
	c.Pitch = 0
	body := physics.NewBody()
	body.Size = rl.Vector3{X: 1, Y: 1, Z: 2}

	c.Follow(body, nil)

	assert.InDelta(t, 0.5-c.Distance, c.Position.X, 1e-4)
	assert.InDelta(t, 0.5, c.Position.Y, 1e-4)
	assert.InDelta(t, c.EyeHeight, c.Position.Z, 1e-4)
	assert.InDelta(t, 1.5, c.Target.X, 1e-4)
}

func TestFollowShortensBoom(t *testing.T) {
	c := New()
	c.Pitch = 0
	body := physics.NewBody()

	c.Follow(body, wallRaycaster{distance: 1})

	assert.InDelta(t, -0.3, c.Position.X, 1e-4)
}

func TestRaylibCameraIsZUp(t *testing.T) {
	c := New()
	cam := c.GetRaylibCamera()
	assert.Equal(t, physics.Up, cam.Up)
	assert.Equal(t, float32(60), cam.Fovy)
}
