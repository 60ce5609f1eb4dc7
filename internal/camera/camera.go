package camera

import (
	"platformer/internal/movement"
	"platformer/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycaster is the part of the physics world the camera boom needs.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, except *physics.Body) (physics.RaycastHit, bool)
}

// ChaseCamera looks over the hero's shoulder. Yaw and Pitch are in
// degrees; Yaw 0 looks along +X and Z is up.
type ChaseCamera struct {
	Yaw       float32
	Pitch     float32
	LookSpeed float32

	Distance  float32 // boom length behind the eye
	EyeHeight float32 // above the feet of the followed body
	Fovy      float32

	Position rl.Vector3
	Target   rl.Vector3
}

func New() *ChaseCamera {
	return &ChaseCamera{
		Yaw:       0,
		Pitch:     -15,
		LookSpeed: 0.1,
		Distance:  4,
		EyeHeight: 1.5,
		Fovy:      60,
	}
}

// Look turns the camera by a mouse delta in pixels.
func (c *ChaseCamera) Look(delta rl.Vector2) {
	c.Yaw -= delta.X * c.LookSpeed
	c.Pitch -= delta.Y * c.LookSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}

	for c.Yaw >= 360 {
		c.Yaw -= 360
	}
	for c.Yaw < 0 {
		c.Yaw += 360
	}
}

// Angles returns yaw and pitch in radians, as the hero expects them.
func (c *ChaseCamera) Angles() (horz, vert float32) {
	return c.Yaw * math32.Pi / 180, c.Pitch * math32.Pi / 180
}

// Follow places the camera behind body. The boom is shortened when level
// geometry or another body is in the way, so the view never ends up inside
// a wall.
func (c *ChaseCamera) Follow(body *physics.Body, world Raycaster) {
	eye := rl.Vector3{
		X: body.Pos.X + body.Size.X/2,
		Y: body.Pos.Y + body.Size.Y/2,
		Z: body.Pos.Z + c.EyeHeight,
	}
	horz, vert := c.Angles()
	forward := movement.VectorFromAngles(horz, vert)
	back := rl.Vector3Negate(forward)

	distance := c.Distance
	if world != nil {
		if hit, ok := world.Raycast(eye, back, c.Distance, body); ok {
			distance = math32.Max(0, hit.Distance-0.2)
		}
	}

	c.Position = rl.Vector3Add(eye, rl.Vector3Scale(back, distance))
	c.Target = rl.Vector3Add(eye, forward)
}

func (c *ChaseCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position,
		Target:     c.Target,
		Up:         physics.Up,
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
