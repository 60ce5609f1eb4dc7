package entities

import (
	"platformer/internal/engine"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MovingPlatform is a solid pusher oscillating along Y (Dir != 0) or Z.
// Whatever rides on it or stands in its way is carried along.
type MovingPlatform struct {
	engine.BaseEntity

	Dir       int
	Amplitude float32 // peak speed, per tick
	Period    float32 // angular speed of the oscillation, per tick

	ticks int
}

func NewMovingPlatform(dir int) *MovingPlatform {
	p := &MovingPlatform{
		BaseEntity: engine.NewBaseEntity("moving_platform"),
		Dir:        dir,
		Amplitude:  0.003,
		Period:     0.001,
	}
	p.Solid = true
	p.Pusher = true
	p.Size = rl.Vector3{X: 2, Y: 2, Z: 1}
	p.CollisionGroup = CGWalls
	return p
}

// Delta is the move the platform makes on its next tick.
func (p *MovingPlatform) Delta() rl.Vector3 {
	d := p.Amplitude * math32.Sin(float32(p.ticks)*p.Period)
	if p.Dir != 0 {
		return rl.Vector3{Y: d}
	}
	return rl.Vector3{Z: d}
}

func (p *MovingPlatform) Tick() {
	p.Physics.MoveBody(p.GetBody(), p.Delta())
	p.ticks++
}
