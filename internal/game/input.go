package game

import (
	"platformer/internal/camera"
	"platformer/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ReadControl samples keyboard and mouse for one frame. Mouse movement
// turns cam; the hero walks and aims along the camera.
func ReadControl(cam *camera.ChaseCamera) engine.Control {
	cam.Look(rl.GetMouseDelta())
	horz, vert := cam.Angles()

	return engine.Control{
		Forward:  rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
		Backward: rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
		Left:     rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
		Right:    rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		LookHorz: horz,
		LookVert: vert,
		Jump:     rl.IsKeyDown(rl.KeySpace),
		Use:      rl.IsKeyDown(rl.KeyE) || rl.IsMouseButtonDown(rl.MouseLeftButton),
		Restart:  rl.IsKeyDown(rl.KeyR),
		Debug:    rl.IsKeyDown(rl.KeyF1),
	}
}
