package render

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel     = rl.NewColor(30, 30, 40, 220)
	colorText      = rl.NewColor(230, 230, 240, 255)
	colorTextDim   = rl.NewColor(160, 160, 175, 255)
	colorHealth    = rl.NewColor(200, 60, 60, 255)
	colorHealthBar = rl.NewColor(45, 45, 60, 255)
)

// HUD is what the overlay shows for one frame.
type HUD struct {
	Health float32 // 0..1
	Text   string  // text box, empty for none
	Debug  bool
	Stats  Stats
}

// Stats are the numbers shown in the debug panel.
type Stats struct {
	Ticks      int
	Bodies     int
	Entities   int
	OnGround   bool
	Position   rl.Vector3
	Velocity   rl.Vector3
	FacesDrawn int
	FacesTotal int

	UpdateMs float64
	DrawMs   float64
}

// SetupStyle applies the overlay colors to raygui. Call once after the
// window is open.
func SetupStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorHealthBar))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorHealth))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
}

func DrawHUD(h HUD) {
	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	rl.DrawText("WASD to move, Space to jump, E to use, R to restart", 10, 10, 20, colorTextDim)
	rl.DrawText("F1 to toggle debug view", 10, 35, 20, colorTextDim)

	gui.ProgressBar(rl.Rectangle{X: 10, Y: screenH - 34, Width: 220, Height: 24}, "", fmt.Sprintf("%d%%", int(h.Health*100)), h.Health, 0, 1)

	if h.Text != "" {
		drawTextBox(h.Text, screenW, screenH)
	}

	if h.Debug {
		drawDebugPanel(h.Stats, screenW)
	}
}

func drawTextBox(text string, screenW, screenH float32) {
	const fontSize = 24
	width := float32(rl.MeasureText(text, fontSize)) + 40
	bounds := rl.Rectangle{X: (screenW - width) / 2, Y: screenH - 120, Width: width, Height: 48}
	gui.Panel(bounds, "")
	rl.DrawText(text, int32(bounds.X+20), int32(bounds.Y+12), fontSize, colorText)
}

func drawDebugPanel(s Stats, screenW float32) {
	bounds := rl.Rectangle{X: screenW - 290, Y: 10, Width: 280, Height: 230}
	gui.Panel(bounds, "Debug")

	lines := []string{
		fmt.Sprintf("Tick:     %d", s.Ticks),
		fmt.Sprintf("Bodies:   %d", s.Bodies),
		fmt.Sprintf("Entities: %d", s.Entities),
		fmt.Sprintf("Ground:   %v", s.OnGround),
		fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", s.Position.X, s.Position.Y, s.Position.Z),
		fmt.Sprintf("Vel: (%.4f, %.4f, %.4f)", s.Velocity.X, s.Velocity.Y, s.Velocity.Z),
		fmt.Sprintf("Faces:    %d / %d", s.FacesDrawn, s.FacesTotal),
		fmt.Sprintf("Update:   %.2f ms", s.UpdateMs),
		fmt.Sprintf("Draw:     %.2f ms", s.DrawMs),
	}
	for i, line := range lines {
		gui.Label(rl.Rectangle{X: bounds.X + 10, Y: bounds.Y + 30 + float32(i)*21, Width: bounds.Width - 20, Height: 20}, line)
	}
}
