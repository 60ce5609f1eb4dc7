package engine

// Control is the player input for one tick.
type Control struct {
	Forward, Backward bool
	Left, Right       bool

	// Look angles in radians.
	LookHorz float32
	LookVert float32

	Jump    bool
	Use     bool
	Restart bool // restart the level in case one gets stuck
	Debug   bool
}

// Toggle turns a held button into a press.
type Toggle struct {
	wasPressed bool
}

// Press reports whether pressed went from released to pressed.
func (t *Toggle) Press(pressed bool) bool {
	fired := pressed && !t.wasPressed
	t.wasPressed = pressed
	return fired
}
