package obj

// Input holds the key state the simulation reads each frame. The game loop
// fills it from the keyboard or gamepad; tests fill it directly.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// Jump is true while a jump key is held.
	Jump bool
	// Shoot is true while the shoot key is held.
	Shoot bool
	// Restart is true on the frame the restart key was pressed.
	Restart bool
	// Quit is true on the frame a quit was requested.
	Quit bool
}

// Reset clears every field.
func (i *Input) Reset() {
	if i == nil {
		return
	}
	*i = Input{}
}
