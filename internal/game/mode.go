package game

// Mode is the run mode toggled by the keyboard.
type Mode int

const (
	// Animating plays the bouncing idle animation.
	Animating Mode = iota
	// Paused is the normal mode. It only clears the screen for now.
	Paused
)

func (m Mode) String() string {
	switch m {
	case Animating:
		return "animating"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}
