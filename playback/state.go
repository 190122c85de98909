package playback

type State int

const (
	// Idle: nothing scheduled.
	Idle State = iota
	// Advancing: exactly one advance callback is pending.
	Advancing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Advancing:
		return "advancing"
	default:
		return "unknown"
	}
}
