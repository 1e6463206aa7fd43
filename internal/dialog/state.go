package dialog

// State is a lifecycle phase of a pool slot.
type State int

const (
	StateIdle State = iota
	StateBuilding
	StateMounted
	StateAnimatingIn
	StateVisible
	StateAnimatingOut
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateBuilding:
		return "building"
	case StateMounted:
		return "mounted"
	case StateAnimatingIn:
		return "animating-in"
	case StateVisible:
		return "visible"
	case StateAnimatingOut:
		return "animating-out"
	default:
		return "unknown"
	}
}

// interactive reports whether a user action may produce an outcome.
func (s State) interactive() bool {
	switch s {
	case StateMounted, StateAnimatingIn, StateVisible:
		return true
	default:
		return false
	}
}
