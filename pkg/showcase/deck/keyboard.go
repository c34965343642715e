package deck

// Key is a navigation key, independent of the input backend.
type Key int

const (
	KeyUnknown Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// HandleKey evaluates a key press. It reports whether the key is a navigation
// key; callers must not pass handled keys on to other consumers, even when
// the navigator is locked and nothing moved.
func (n *Navigator) HandleKey(k Key) (handled bool) {
	target := n.state.ActiveIndex
	switch k {
	case KeyArrowDown, KeyPageDown:
		target++
	case KeyArrowUp, KeyPageUp:
		target--
	case KeyHome:
		target = 0
	case KeyEnd:
		target = len(n.sections) - 1
	default:
		return false
	}

	if !n.closed && !n.state.Locked {
		n.RequestNavigate(target)
	}
	return true
}
