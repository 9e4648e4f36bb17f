package activity

// Signal identifies one of the fixed user-interaction signals the monitor
// recognizes. The set mirrors the document-level browser events the original
// surface listens to in capture phase, so no intermediate component can
// suppress detection by stopping propagation.
type Signal int

const (
	SignalPointerPress Signal = iota
	SignalPointerMove
	SignalKeyPress
	SignalScroll
	SignalTouchStart
	SignalClick
)

func (s Signal) String() string {
	switch s {
	case SignalPointerPress:
		return "pointer_press"
	case SignalPointerMove:
		return "pointer_move"
	case SignalKeyPress:
		return "key_press"
	case SignalScroll:
		return "scroll"
	case SignalTouchStart:
		return "touch_start"
	case SignalClick:
		return "click"
	default:
		return "unknown"
	}
}

// Signals returns the full fixed signal set, in registration order.
func Signals() []Signal {
	return []Signal{
		SignalPointerPress,
		SignalPointerMove,
		SignalKeyPress,
		SignalScroll,
		SignalTouchStart,
		SignalClick,
	}
}
