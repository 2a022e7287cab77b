// Event is the input primitive delivered to machine handlers.
//
// Events mirror the subset of DOM keyboard and focus events that behaviors
// consume: the event type, the key (using KeyboardEvent.key names), modifier
// flags and the event target. Handlers may call PreventDefault to tell the
// host that the key was consumed.
//
// Example:
//
//	ev := NewKeyEvent(KeyArrowDown)
//	dispatchers.Dispatch(ev)
//	if ev.DefaultPrevented() { ... }
package primitives

// EventType names a dispatcher channel.
type EventType string

const (
	KeyDown  EventType = "keydown"
	FocusIn  EventType = "focusin"
	FocusOut EventType = "focusout"
)

// Key names follow the DOM KeyboardEvent.key values.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyEscape     = "Escape"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

type Event struct {
	Type   EventType
	Key    string
	Ctrl   bool
	Shift  bool
	Alt    bool
	Target Element
	Data   any

	defaultPrevented bool
}

// NewEvent creates an event of the given type carrying data.
func NewEvent(eventType EventType, data any) *Event {
	return &Event{
		Type: eventType,
		Data: data,
	}
}

// NewKeyEvent creates a keydown event for key.
func NewKeyEvent(key string) *Event {
	return &Event{Type: KeyDown, Key: key}
}

// NewFocusEvent creates a focusin or focusout event targeting el.
func NewFocusEvent(eventType EventType, el Element) *Event {
	return &Event{Type: eventType, Target: el}
}

// WithCtrl marks the control modifier as held and returns e.
func (e *Event) WithCtrl() *Event {
	e.Ctrl = true
	return e
}

// PreventDefault records that a handler consumed the event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether any handler called PreventDefault.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
