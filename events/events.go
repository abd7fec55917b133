package events

import "fmt"

// Type identifies the kind of toolkit event.
type Type int

const (
	// Activate fires once when the application should build its window.
	Activate Type = iota
	// Click fires when a button is tapped. Event.Target holds the element ID.
	Click
	// KeyPress fires on a typed key. Event.Key holds the toolkit key name.
	KeyPress
)

func (t Type) String() string {
	switch t {
	case Activate:
		return "activate"
	case Click:
		return "click"
	case KeyPress:
		return "keypress"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

type Event struct {
	Type   Type
	Target string
	Key    string
}

// Handler reports whether it consumed the event.
type Handler func(Event) bool

// Dispatcher delivers events to handlers registered per event type.
// It is driven from the toolkit's event loop only and is not safe for
// concurrent use.
type Dispatcher struct {
	handlers map[Type][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Type][]Handler)}
}

// On appends h to the handlers for t.
func (d *Dispatcher) On(t Type, h Handler) {
	d.handlers[t] = append(d.handlers[t], h)
}

// OnClick registers fn for clicks on target. Clicks on other targets fall
// through to later handlers.
func (d *Dispatcher) OnClick(target string, fn func()) {
	d.On(Click, func(ev Event) bool {
		if ev.Target != target {
			return false
		}
		fn()
		return true
	})
}

// OnKey registers fn for presses of key.
func (d *Dispatcher) OnKey(key string, fn func()) {
	d.On(KeyPress, func(ev Event) bool {
		if ev.Key != key {
			return false
		}
		fn()
		return true
	})
}

// Dispatch runs the handlers for ev.Type in registration order and stops at
// the first one that consumes the event. It returns false when none did.
func (d *Dispatcher) Dispatch(ev Event) bool {
	for _, h := range d.handlers[ev.Type] {
		if h(ev) {
			return true
		}
	}
	return false
}
