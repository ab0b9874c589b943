package engine

import (
	"hellocube/internal/logger"
)

// KeyCode identifies a key in the dispatcher's own closed code space. The
// values mirror the window system's layout so translating an event is a
// plain conversion, but nothing outside this package depends on that.
type KeyCode int

// Key codes the engine binds actions to.
const (
	Key0      KeyCode = 48
	Key9      KeyCode = 57
	KeyEscape KeyCode = 256

	// KeyCodeLast is the highest code the dispatcher tracks; anything
	// outside [0, KeyCodeLast] is reported and ignored.
	KeyCodeLast KeyCode = 348
)

// KeyForDigit returns the key code of a digit key 0-9
func KeyForDigit(digit int) KeyCode {
	return Key0 + KeyCode(digit)
}

// Dispatcher turns raw key events into edge-triggered actions. Each key is
// either held or released; a bound action fires exactly once per
// released-to-held transition, so holding a key (or key repeat) does not
// re-trigger it.
type Dispatcher struct {
	log      *logger.Logger
	held     map[KeyCode]bool
	bindings map[KeyCode]func()
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		log:      log,
		held:     make(map[KeyCode]bool),
		bindings: make(map[KeyCode]func()),
	}
}

// Bind registers an action to fire on the key's press edge
func (d *Dispatcher) Bind(code KeyCode, action func()) {
	d.bindings[code] = action
}

// Handle processes one key event. pressed covers both press and repeat;
// only the first of an unbroken run fires the binding.
func (d *Dispatcher) Handle(code KeyCode, pressed bool) {
	if code < 0 || code > KeyCodeLast {
		d.log.Warnf("invalid key code %d?!", code)
		return
	}

	if !pressed {
		d.held[code] = false
		return
	}

	if !d.held[code] {
		if action, ok := d.bindings[code]; ok {
			action()
		}
	}
	d.held[code] = true
}

// Held reports whether a key is currently down
func (d *Dispatcher) Held(code KeyCode) bool {
	return d.held[code]
}
