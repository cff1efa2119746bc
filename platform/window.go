// Package platform defines the window/input collaborator boundary: a source
// of discrete per-frame events (resize, close request, key transitions).
// The engine forwards events to the Input system and inspects them only for
// quit and resize signals; it never interprets key codes.
package platform

// EventKind discriminates platform events
type EventKind int

const (
	EventKey EventKind = iota
	EventResize
	EventClose
)

// Event is one discrete platform occurrence
type Event struct {
	Kind EventKind

	// EventKey
	Key rune

	// EventResize
	Width, Height int
}

// Window supplies platform events to the frame loop.
// Poll must not block; it drains whatever arrived since the previous call.
type Window interface {
	Poll() []Event
	Close() error
}
