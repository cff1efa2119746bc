package platform

import (
	"sync"
)

// Headless is a Window with no backing display. Events can be injected for
// tests; Poll drains them in arrival order.
type Headless struct {
	mu      sync.Mutex
	pending []Event
}

// NewHeadless creates an event-less window for headless operation
func NewHeadless() *Headless {
	return &Headless{}
}

// Inject queues an event for the next Poll
func (h *Headless) Inject(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending = append(h.pending, ev)
}

func (h *Headless) Poll() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.pending) == 0 {
		return nil
	}
	out := h.pending
	h.pending = nil
	return out
}

func (h *Headless) Close() error {
	return nil
}
