package platform

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lucent3d/lucent/core"
)

// TermWindow adapts a tcell terminal screen to the Window interface for
// debug builds: key and resize events become platform events, Ctrl+C and
// Escape become close requests.
type TermWindow struct {
	screen tcell.Screen
	events chan Event
	stop   chan struct{}
}

// NewTermWindow initializes a terminal screen and starts the event pump
func NewTermWindow() (*TermWindow, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	w := &TermWindow{
		screen: screen,
		events: make(chan Event, 64),
		stop:   make(chan struct{}),
	}
	core.Go(w.pump)
	return w, nil
}

// pump translates tcell events into platform events until stopped
func (w *TermWindow) pump() {
	for {
		select {
		case <-w.stop:
			return
		default:
		}

		ev := w.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}

		switch tev := ev.(type) {
		case *tcell.EventKey:
			switch tev.Key() {
			case tcell.KeyCtrlC, tcell.KeyEscape:
				w.push(Event{Kind: EventClose})
			case tcell.KeyRune:
				w.push(Event{Kind: EventKey, Key: tev.Rune()})
			}
		case *tcell.EventResize:
			width, height := tev.Size()
			w.push(Event{Kind: EventResize, Width: width, Height: height})
		}
	}
}

// push drops events when the frame loop is far behind rather than blocking
// the pump
func (w *TermWindow) push(ev Event) {
	select {
	case w.events <- ev:
	default:
	}
}

func (w *TermWindow) Poll() []Event {
	var out []Event
	for {
		select {
		case ev := <-w.events:
			out = append(out, ev)
		default:
			return out
		}
	}
}

// Screen exposes the underlying terminal for debug overlays
func (w *TermWindow) Screen() tcell.Screen {
	return w.screen
}

func (w *TermWindow) Close() error {
	close(w.stop)
	w.screen.Fini()
	return nil
}
