package core

import (
	"fmt"
	"os"
	"runtime/debug"
)

// HandleCrash prints the panic value and stack trace to stderr and exits.
// Used by background goroutines (event pumps) where a panic would otherwise
// be swallowed or leave the terminal in a broken state.
func HandleCrash(r any) {
	if r == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "crash: %v\n", r)
	fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword for long-lived engine goroutines.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
