// Package context is a set of shorter names for the very stuttery context
// library, plus a signal bound context for servers.
package context

import (
	"context"
	"os"
	"os/signal"
)

type (
	// T is a context.Context.
	T = context.Context
	// F is a context.CancelFunc.
	F = context.CancelFunc
)

var (
	// Bg is a context.Background.
	Bg = context.Background
	// Cancel is a context.WithCancel.
	Cancel = context.WithCancel
	// Timeout is a context.WithTimeout.
	Timeout = context.WithTimeout
	// Canceled is the error returned by a context that was canceled.
	Canceled = context.Canceled
)

// Signal returns a context that is canceled when one of the signals arrives,
// by default os.Interrupt.
func Signal(parent T, sig ...os.Signal) (c T, cancel F) {
	if len(sig) == 0 {
		sig = []os.Signal{os.Interrupt}
	}
	return signal.NotifyContext(parent, sig...)
}
