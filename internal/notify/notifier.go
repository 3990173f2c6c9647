// Package notify delivers formatted reports to an external channel.
// The scheduler only depends on the Notifier interface; delivery failures
// surface as errors and are never retried at the cycle level.
package notify

import "context"

// Notifier delivers a formatted text report.
type Notifier interface {
	Deliver(ctx context.Context, text string) error
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, text string) error

// Deliver implements Notifier.
func (f Func) Deliver(ctx context.Context, text string) error {
	return f(ctx, text)
}
