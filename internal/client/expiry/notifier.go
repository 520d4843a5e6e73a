// Package expiry decouples detection of an unrecoverable auth failure
// from whatever surface tells the user to log in again.
package expiry

import (
	"context"
	"log/slog"
	"sync"
)

// Notifier latches a single session-expired event. Signal is idempotent
// until Acknowledge resets the latch, so many concurrent refresh
// failures surface exactly one notice.
type Notifier struct {
	mu       sync.Mutex
	signaled bool
	ch       chan struct{}
	clear    func(ctx context.Context)
	navigate func()
	logger   *slog.Logger
}

// NewNotifier builds a Notifier. clear drops the local session on the
// first Signal (so further requests go out unauthenticated); navigate
// runs on Acknowledge, typically sending the user back to login.
func NewNotifier(clear func(ctx context.Context), navigate func(), logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		ch:       make(chan struct{}, 1),
		clear:    clear,
		navigate: navigate,
		logger:   logger,
	}
}

// Signal marks the session as expired. The first call clears local
// session state and publishes one event; repeated calls before
// Acknowledge are no-ops.
func (n *Notifier) Signal(ctx context.Context) {
	n.mu.Lock()
	if n.signaled {
		n.mu.Unlock()
		return
	}
	n.signaled = true
	n.mu.Unlock()

	n.logger.Info("session expired, clearing local session")
	if n.clear != nil {
		n.clear(ctx)
	}

	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Acknowledge resets the latch and performs the navigation hook.
// Called by the consumer once the user has dismissed the notice.
func (n *Notifier) Acknowledge() {
	n.mu.Lock()
	wasSignaled := n.signaled
	n.signaled = false
	// drain a pending event so a stale one is not observed later
	select {
	case <-n.ch:
	default:
	}
	n.mu.Unlock()

	if wasSignaled && n.navigate != nil {
		n.navigate()
	}
}

// Signaled reports whether an expiry event is pending acknowledgement
func (n *Notifier) Signaled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.signaled
}

// C exposes the expiry event for select-based consumers
func (n *Notifier) C() <-chan struct{} {
	return n.ch
}
