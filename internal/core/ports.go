package core

import (
	"context"
)

// PostSource defines the interface for fetching posts from a forum
type PostSource interface {
	// Fetch returns the newest posts from all monitored communities
	Fetch(ctx context.Context) ([]Post, error)
}

// Notifier defines the interface for delivering a one-line alert per code.
// Delivery is best effort; failures are reported as false, never as an error.
type Notifier interface {
	Notify(ctx context.Context, code string) bool
}

// CodeLedger defines the interface for the durable record of notified codes
type CodeLedger interface {
	// Load returns the full set of already-notified codes
	Load(ctx context.Context) (map[string]struct{}, error)

	// Record durably appends a newly notified code
	Record(ctx context.Context, code string) error
}
