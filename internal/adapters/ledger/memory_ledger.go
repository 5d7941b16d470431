package ledger

import (
	"context"
	"strings"
	"sync"
)

// MemoryLedger is a map-backed ledger for the one-shot CLI and tests
type MemoryLedger struct {
	mu    sync.RWMutex
	codes map[string]struct{}
}

// NewMemoryLedger creates a new in-memory ledger
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{codes: make(map[string]struct{})}
}

// Load returns a copy of the recorded codes
func (l *MemoryLedger) Load(_ context.Context) (map[string]struct{}, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	codes := make(map[string]struct{}, len(l.codes))
	for code := range l.codes {
		codes[code] = struct{}{}
	}
	return codes, nil
}

// Record stores a newly notified code
func (l *MemoryLedger) Record(_ context.Context, code string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.codes[strings.ToUpper(code)] = struct{}{}
	return nil
}
