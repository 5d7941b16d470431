package poller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/core"
)

type countingSource struct {
	mu    sync.Mutex
	calls int
}

func (s *countingSource) Fetch(_ context.Context) ([]core.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return nil, nil
}

func (s *countingSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type nopLedger struct{}

func (nopLedger) Load(_ context.Context) (map[string]struct{}, error) {
	return map[string]struct{}{}, nil
}

func (nopLedger) Record(_ context.Context, _ string) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(_ context.Context, _ string) bool { return true }

type nopTrust struct{}

func (nopTrust) IsTrusted(_ string) bool { return false }

func newTestPoller(t *testing.T, source core.PostSource, interval time.Duration) *Poller {
	t.Helper()

	logger := zap.NewNop()
	extractor, err := core.NewExtractor(`\b[A-Z0-9-]{3,25}\b`, `^[A-Z]{3}-[0-9]{2,3}-[A-Z]{3}$`, nil, logger)
	require.NoError(t, err)
	classifier, err := core.NewBodyHintClassifier(nil, logger)
	require.NoError(t, err)
	filter := core.NewPostFilter(nil, logger)

	svc := core.NewWatchService(source, nopLedger{}, nopNotifier{}, extractor, classifier, filter, nopTrust{}, logger, 2)
	return New(svc, interval, logger)
}

func TestPollerRunsCycles(t *testing.T) {
	source := &countingSource{}
	p := newTestPoller(t, source, 10*time.Millisecond)

	require.NoError(t, p.Start())
	time.Sleep(55 * time.Millisecond)
	require.NoError(t, p.Stop())

	assert.GreaterOrEqual(t, source.count(), 2, "multiple cycles separated by the idle delay")
}

func TestPollerStopWithoutStart(t *testing.T) {
	p := newTestPoller(t, &countingSource{}, time.Second)
	assert.NoError(t, p.Stop())
}

func TestPollerStopInterruptsIdle(t *testing.T) {
	source := &countingSource{}
	p := newTestPoller(t, source, time.Hour)

	require.NoError(t, p.Start())
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not interrupt the idle delay")
	}
	assert.Equal(t, 1, source.count())
}
