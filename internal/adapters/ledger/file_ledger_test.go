package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	l, err := NewFileLedger(path, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()

	codes, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, codes)

	require.NoError(t, l.Record(ctx, "WARHAMMER40K"))
	require.NoError(t, l.Record(ctx, "tacticus2025"))

	codes, err = l.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, codes, "WARHAMMER40K")
	assert.Contains(t, codes, "TACTICUS2025", "codes are stored upper-cased")
	assert.Len(t, codes, 2)

	// A fresh ledger over the same file sees the full history
	reopened, err := NewFileLedger(path, zap.NewNop())
	require.NoError(t, err)
	codes, err = reopened.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, codes, 2)
}

func TestFileLedgerSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(path, []byte("AAA111\n\n  \nbbb222\n"), 0644))

	l, err := NewFileLedger(path, zap.NewNop())
	require.NoError(t, err)

	codes, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, codes, 2)
	assert.Contains(t, codes, "BBB222")
}

func TestFileLedgerUnwritablePath(t *testing.T) {
	_, err := NewFileLedger(filepath.Join(t.TempDir(), "missing", "codes.txt"), zap.NewNop())
	assert.Error(t, err, "permission problems surface at startup")
}

func TestMemoryLedger(t *testing.T) {
	l := NewMemoryLedger()
	ctx := context.Background()

	require.NoError(t, l.Record(ctx, "aaa111"))

	codes, err := l.Load(ctx)
	require.NoError(t, err)
	assert.Contains(t, codes, "AAA111")

	// Load returns a copy, not the live set
	codes["BBB222"] = struct{}{}
	codes, err = l.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, codes, "BBB222")
}
