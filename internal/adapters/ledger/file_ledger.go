package ledger

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// FileLedger is the default ledger: a plain newline-delimited list of
// upper-cased codes, append-only, loaded wholesale at startup.
type FileLedger struct {
	path   string
	logger *zap.Logger
}

// NewFileLedger creates a new file ledger. The file is created up front so
// permission problems fail at startup instead of at the first confirmed code.
func NewFileLedger(path string, logger *zap.Logger) (*FileLedger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot create or access codes file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("cannot close codes file %s: %w", path, err)
	}

	return &FileLedger{
		path:   path,
		logger: logger,
	}, nil
}

// Load returns the full set of already-notified codes
func (l *FileLedger) Load(_ context.Context) (map[string]struct{}, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open codes file: %w", err)
	}
	defer f.Close()

	codes := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		code := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if code == "" {
			continue
		}
		codes[code] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read codes file: %w", err)
	}

	return codes, nil
}

// Record appends a newly notified code
func (l *FileLedger) Record(_ context.Context, code string) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open codes file for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.ToUpper(code) + "\n"); err != nil {
		return fmt.Errorf("failed to append code %s: %w", code, err)
	}

	l.logger.Info("Saved notified code", zap.String("code", code))
	return nil
}
