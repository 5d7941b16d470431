package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLiteLedger is a SQLite implementation of the CodeLedger interface
type SQLiteLedger struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteLedger creates a new SQLite ledger
func NewSQLiteLedger(dbPath string, logger *zap.Logger) (*SQLiteLedger, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS notified_codes (
			code TEXT PRIMARY KEY,
			notified_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteLedger{
		db:     db,
		logger: logger,
	}, nil
}

// Load returns the full set of already-notified codes
func (l *SQLiteLedger) Load(ctx context.Context) (map[string]struct{}, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT code FROM notified_codes`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notified codes: %w", err)
	}
	defer rows.Close()

	codes := make(map[string]struct{})
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan notified code: %w", err)
		}
		codes[strings.ToUpper(code)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read notified codes: %w", err)
	}

	return codes, nil
}

// Record appends a newly notified code
func (l *SQLiteLedger) Record(ctx context.Context, code string) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO notified_codes (code, notified_at)
		VALUES (?, ?)
	`, strings.ToUpper(code), time.Now().Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("failed to insert notified code: %w", err)
	}

	l.logger.Info("Saved notified code", zap.String("code", code))
	return nil
}

// Stop closes the database connection
func (l *SQLiteLedger) Stop() {
	if err := l.db.Close(); err != nil {
		l.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}
