package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

// MySQLLedger is a MySQL implementation of the CodeLedger interface
type MySQLLedger struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLLedger creates a new MySQL ledger
func NewMySQLLedger(dsn string, logger *zap.Logger) (*MySQLLedger, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS notified_codes (
			code VARCHAR(32) PRIMARY KEY,
			notified_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLLedger{
		db:     db,
		logger: logger,
	}, nil
}

// Load returns the full set of already-notified codes
func (l *MySQLLedger) Load(ctx context.Context) (map[string]struct{}, error) {
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
func (l *MySQLLedger) Record(ctx context.Context, code string) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT IGNORE INTO notified_codes (code) VALUES (?)
	`, strings.ToUpper(code))

	if err != nil {
		return fmt.Errorf("failed to insert notified code: %w", err)
	}

	l.logger.Info("Saved notified code", zap.String("code", code))
	return nil
}

// Stop closes the database connection
func (l *MySQLLedger) Stop() {
	if err := l.db.Close(); err != nil {
		l.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}
