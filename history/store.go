// Package history persists a record of each formatting request the
// server package serves, through database/sql and go-sql-driver/mysql —
// adapted from interpreter.MySQLiObject's connection-wrapper idiom
// (Open, Ping to fail fast, Errno/Error bookkeeping) into a narrower
// write-only store. Recording history is a best-effort observability
// nicety: a Store failure never blocks or fails a format request.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Record is one row describing a single served format request.
type Record struct {
	RequestedAt time.Time
	InputLen    int
	OutputLen   int
	Duration    time.Duration
	IndentSize  int
	IndentChar  string
}

// Store wraps a *sql.DB opened against a MySQL format_history table
// (see schema.sql).
type Store struct {
	db *sql.DB
}

// Open connects to host:port/database using user/password, matching the
// DSN shape interpreter.NewMySQLi builds, and pings immediately so a
// misconfigured DSN fails at startup rather than on the first request.
func Open(host, user, password, database string, port int) (*Store, error) {
	if port == 0 {
		port = 3306
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", user, password, host, port, database)
	return OpenDSN(dsn)
}

// OpenDSN connects using a pre-built DSN, e.g. from JSBEAUTIFY_MYSQL_DSN.
func OpenDSN(dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one history row. The caller should bound ctx with a
// short timeout — history recording must never be the reason a format
// request is slow.
func (s *Store) Record(ctx context.Context, r Record) error {
	if s == nil || s.db == nil {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO format_history
			(requested_at, input_len, output_len, duration_ms, indent_size, indent_char)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.RequestedAt, r.InputLen, r.OutputLen, r.Duration.Milliseconds(), r.IndentSize, r.IndentChar,
	)
	return err
}
