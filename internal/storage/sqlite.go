package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const databaseFile = "netinv.db"

// SQLiteStorage is the SQLite-backed inventory store.
type SQLiteStorage struct {
	db *sql.DB
}

// Open opens (creating if needed) the inventory database in dataDir.
func Open(dataDir string) (*SQLiteStorage, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return OpenPath(filepath.Join(dataDir, databaseFile))
}

// OpenPath opens the database at path. ":memory:" yields a private
// in-memory database.
func OpenPath(path string) (*SQLiteStorage, error) {
	memory := path == ":memory:" || strings.Contains(path, "mode=memory")
	db, err := sql.Open("sqlite", dsn(path, memory))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if memory {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	ss := &SQLiteStorage{db: db}
	if err := ss.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return ss, nil
}

func dsn(path string, memory bool) string {
	pragmas := "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if !memory {
		pragmas += "&_pragma=journal_mode(WAL)"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	if path == ":memory:" {
		return "file::memory:" + sep + pragmas
	}
	return path + sep + pragmas
}

// Close closes the database.
func (ss *SQLiteStorage) Close() error {
	return ss.db.Close()
}

// InTx runs fn inside a single transaction. The transaction is committed
// when fn returns nil and rolled back otherwise.
func (ss *SQLiteStorage) InTx(ctx context.Context, fn func(Repo) error) error {
	tx, err := ss.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&queries{db: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queries implements Repo on top of a transaction.
type queries struct {
	db dbtx
}
