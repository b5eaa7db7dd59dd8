package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"todo-service/internal/todo/repository"
	"todo-service/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the todo domain.
// The schema is created on open when missing.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("todo/repository/sqlite: db is required")
	}

	r := &implRepository{db: db, l: l}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return r, nil
}

// Open opens the SQLite database at path. Use ":memory:" for tests.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func (r *implRepository) migrate() error {
	const schema = `
	CREATE TABLE IF NOT EXISTS todos (
		id        TEXT PRIMARY KEY,
		title     TEXT NOT NULL,
		completed BOOLEAN NOT NULL DEFAULT 0
	);`

	_, err := r.db.Exec(schema)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/sqlite.%s", method)
}
