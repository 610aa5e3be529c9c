package db

import (
	"database/sql"

	"github.com/feedbacklab/feedbacklab/internal/core"
	_ "modernc.org/sqlite"
)

// OpenDatabase opens the SQLite database for a workspace.
func OpenDatabase(ws core.Workspace) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", ws.DBPath)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = conn.Close()
		return nil, err
	}
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}
