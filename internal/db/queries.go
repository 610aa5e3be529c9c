package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"modernc.org/sqlite"
)

const (
	sqliteConstraint       = 19
	sqliteConstraintUnique = 2067
)

// IsUniqueConstraintErr reports whether err is a sqlite uniqueness
// violation. The vote ledger relies on this to absorb duplicate-insert
// races into "already voted".
func IsUniqueConstraintErr(err error) bool {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqliteConstraint || code == sqliteConstraintUnique
	}
	return false
}

// GetConfig returns a config value.
func GetConfig(db *sql.DB, key string) (string, error) {
	row := db.QueryRow("SELECT value FROM fbl_config WHERE key = ?", key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetConfig sets a config value.
func SetConfig(db *sql.DB, key, value string) error {
	_, err := db.Exec("INSERT OR REPLACE INTO fbl_config (key, value) VALUES (?, ?)", key, value)
	return err
}

// DeleteConfig removes a config key.
func DeleteConfig(db *sql.DB, key string) error {
	_, err := db.Exec("DELETE FROM fbl_config WHERE key = ?", key)
	return err
}

// GetAllConfig returns all config entries.
func GetAllConfig(db *sql.DB) ([]types.ConfigEntry, error) {
	rows, err := db.Query("SELECT key, value FROM fbl_config ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []types.ConfigEntry
	for rows.Next() {
		var entry types.ConfigEntry
		if err := rows.Scan(&entry.Key, &entry.Value); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// generateUniqueGUIDForTable generates a GUID that does not collide with
// an existing row in the given table.
func generateUniqueGUIDForTable(db *sql.DB, table, prefix string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		guid, err := core.GenerateGUID(prefix)
		if err != nil {
			return "", err
		}
		var exists int
		err = db.QueryRow(fmt.Sprintf("SELECT 1 FROM %s WHERE guid = ?", table), guid).Scan(&exists)
		if err == sql.ErrNoRows {
			return guid, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("guid collision retries exhausted for %s", table)
}
