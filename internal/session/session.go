// Package session resolves the current user for mutation paths. It is
// the stand-in for the hosted auth provider: login stores a user id,
// Current reads it back, and everything else treats the result as opaque.
package session

import (
	"database/sql"
	"os"

	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/types"
)

const sessionUserKey = "session_user"

// EnvUser overrides the stored session when set (loaded from .env by the
// CLI entrypoint).
const EnvUser = "FBL_USER"

// Current returns the signed-in profile, or nil when signed out.
func Current(conn *sql.DB) (*types.Profile, error) {
	userID := os.Getenv(EnvUser)
	if userID == "" {
		stored, err := db.GetConfig(conn, sessionUserKey)
		if err != nil {
			return nil, err
		}
		userID = stored
	}
	if userID == "" {
		return nil, nil
	}
	return db.GetProfile(conn, userID)
}

// Login ensures a profile exists for id and stores it as the session
// user. Profile creation is idempotent; repeated logins with the same id
// reuse the existing row.
func Login(conn *sql.DB, id, fullName string, role types.Role) (types.Profile, error) {
	profile, err := db.EnsureProfile(conn, id, fullName, role)
	if err != nil {
		return types.Profile{}, err
	}
	if err := db.SetConfig(conn, sessionUserKey, profile.ID); err != nil {
		return types.Profile{}, err
	}
	return profile, nil
}

// Logout clears the stored session user.
func Logout(conn *sql.DB) error {
	return db.DeleteConfig(conn, sessionUserKey)
}
