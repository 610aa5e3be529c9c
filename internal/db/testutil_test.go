package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/feedbacklab/feedbacklab/internal/types"
	_ "modernc.org/sqlite"
)

// openTestDB creates a fresh store in a temp directory with the full
// schema applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	if err := InitSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return conn
}

// seedProfile creates a profile fixture.
func seedProfile(t *testing.T, conn *sql.DB, id, name string, role types.Role) types.Profile {
	t.Helper()
	profile, err := EnsureProfile(conn, id, name, role)
	if err != nil {
		t.Fatalf("seed profile %s: %v", id, err)
	}
	return profile
}

// seedProject creates a project fixture owned by userID.
func seedProject(t *testing.T, conn *sql.DB, userID, title string) types.Project {
	t.Helper()
	project, err := CreateProject(conn, types.Project{
		Title:       title,
		Description: "a test project",
		Category:    "other",
		AuthorID:    userID,
	})
	if err != nil {
		t.Fatalf("seed project %q: %v", title, err)
	}
	return project
}

// seedComment creates a comment fixture with an explicit timestamp so
// ordering tests are deterministic.
func seedComment(t *testing.T, conn *sql.DB, projectID, userID, content string, createdAt int64) types.Comment {
	t.Helper()
	comment, err := CreateComment(conn, types.Comment{
		ProjectID: projectID,
		AuthorID:  userID,
		Content:   content,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("seed comment: %v", err)
	}
	return comment
}

func strPtr(s string) *string {
	return &s
}
