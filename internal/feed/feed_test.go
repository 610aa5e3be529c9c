package feed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/types"
	_ "modernc.org/sqlite"
)

// newTestService creates a feed service over a fresh store.
func newTestService(t *testing.T) (*Service, *sql.DB) {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.InitSchema(conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	service, err := NewService(conn)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return service, conn
}

// seedAuthorAndProject creates a signed-in author and a project to post on.
func seedAuthorAndProject(t *testing.T, conn *sql.DB) (types.Profile, types.Project) {
	t.Helper()

	author, err := db.EnsureProfile(conn, "usr-author1", "Author", types.RoleBuilder)
	if err != nil {
		t.Fatalf("seed author: %v", err)
	}
	project, err := db.CreateProject(conn, types.Project{
		Title:       "Test Project",
		Description: "a project under test",
		Category:    "other",
		AuthorID:    author.ID,
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return author, project
}

// insertRaw writes an encoded comment row directly, bypassing the
// coordinator and its cache invalidation.
func insertRaw(t *testing.T, conn *sql.DB, projectID, authorID, content string, createdAt int64) types.Comment {
	t.Helper()
	comment, err := db.CreateComment(conn, types.Comment{
		ProjectID: projectID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("insert raw comment: %v", err)
	}
	return comment
}

func kindPtr(kind types.PostKind) *types.PostKind {
	return &kind
}

func postIDs(posts []types.Post) map[string]bool {
	ids := make(map[string]bool, len(posts))
	for _, post := range posts {
		ids[post.ID] = true
	}
	return ids
}
