package db

import (
	"database/sql"
	"time"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/types"
)

const commentColumns = `guid, project_guid, user_guid, content, upvotes, created_at`

const commentColumnsAliased = `c.guid, c.project_guid, c.user_guid, c.content, c.upvotes, c.created_at`

// CommentWithAuthor is a comment row joined with its author's profile.
type CommentWithAuthor struct {
	types.Comment
	AuthorName      string
	AuthorAvatarURL *string
	AuthorRole      types.Role
}

// CreateComment inserts a new comment row and bumps the owning project's
// comment_count. The count lives here, not in callers: it mirrors the
// store-side trigger the hosted backend used.
func CreateComment(db *sql.DB, comment types.Comment) (types.Comment, error) {
	guid, err := generateUniqueGUIDForTable(db, "fbl_comments", core.GUIDPrefixComment)
	if err != nil {
		return types.Comment{}, err
	}

	ts := comment.CreatedAt
	if ts == 0 {
		ts = time.Now().Unix()
	}

	tx, err := db.Begin()
	if err != nil {
		return types.Comment{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO fbl_comments (guid, project_guid, user_guid, content, upvotes, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
	`, guid, comment.ProjectID, comment.AuthorID, comment.Content, ts)
	if err != nil {
		return types.Comment{}, err
	}

	_, err = tx.Exec(`
		UPDATE fbl_projects
		SET comment_count = (SELECT COUNT(*) FROM fbl_comments WHERE project_guid = ?)
		WHERE guid = ?
	`, comment.ProjectID, comment.ProjectID)
	if err != nil {
		return types.Comment{}, err
	}

	if err := tx.Commit(); err != nil {
		return types.Comment{}, err
	}

	created := comment
	created.ID = guid
	created.Upvotes = 0
	created.CreatedAt = ts
	return created, nil
}

// GetComment returns a comment by guid, or nil if absent.
func GetComment(db *sql.DB, guid string) (*types.Comment, error) {
	row := db.QueryRow("SELECT "+commentColumns+" FROM fbl_comments WHERE guid = ?", guid)
	var c types.Comment
	err := row.Scan(&c.ID, &c.ProjectID, &c.AuthorID, &c.Content, &c.Upvotes, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCommentsForProject returns every comment row for a project joined
// with its author profile, ordered by created_at. The caller decides the
// direction: FAQ views present oldest first, everything else newest first.
func GetCommentsForProject(db *sql.DB, projectGUID string, ascending bool) ([]CommentWithAuthor, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}

	rows, err := db.Query(`
		SELECT `+commentColumnsAliased+`, pr.full_name, pr.avatar_url, pr.user_type
		FROM fbl_comments c
		LEFT JOIN fbl_profiles pr ON pr.guid = c.user_guid
		WHERE c.project_guid = ?
		ORDER BY c.created_at `+order+`, c.guid `+order, projectGUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []CommentWithAuthor
	for rows.Next() {
		var c CommentWithAuthor
		var name sql.NullString
		var role sql.NullString
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.AuthorID, &c.Content, &c.Upvotes, &c.CreatedAt, &name, &c.AuthorAvatarURL, &role); err != nil {
			return nil, err
		}
		c.AuthorName = name.String
		c.AuthorRole = types.ParseRole(role.String)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}
