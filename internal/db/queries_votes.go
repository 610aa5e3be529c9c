package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/feedbacklab/feedbacklab/internal/core"
)

// voteTarget describes one vote ledger. Projects and comments share the
// same row shape and uniqueness rule, differing only in table names.
type voteTarget struct {
	voteTable    string
	targetColumn string
	parentTable  string
}

var (
	projectVotes = voteTarget{voteTable: "fbl_project_votes", targetColumn: "project_guid", parentTable: "fbl_projects"}
	commentVotes = voteTarget{voteTable: "fbl_comment_votes", targetColumn: "comment_guid", parentTable: "fbl_comments"}
)

// AddProjectVote inserts a project vote row. A uniqueness violation is
// returned as-is; callers detect it with IsUniqueConstraintErr.
func AddProjectVote(db *sql.DB, projectGUID, userGUID string) error {
	return addVote(db, projectVotes, projectGUID, userGUID)
}

// RemoveProjectVote deletes a project vote row, reporting how many rows
// matched. Zero rows is not an error.
func RemoveProjectVote(db *sql.DB, projectGUID, userGUID string) (int64, error) {
	return removeVote(db, projectVotes, projectGUID, userGUID)
}

// HasProjectVote checks whether a voter has an active project vote.
func HasProjectVote(db *sql.DB, projectGUID, userGUID string) (bool, error) {
	return hasVote(db, projectVotes, projectGUID, userGUID)
}

// CountProjectVotes counts vote rows for a project.
func CountProjectVotes(db *sql.DB, projectGUID string) (int, error) {
	return countVotes(db, projectVotes, projectGUID)
}

// SyncProjectUpvotes rewrites the denormalized upvotes column from the
// ledger row population.
func SyncProjectUpvotes(db *sql.DB, projectGUID string) (int, error) {
	return syncUpvotes(db, projectVotes, projectGUID)
}

// AddCommentVote inserts a comment vote row.
func AddCommentVote(db *sql.DB, commentGUID, userGUID string) error {
	return addVote(db, commentVotes, commentGUID, userGUID)
}

// RemoveCommentVote deletes a comment vote row.
func RemoveCommentVote(db *sql.DB, commentGUID, userGUID string) (int64, error) {
	return removeVote(db, commentVotes, commentGUID, userGUID)
}

// HasCommentVote checks whether a voter has an active comment vote.
func HasCommentVote(db *sql.DB, commentGUID, userGUID string) (bool, error) {
	return hasVote(db, commentVotes, commentGUID, userGUID)
}

// CountCommentVotes counts vote rows for a comment.
func CountCommentVotes(db *sql.DB, commentGUID string) (int, error) {
	return countVotes(db, commentVotes, commentGUID)
}

// SyncCommentUpvotes rewrites the denormalized upvotes column from the
// ledger row population.
func SyncCommentUpvotes(db *sql.DB, commentGUID string) (int, error) {
	return syncUpvotes(db, commentVotes, commentGUID)
}

func addVote(db *sql.DB, target voteTarget, targetGUID, userGUID string) error {
	guid, err := generateUniqueGUIDForTable(db, target.voteTable, core.GUIDPrefixVote)
	if err != nil {
		return err
	}
	_, err = db.Exec(fmt.Sprintf(`
		INSERT INTO %s (guid, %s, user_guid, created_at)
		VALUES (?, ?, ?, ?)
	`, target.voteTable, target.targetColumn), guid, targetGUID, userGUID, time.Now().Unix())
	return err
}

func removeVote(db *sql.DB, target voteTarget, targetGUID, userGUID string) (int64, error) {
	result, err := db.Exec(fmt.Sprintf(`
		DELETE FROM %s WHERE %s = ? AND user_guid = ?
	`, target.voteTable, target.targetColumn), targetGUID, userGUID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func hasVote(db *sql.DB, target voteTarget, targetGUID, userGUID string) (bool, error) {
	row := db.QueryRow(fmt.Sprintf(`
		SELECT 1 FROM %s WHERE %s = ? AND user_guid = ?
	`, target.voteTable, target.targetColumn), targetGUID, userGUID)
	var exists int
	err := row.Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func countVotes(db *sql.DB, target voteTarget, targetGUID string) (int, error) {
	row := db.QueryRow(fmt.Sprintf(`
		SELECT COUNT(*) FROM %s WHERE %s = ?
	`, target.voteTable, target.targetColumn), targetGUID)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func syncUpvotes(db *sql.DB, target voteTarget, targetGUID string) (int, error) {
	count, err := countVotes(db, target, targetGUID)
	if err != nil {
		return 0, err
	}
	_, err = db.Exec(fmt.Sprintf(`
		UPDATE %s SET upvotes = ? WHERE guid = ?
	`, target.parentTable), count, targetGUID)
	if err != nil {
		return 0, err
	}
	return count, nil
}
