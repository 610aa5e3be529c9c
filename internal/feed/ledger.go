package feed

import (
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/types"
)

// ToggleProjectVote flips the (project, voter) vote and returns the
// authoritative state. The toggle is idempotent against races: a
// concurrent duplicate insert lands on the uniqueness constraint and is
// treated as "already voted"; a concurrent delete that left zero rows is
// treated as "already unvoted". The returned count is recomputed from the
// ledger rows, never from the optimistic client state.
func (s *Service) ToggleProjectVote(projectID, voterID string) (types.VoteState, error) {
	if voterID == "" {
		return types.VoteState{}, ErrUnauthenticated
	}

	project, err := db.GetProject(s.db, projectID)
	if err != nil {
		return types.VoteState{}, fmt.Errorf("toggle vote: %w", err)
	}
	if project == nil {
		return types.VoteState{}, fmt.Errorf("%w: project %s not found", ErrInvalidInput, projectID)
	}

	voted, err := toggleVote(
		func() (bool, error) { return db.HasProjectVote(s.db, projectID, voterID) },
		func() error { return db.AddProjectVote(s.db, projectID, voterID) },
		func() (int64, error) { return db.RemoveProjectVote(s.db, projectID, voterID) },
	)
	if err != nil {
		return types.VoteState{}, fmt.Errorf("toggle vote: %w", err)
	}

	count, err := db.SyncProjectUpvotes(s.db, projectID)
	if err != nil {
		return types.VoteState{}, fmt.Errorf("toggle vote: %w", err)
	}
	return types.VoteState{Voted: voted, Count: count}, nil
}

// ToggleCommentVote flips the (comment, voter) vote with the same
// idempotence contract as ToggleProjectVote. Because the comment's
// upvote count is part of every decoded post view, the owning project's
// cached views are invalidated.
func (s *Service) ToggleCommentVote(commentID, voterID string) (types.VoteState, error) {
	if voterID == "" {
		return types.VoteState{}, ErrUnauthenticated
	}

	comment, err := db.GetComment(s.db, commentID)
	if err != nil {
		return types.VoteState{}, fmt.Errorf("toggle vote: %w", err)
	}
	if comment == nil {
		return types.VoteState{}, fmt.Errorf("%w: comment %s not found", ErrInvalidInput, commentID)
	}

	voted, err := toggleVote(
		func() (bool, error) { return db.HasCommentVote(s.db, commentID, voterID) },
		func() error { return db.AddCommentVote(s.db, commentID, voterID) },
		func() (int64, error) { return db.RemoveCommentVote(s.db, commentID, voterID) },
	)
	if err != nil {
		return types.VoteState{}, fmt.Errorf("toggle vote: %w", err)
	}

	count, err := db.SyncCommentUpvotes(s.db, commentID)
	if err != nil {
		return types.VoteState{}, fmt.Errorf("toggle vote: %w", err)
	}

	s.cache.InvalidateProject(comment.ProjectID)

	return types.VoteState{Voted: voted, Count: count}, nil
}

func toggleVote(has func() (bool, error), add func() error, remove func() (int64, error)) (bool, error) {
	voted, err := has()
	if err != nil {
		return false, err
	}

	if voted {
		// Zero rows deleted means another session got there first;
		// the end state is the same.
		if _, err := remove(); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := add(); err != nil {
		if db.IsUniqueConstraintErr(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}
