package feed

import (
	"fmt"
	"strings"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/types"
)

// SubmitPost encodes a logical post and writes it as one comment row,
// then invalidates every cached view for the project: the discussion,
// update, FAQ and dev post feeds plus the merged feed all read the table
// this row landed in. Returns the decoded post so the caller can render
// it without a re-fetch.
func (s *Service) SubmitPost(projectID, authorID string, kind types.PostKind, title, body string) (types.Post, error) {
	if authorID == "" {
		return types.Post{}, ErrUnauthenticated
	}

	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)

	switch kind {
	case types.KindDiscussion:
		title = ""
	case types.KindUpdate, types.KindFAQ, types.KindDevPost:
		if title == "" {
			return types.Post{}, fmt.Errorf("%w: %s requires a title", ErrInvalidInput, kind)
		}
	default:
		return types.Post{}, fmt.Errorf("%w: unknown post kind %q", ErrInvalidInput, string(kind))
	}
	if body == "" {
		return types.Post{}, fmt.Errorf("%w: body must not be empty", ErrInvalidInput)
	}

	author, err := db.GetProfile(s.db, authorID)
	if err != nil {
		return types.Post{}, fmt.Errorf("submit post: %w", err)
	}
	if author == nil {
		return types.Post{}, ErrUnauthenticated
	}

	project, err := db.GetProject(s.db, projectID)
	if err != nil {
		return types.Post{}, fmt.Errorf("submit post: %w", err)
	}
	if project == nil {
		return types.Post{}, fmt.Errorf("%w: project %s not found", ErrInvalidInput, projectID)
	}

	content := core.EncodePost(kind, title, body)
	row, err := db.CreateComment(s.db, types.Comment{
		ProjectID: projectID,
		AuthorID:  authorID,
		Content:   content,
	})
	if err != nil {
		return types.Post{}, fmt.Errorf("submit post: %w", err)
	}

	s.cache.InvalidateProject(projectID)

	decoded := core.DecodePost(row.Content)
	return types.Post{
		ID:              row.ID,
		ProjectID:       row.ProjectID,
		AuthorID:        row.AuthorID,
		AuthorName:      author.FullName,
		AuthorAvatarURL: author.AvatarURL,
		AuthorRole:      author.Role,
		Kind:            decoded.Kind,
		Title:           decoded.Title,
		Body:            decoded.Body,
		Upvotes:         row.Upvotes,
		CreatedAt:       row.CreatedAt,
	}, nil
}
