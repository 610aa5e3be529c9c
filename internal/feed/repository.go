package feed

import (
	"database/sql"
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/types"
)

// Service exposes the logical post views and mutations over the record
// store. All presentation-layer access goes through ListPosts, SubmitPost
// and the vote toggles; raw rows and content markers never leave here.
type Service struct {
	db    *sql.DB
	cache *ViewCache
}

// NewService creates a feed service over an open store.
func NewService(conn *sql.DB) (*Service, error) {
	cache, err := NewViewCache()
	if err != nil {
		return nil, err
	}
	return &Service{db: conn, cache: cache}, nil
}

// ListPosts returns the decoded posts for one project view. A nil kind
// returns every kind merged, newest first. FAQ views are oldest first;
// everything else newest first. The result is a pure projection of the
// stored rows: the same rows always decode to the same posts.
func (s *Service) ListPosts(projectID string, kind *types.PostKind) ([]types.Post, error) {
	view := mergedView
	if kind != nil {
		view = string(*kind)
	}
	if posts, ok := s.cache.Get(projectID, view); ok {
		return posts, nil
	}

	ascending := kind != nil && *kind == types.KindFAQ
	rows, err := db.GetCommentsForProject(s.db, projectID, ascending)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]types.Post, 0, len(rows))
	for _, row := range rows {
		post := decodeRow(row)
		if kind != nil && post.Kind != *kind {
			continue
		}
		posts = append(posts, post)
	}

	s.cache.Put(projectID, view, posts)
	return posts, nil
}

// InvalidateProject drops every cached view for a project.
func (s *Service) InvalidateProject(projectID string) {
	s.cache.InvalidateProject(projectID)
}

// PurgeCache drops every cached view. The store watcher calls this when
// another session wrote to the database.
func (s *Service) PurgeCache() {
	s.cache.Purge()
}

func decodeRow(row db.CommentWithAuthor) types.Post {
	decoded := core.DecodePost(row.Content)
	return types.Post{
		ID:              row.ID,
		ProjectID:       row.ProjectID,
		AuthorID:        row.AuthorID,
		AuthorName:      row.AuthorName,
		AuthorAvatarURL: row.AuthorAvatarURL,
		AuthorRole:      row.AuthorRole,
		Kind:            decoded.Kind,
		Title:           decoded.Title,
		Body:            decoded.Body,
		Upvotes:         row.Upvotes,
		CreatedAt:       row.CreatedAt,
	}
}
