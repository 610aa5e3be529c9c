package feed

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/feedbacklab/feedbacklab/internal/types"
)

const cacheSize = 128

// mergedView is the cache key segment for the unfiltered feed.
const mergedView = "all"

// ViewCache holds decoded post lists per (project, view). One physical
// comment row backs up to five views, so a single write must drop every
// view key for its project. See InvalidateProject.
type ViewCache struct {
	entries *lru.Cache[string, []types.Post]
}

// NewViewCache creates an empty view cache.
func NewViewCache() (*ViewCache, error) {
	entries, err := lru.New[string, []types.Post](cacheSize)
	if err != nil {
		return nil, err
	}
	return &ViewCache{entries: entries}, nil
}

// Get returns the cached posts for a view, if present.
func (c *ViewCache) Get(projectID, view string) ([]types.Post, bool) {
	return c.entries.Get(viewKey(projectID, view))
}

// Put stores the posts for a view.
func (c *ViewCache) Put(projectID, view string, posts []types.Post) {
	c.entries.Add(viewKey(projectID, view), posts)
}

// InvalidateProject drops every view for a project: the four kind views
// and the merged view all read the same backing rows.
func (c *ViewCache) InvalidateProject(projectID string) {
	for _, kind := range types.Kinds() {
		c.entries.Remove(viewKey(projectID, string(kind)))
	}
	c.entries.Remove(viewKey(projectID, mergedView))
}

// Purge drops everything. Used when the store changed underneath us.
func (c *ViewCache) Purge() {
	c.entries.Purge()
}

func viewKey(projectID, view string) string {
	return projectID + "/" + view
}
