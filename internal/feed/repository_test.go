package feed

import (
	"testing"

	"github.com/feedbacklab/feedbacklab/internal/types"
)

func TestListPostsViewPartition(t *testing.T) {
	service, conn := newTestService(t)
	author, project := seedAuthorAndProject(t, conn)

	insertRaw(t, conn, project.ID, author.ID, "just a comment", 1000)
	insertRaw(t, conn, project.ID, author.ID, "UPDATE: v2\n\nshipped", 2000)
	insertRaw(t, conn, project.ID, author.ID, "FAQ: Is it free?\nANSWER: Yes.", 3000)
	insertRaw(t, conn, project.ID, author.ID, "DEVPOST: internals\n\nswitched stores", 4000)

	merged, err := service.ListPosts(project.ID, nil)
	if err != nil {
		t.Fatalf("ListPosts merged: %v", err)
	}
	if len(merged) != 4 {
		t.Fatalf("merged view has %d posts, want 4", len(merged))
	}

	// Every row lands in exactly one kind view, and the kind views
	// together cover the merged view.
	union := make(map[string]bool)
	for _, kind := range types.Kinds() {
		posts, err := service.ListPosts(project.ID, kindPtr(kind))
		if err != nil {
			t.Fatalf("ListPosts %s: %v", kind, err)
		}
		if len(posts) != 1 {
			t.Fatalf("%s view has %d posts, want 1", kind, len(posts))
		}
		if posts[0].Kind != kind {
			t.Fatalf("%s view contains a %s post", kind, posts[0].Kind)
		}
		if union[posts[0].ID] {
			t.Fatalf("post %s appears in two kind views", posts[0].ID)
		}
		union[posts[0].ID] = true
	}
	for id := range postIDs(merged) {
		if !union[id] {
			t.Fatalf("post %s in merged view but no kind view", id)
		}
	}
}

func TestListPostsDecodesFields(t *testing.T) {
	service, conn := newTestService(t)
	author, project := seedAuthorAndProject(t, conn)

	insertRaw(t, conn, project.ID, author.ID, "UPDATE: Beta launched\n\nWe shipped.", 1000)

	posts, err := service.ListPosts(project.ID, kindPtr(types.KindUpdate))
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}

	post := posts[0]
	if post.Title == nil || *post.Title != "Beta launched" {
		t.Fatalf("title = %v", post.Title)
	}
	if post.Body != "We shipped." {
		t.Fatalf("body = %q", post.Body)
	}
	if post.AuthorName != "Author" || post.AuthorRole != types.RoleBuilder {
		t.Fatalf("author fields = %q, %s", post.AuthorName, post.AuthorRole)
	}
}

func TestListPostsOrdering(t *testing.T) {
	service, conn := newTestService(t)
	author, project := seedAuthorAndProject(t, conn)

	insertRaw(t, conn, project.ID, author.ID, "FAQ: first?\nANSWER: a", 1000)
	insertRaw(t, conn, project.ID, author.ID, "older comment", 2000)
	insertRaw(t, conn, project.ID, author.ID, "FAQ: second?\nANSWER: b", 3000)
	insertRaw(t, conn, project.ID, author.ID, "newer comment", 4000)

	// FAQ reads oldest first.
	faqs, err := service.ListPosts(project.ID, kindPtr(types.KindFAQ))
	if err != nil {
		t.Fatalf("ListPosts faq: %v", err)
	}
	if len(faqs) != 2 || *faqs[0].Title != "first?" || *faqs[1].Title != "second?" {
		t.Fatalf("faq order wrong: %+v", faqs)
	}

	// Everything else reads newest first.
	discussions, err := service.ListPosts(project.ID, kindPtr(types.KindDiscussion))
	if err != nil {
		t.Fatalf("ListPosts discussion: %v", err)
	}
	if len(discussions) != 2 || discussions[0].Body != "newer comment" {
		t.Fatalf("discussion order wrong: %+v", discussions)
	}

	merged, err := service.ListPosts(project.ID, nil)
	if err != nil {
		t.Fatalf("ListPosts merged: %v", err)
	}
	if merged[0].CreatedAt != 4000 || merged[3].CreatedAt != 1000 {
		t.Fatalf("merged order wrong: %+v", merged)
	}
}

func TestListPostsUnknownProjectEmpty(t *testing.T) {
	service, _ := newTestService(t)

	posts, err := service.ListPosts("prj-missing1", nil)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("got %d posts for unknown project", len(posts))
	}
}

func TestListPostsServesFromCache(t *testing.T) {
	service, conn := newTestService(t)
	author, project := seedAuthorAndProject(t, conn)

	insertRaw(t, conn, project.ID, author.ID, "first", 1000)

	posts, err := service.ListPosts(project.ID, nil)
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}

	// A write that bypasses the coordinator is invisible until the
	// cache is invalidated.
	insertRaw(t, conn, project.ID, author.ID, "second", 2000)

	cached, err := service.ListPosts(project.ID, nil)
	if err != nil {
		t.Fatalf("ListPosts cached: %v", err)
	}
	if len(cached) != 1 {
		t.Fatalf("cache returned %d posts, want stale 1", len(cached))
	}

	service.InvalidateProject(project.ID)

	fresh, err := service.ListPosts(project.ID, nil)
	if err != nil {
		t.Fatalf("ListPosts after invalidate: %v", err)
	}
	if len(fresh) != 2 {
		t.Fatalf("got %d posts after invalidate, want 2", len(fresh))
	}
}

func TestPurgeCache(t *testing.T) {
	service, conn := newTestService(t)
	author, project := seedAuthorAndProject(t, conn)

	insertRaw(t, conn, project.ID, author.ID, "first", 1000)
	if _, err := service.ListPosts(project.ID, nil); err != nil {
		t.Fatalf("ListPosts: %v", err)
	}

	insertRaw(t, conn, project.ID, author.ID, "second", 2000)
	service.PurgeCache()

	fresh, err := service.ListPosts(project.ID, nil)
	if err != nil {
		t.Fatalf("ListPosts after purge: %v", err)
	}
	if len(fresh) != 2 {
		t.Fatalf("got %d posts after purge, want 2", len(fresh))
	}
}
