package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/feedbacklab/feedbacklab/internal/feed"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/spf13/cobra"
)

// NewFeedCmd creates the feed command.
func NewFeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feed <project>",
		Short: "Show a project's posts",
		Long:  "Show a project's posts. By default all kinds are merged newest first; --kind narrows to one view (discussion, update, faq, devpost).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			kindName, _ := cmd.Flags().GetString("kind")
			follow, _ := cmd.Flags().GetBool("follow")

			var kind *types.PostKind
			if kindName != "" {
				parsed, ok := types.ParseKind(kindName)
				if !ok {
					return writeCommandError(cmd, fmt.Errorf("unknown kind: %s (valid: discussion, update, faq, devpost)", kindName))
				}
				kind = &parsed
			}

			posts, err := ctx.Feed.ListPosts(args[0], kind)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode && !follow {
				if posts == nil {
					posts = []types.Post{}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(posts)
			}

			out := cmd.OutOrStdout()
			printPosts(out, posts)

			if !follow {
				return nil
			}

			watcher, err := feed.NewWatcher(ctx.Feed, ctx.Workspace.DBPath)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer watcher.Close()

			watchCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			watcher.Start(watchCtx)
			seen := make(map[string]bool, len(posts))
			for _, post := range posts {
				seen[post.ID] = true
			}

			for {
				select {
				case <-watchCtx.Done():
					return nil
				case <-watcher.Changes():
					refreshed, err := ctx.Feed.ListPosts(args[0], kind)
					if err != nil {
						return writeCommandError(cmd, err)
					}
					var fresh []types.Post
					for _, post := range refreshed {
						if !seen[post.ID] {
							seen[post.ID] = true
							fresh = append(fresh, post)
						}
					}
					printPosts(out, fresh)
				}
			}
		},
	}

	cmd.Flags().StringP("kind", "k", "", "only one view: discussion, update, faq, devpost")
	cmd.Flags().BoolP("follow", "f", false, "keep watching for new posts")

	return cmd
}

func printPosts(out io.Writer, posts []types.Post) {
	for _, post := range posts {
		author := post.AuthorName
		if author == "" {
			author = post.AuthorID
		}
		when := time.Unix(post.CreatedAt, 0).Format("2006-01-02 15:04")

		header := fmt.Sprintf("[%s] %s · %s · %s", post.ID, post.Kind, author, when)
		if post.Upvotes > 0 {
			header += fmt.Sprintf(" · %d upvotes", post.Upvotes)
		}
		fmt.Fprintln(out, header)

		if post.Title != nil {
			fmt.Fprintf(out, "  %s\n", *post.Title)
		}
		for _, line := range strings.Split(post.Body, "\n") {
			fmt.Fprintf(out, "  %s\n", line)
		}
	}
}
