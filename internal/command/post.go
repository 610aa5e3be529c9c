package command

import (
	"encoding/json"
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/session"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/spf13/cobra"
)

// NewPostCmd creates the post command (discussion comments).
func NewPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post <project> <body>",
		Short: "Post a discussion comment on a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, args[0], types.KindDiscussion, "", args[1])
		},
	}
}

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <project> <title> <body>",
		Short: "Post a project update",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, args[0], types.KindUpdate, args[1], args[2])
		},
	}
}

// NewFAQCmd creates the faq command.
func NewFAQCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faq <project> <question> <answer>",
		Short: "Add a frequently asked question to a project",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, args[0], types.KindFAQ, args[1], args[2])
		},
	}
}

// NewDevPostCmd creates the devpost command.
func NewDevPostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devpost <project> <title> <body>",
		Short: "Post a developer-only note on a project",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubmit(cmd, args[0], types.KindDevPost, args[1], args[2])
		},
	}
}

// runSubmit funnels every posting command through the mutation
// coordinator so a write to one logical view always invalidates the rest.
func runSubmit(cmd *cobra.Command, projectRef string, kind types.PostKind, title, body string) error {
	ctx, err := GetContext(cmd)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	defer ctx.DB.Close()

	var authorID string
	user, err := session.Current(ctx.DB)
	if err != nil {
		return writeCommandError(cmd, err)
	}
	if user != nil {
		authorID = user.ID
	}

	post, err := ctx.Feed.SubmitPost(projectRef, authorID, kind, title, body)
	if err != nil {
		return writeCommandError(cmd, err)
	}

	if ctx.JSONMode {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(post)
	}

	label := string(post.Kind)
	if post.Title != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] Posted %s %q\n", post.ID, label, *post.Title)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] Posted %s\n", post.ID, label)
	}
	return nil
}
