package command

import (
	"encoding/json"
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/session"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/spf13/cobra"
)

// NewLinkCmd creates the link command group for profile project links.
func NewLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage project links on your profile",
	}

	cmd.AddCommand(newLinkAddCmd(), newLinkListCmd(), newLinkRmCmd())

	return cmd
}

func newLinkAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title> <url>",
		Short: "Add a project link to your profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			user, err := session.Current(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if user == nil {
				return writeCommandError(cmd, fmt.Errorf("not signed in. Use 'fbl login' first"))
			}

			description, _ := cmd.Flags().GetString("description")
			internal, _ := cmd.Flags().GetBool("internal")

			link := types.ProjectLink{
				UserID:     user.ID,
				Title:      args[0],
				URL:        args[1],
				IsInternal: internal,
			}
			if description != "" {
				link.Description = &description
			}

			created, err := db.CreateProjectLink(ctx.DB, link)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(created)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[%s] Added link %q\n", created.ID, created.Title)
			return nil
		},
	}

	cmd.Flags().StringP("description", "d", "", "what the link points at")
	cmd.Flags().Bool("internal", false, "link points at a project inside FeedbackLab")

	return cmd
}

func newLinkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [user-id]",
		Short: "List project links",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			var userID string
			if len(args) == 1 {
				userID = args[0]
			} else {
				user, err := session.Current(ctx.DB)
				if err != nil {
					return writeCommandError(cmd, err)
				}
				if user == nil {
					return writeCommandError(cmd, fmt.Errorf("not signed in. Use 'fbl login' or pass a user id"))
				}
				userID = user.ID
			}

			links, err := db.GetProjectLinks(ctx.DB, userID)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				if links == nil {
					links = []types.ProjectLink{}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(links)
			}

			out := cmd.OutOrStdout()
			if len(links) == 0 {
				fmt.Fprintln(out, "No links")
				return nil
			}
			for _, link := range links {
				fmt.Fprintf(out, "[%s] %s — %s\n", link.ID, link.Title, link.URL)
			}
			return nil
		},
	}
}

func newLinkRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <link-id>",
		Short: "Remove one of your project links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			user, err := session.Current(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if user == nil {
				return writeCommandError(cmd, fmt.Errorf("not signed in. Use 'fbl login' first"))
			}

			removed, err := db.DeleteProjectLink(ctx.DB, args[0], user.ID)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if !removed {
				return writeCommandError(cmd, fmt.Errorf("link %s not found on your profile", args[0]))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed link %s\n", args[0])
			return nil
		},
	}
}
