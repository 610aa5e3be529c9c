package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/session"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/spf13/cobra"
)

// NewShareCmd creates the share command.
func NewShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share <title>",
		Short: "Share a new project",
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

			description, _ := cmd.Flags().GetString("description")
			category, _ := cmd.Flags().GetString("category")
			imageURL, _ := cmd.Flags().GetString("image-url")

			title := strings.TrimSpace(args[0])
			if title == "" {
				return writeCommandError(cmd, fmt.Errorf("title must not be empty"))
			}
			if strings.TrimSpace(description) == "" {
				return writeCommandError(cmd, fmt.Errorf("--description is required"))
			}

			project := types.Project{
				Title:       title,
				Description: description,
				Category:    category,
				AuthorID:    user.ID,
			}
			if imageURL != "" {
				project.ImageURL = &imageURL
			}

			created, err := db.CreateProject(ctx.DB, project)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(created)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "[%s] Shared %q in %s\n", created.ID, created.Title, created.Category)
			return nil
		},
	}

	cmd.Flags().StringP("description", "d", "", "what the project is and what feedback you want")
	cmd.Flags().StringP("category", "c", "other", "project category")
	cmd.Flags().String("image-url", "", "cover image URL")

	_ = cmd.MarkFlagRequired("description")

	return cmd
}
