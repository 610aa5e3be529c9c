package command

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/spf13/cobra"
)

// NewProjectsCmd creates the projects command.
func NewProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List shared projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			category, _ := cmd.Flags().GetString("category")
			search, _ := cmd.Flags().GetString("search")
			limit, _ := cmd.Flags().GetInt("limit")

			projects, err := db.GetProjects(ctx.DB, &types.ProjectQueryOptions{
				Category: category,
				Search:   search,
				Limit:    limit,
			})
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				if projects == nil {
					projects = []types.Project{}
				}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(projects)
			}

			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects yet. Share one with 'fbl share'")
				return nil
			}

			for _, project := range projects {
				author := project.AuthorName
				if author == "" {
					author = project.AuthorID
				}
				when := time.Unix(project.CreatedAt, 0).Format("2006-01-02")
				fmt.Fprintf(out, "[%s] %s (%s) — %s, %d upvotes, %d comments, %s\n",
					project.ID, project.Title, project.Category, author,
					project.Upvotes, project.CommentCount, when)
			}
			return nil
		},
	}

	cmd.Flags().StringP("category", "c", "", "filter by category")
	cmd.Flags().StringP("search", "s", "", "glob pattern matched against title and description")
	cmd.Flags().IntP("limit", "n", 0, "maximum number of projects")

	return cmd
}
