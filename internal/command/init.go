package command

import (
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an fbl workspace in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			ws, err := core.InitWorkspace("", force)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			conn, err := db.OpenDatabase(ws)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer conn.Close()

			if err := db.InitSchema(conn); err != nil {
				return writeCommandError(cmd, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized fbl workspace at %s\n", ws.Root)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "reinitialize, discarding existing data")

	return cmd
}
