package command

import (
	"database/sql"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/db"
	"github.com/feedbacklab/feedbacklab/internal/feed"
	"github.com/spf13/cobra"
)

// CommandContext provides shared command resources.
type CommandContext struct {
	DB        *sql.DB
	Workspace core.Workspace
	Feed      *feed.Service
	JSONMode  bool
}

// GetContext resolves the workspace and store for a command.
func GetContext(cmd *cobra.Command) (*CommandContext, error) {
	jsonMode, _ := cmd.Flags().GetBool("json")

	ws, err := core.DiscoverWorkspace("")
	if err != nil {
		return nil, err
	}

	conn, err := db.OpenDatabase(ws)
	if err != nil {
		return nil, err
	}
	if err := db.InitSchema(conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	service, err := feed.NewService(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &CommandContext{
		DB:        conn,
		Workspace: ws,
		Feed:      service,
		JSONMode:  jsonMode,
	}, nil
}
