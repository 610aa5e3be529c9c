package command

import (
	"encoding/json"
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/core"
	"github.com/feedbacklab/feedbacklab/internal/session"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/spf13/cobra"
)

// NewVoteCmd creates the vote command. The target type is inferred from
// the GUID prefix: prj- toggles a project vote, cmt- a comment vote.
func NewVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <target>",
		Short: "Toggle your vote on a project or comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			var voterID string
			user, err := session.Current(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if user != nil {
				voterID = user.ID
			}

			target := args[0]
			var state types.VoteState
			switch core.GUIDPrefix(target) {
			case core.GUIDPrefixProject:
				state, err = ctx.Feed.ToggleProjectVote(target, voterID)
			case core.GUIDPrefixComment:
				state, err = ctx.Feed.ToggleCommentVote(target, voterID)
			default:
				return writeCommandError(cmd, fmt.Errorf("cannot vote on %s: expected a prj- or cmt- id", target))
			}
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(state)
			}

			verb := "Removed vote from"
			if state.Voted {
				verb = "Voted for"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d total)\n", verb, target, state.Count)
			return nil
		},
	}
}
