package command

import (
	"errors"
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/feed"
	"github.com/spf13/cobra"
)

func writeCommandError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err.Error())

	if errors.Is(err, feed.ErrUnauthenticated) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Hint: sign in first with: fbl login <user-id>")
	}

	return err
}
