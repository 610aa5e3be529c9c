package command

import (
	"encoding/json"
	"fmt"

	"github.com/feedbacklab/feedbacklab/internal/session"
	"github.com/feedbacklab/feedbacklab/internal/types"
	"github.com/spf13/cobra"
)

// NewLoginCmd creates the login command.
func NewLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <user-id>",
		Short: "Sign in as a user, creating the profile if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			name, _ := cmd.Flags().GetString("name")
			userType, _ := cmd.Flags().GetString("type")

			role := types.ParseRole(userType)
			if userType != "" && string(role) != userType {
				return writeCommandError(cmd, fmt.Errorf("invalid user type: %s (valid: builder, feedback_provider)", userType))
			}

			profile, err := session.Login(ctx.DB, args[0], name, role)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(profile)
			}

			display := profile.FullName
			if display == "" {
				display = profile.ID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s)\n", display, profile.Role)
			return nil
		},
	}

	cmd.Flags().String("name", "", "display name for a new profile")
	cmd.Flags().String("type", "feedback_provider", "account type: builder or feedback_provider")

	return cmd
}

// NewLogoutCmd creates the logout command.
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			if err := session.Logout(ctx.DB); err != nil {
				return writeCommandError(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

// NewWhoamiCmd creates the whoami command.
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			profile, err := session.Current(ctx.DB)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(profile)
			}

			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Not signed in")
				return nil
			}

			display := profile.FullName
			if display == "" {
				display = profile.ID
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", display, profile.ID, profile.Role)
			return nil
		},
	}
}
