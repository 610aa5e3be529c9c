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

// NewProfileCmd creates the profile command group.
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile [user-id]",
		Short: "Show a profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := GetContext(cmd)
			if err != nil {
				return writeCommandError(cmd, err)
			}
			defer ctx.DB.Close()

			var profile *types.Profile
			if len(args) == 1 {
				profile, err = db.GetProfile(ctx.DB, args[0])
			} else {
				profile, err = session.Current(ctx.DB)
			}
			if err != nil {
				return writeCommandError(cmd, err)
			}
			if profile == nil {
				return writeCommandError(cmd, fmt.Errorf("profile not found"))
			}

			links, err := db.GetProjectLinks(ctx.DB, profile.ID)
			if err != nil {
				return writeCommandError(cmd, err)
			}

			if ctx.JSONMode {
				payload := map[string]any{"profile": profile, "project_links": links}
				return json.NewEncoder(cmd.OutOrStdout()).Encode(payload)
			}

			out := cmd.OutOrStdout()
			display := profile.FullName
			if display == "" {
				display = profile.ID
			}
			fmt.Fprintf(out, "%s (%s, %s)\n", display, profile.ID, profile.Role)
			if profile.Bio != nil && *profile.Bio != "" {
				fmt.Fprintf(out, "  %s\n", *profile.Bio)
			}
			if profile.Location != nil && *profile.Location != "" {
				fmt.Fprintf(out, "  Location: %s\n", *profile.Location)
			}
			if len(profile.Interests) > 0 {
				fmt.Fprintf(out, "  Interests: %s\n", strings.Join(profile.Interests, ", "))
			}
			if profile.WebsiteURL != nil && *profile.WebsiteURL != "" {
				fmt.Fprintf(out, "  Website: %s\n", *profile.WebsiteURL)
			}
			for _, link := range links {
				fmt.Fprintf(out, "  [%s] %s — %s\n", link.ID, link.Title, link.URL)
			}
			return nil
		},
	}

	cmd.AddCommand(newProfileSetCmd())

	return cmd
}

func newProfileSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
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

			var updates types.ProfileUpdates
			setString := func(flag string, target *types.OptionalString) {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					*target = types.OptionalString{Set: true, Value: &value}
				}
			}

			setString("name", &updates.FullName)
			setString("avatar-url", &updates.AvatarURL)
			setString("bio", &updates.Bio)
			setString("location", &updates.Location)
			setString("website", &updates.WebsiteURL)
			setString("twitter", &updates.TwitterURL)
			setString("linkedin", &updates.LinkedinURL)

			if cmd.Flags().Changed("interests") {
				raw, _ := cmd.Flags().GetString("interests")
				var interests []string
				for _, item := range strings.Split(raw, ",") {
					if trimmed := strings.TrimSpace(item); trimmed != "" {
						interests = append(interests, trimmed)
					}
				}
				updates.Interests = &interests
			}

			if err := db.UpdateProfile(ctx.DB, user.ID, updates); err != nil {
				return writeCommandError(cmd, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			return nil
		},
	}

	cmd.Flags().String("name", "", "display name")
	cmd.Flags().String("avatar-url", "", "avatar image URL")
	cmd.Flags().String("bio", "", "short bio")
	cmd.Flags().String("location", "", "location")
	cmd.Flags().String("interests", "", "comma-separated interests")
	cmd.Flags().String("website", "", "website URL")
	cmd.Flags().String("twitter", "", "twitter URL")
	cmd.Flags().String("linkedin", "", "linkedin URL")

	return cmd
}
