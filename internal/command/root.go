package command

import (
	"os"

	"github.com/spf13/cobra"
)

const AppName = "fbl"

// Version is overwritten at build time using -ldflags.
var Version = "dev"

func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "FeedbackLab - share projects, collect feedback",
		Long:          "FeedbackLab is a CLI where builders share projects and feedback providers comment, vote and follow along.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().Bool("json", false, "output in JSON format")

	cmd.AddCommand(
		NewInitCmd(),
		NewLoginCmd(),
		NewLogoutCmd(),
		NewWhoamiCmd(),
		NewShareCmd(),
		NewProjectsCmd(),
		NewPostCmd(),
		NewUpdateCmd(),
		NewFAQCmd(),
		NewDevPostCmd(),
		NewFeedCmd(),
		NewVoteCmd(),
		NewProfileCmd(),
		NewLinkCmd(),
	)

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd(Version).Execute()
}
