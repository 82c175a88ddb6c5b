package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slnclean/slnclean/config"
)

func CmdClean(app App) *cobra.Command {

	var cmd = &cobra.Command{
		Use:   "clean",
		Short: "delete build output subdirectories in every project",
		Args:  cobra.ExactArgs(0),
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			main := app.GetMainProc()
			main.Run(func() error {
				_, err := RunClean(app, false)
				return err
			})
		},
	}

	addCleanFlags(cmd)

	return cmd
}

func addCleanFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceP("target-dirs", "t", config.FlagTargetDirsDefault, config.FlagTargetDirsDesc)
	flags.StringSliceP("projects", "p", config.FlagProjectsDefault, config.FlagProjectsDesc)
	flags.BoolP("assume-yes", "y", config.FlagAssumeYesDefault, config.FlagAssumeYesDesc)
	flags.String("shutdown-timeout", config.FlagShutdownTimeoutDefault, config.FlagShutdownTimeoutDesc)
}
