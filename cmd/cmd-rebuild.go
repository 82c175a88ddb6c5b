package cmd

import (
	"github.com/spf13/cobra"

	"github.com/slnclean/slnclean/config"
)

func CmdRebuild(app App) *cobra.Command {

	var cmd = &cobra.Command{
		Use:   "rebuild",
		Short: "clean every project, then trigger a full solution rebuild",
		Args:  cobra.ExactArgs(0),
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			main := app.GetMainProc()
			main.Run(func() error {
				_, err := RunClean(app, true)
				return err
			})
		},
	}

	addCleanFlags(cmd)
	cmd.Flags().String("rebuild-command", config.FlagRebuildCommandDefault, config.FlagRebuildCommandDesc)

	return cmd
}
