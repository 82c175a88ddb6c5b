package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func CmdReport(app App) *cobra.Command {

	var cmd = &cobra.Command{
		Use:   "report",
		Short: "show the persisted report of the last clean for this solution",
		Args:  cobra.ExactArgs(0),
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.GetConfig()

			reports := app.GetReports()
			if reports == nil {
				return fmt.Errorf("report store unavailable")
			}
			last, ok := reports.GetLast(cfg.Solution)
			if !ok {
				return fmt.Errorf("no report recorded yet for %s", cfg.Solution)
			}
			fmt.Println(last)
			return nil
		},
	}

	return cmd
}
