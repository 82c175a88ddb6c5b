package cmd

import (
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/slnclean/slnclean/solution"
)

func CmdList(app App) *cobra.Command {

	var cmd = &cobra.Command{
		Use:   "list",
		Short: "list the projects that a clean would visit, with their resolved roots",
		Args:  cobra.ExactArgs(0),
		PreRun: func(cmd *cobra.Command, args []string) {
			app.OnPreRun(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := app.GetSource()
			if err != nil {
				return err
			}

			projects, err := solution.Enumerate(source)
			if err != nil {
				return err
			}

			for _, p := range projects {
				if root, ok := solution.ResolveRoot(p); ok {
					logrus.Infof("%s %s", p.UniqueName(), ansi.Color(root, "black+h"))
				} else {
					logrus.Infof("%s %s", p.UniqueName(), ansi.Color("(no filesystem root)", "yellow"))
				}
			}
			logrus.Infof("%d projects", len(projects))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringSliceP("projects", "p", nil, "restrict to the named projects")

	return cmd
}
