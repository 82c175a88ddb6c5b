package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/slnclean/slnclean/config"
	"github.com/slnclean/slnclean/tools"
)

const initConfigFile = "slnclean.yml"

func CmdInit(app App) *cobra.Command {

	var force bool

	var cmd = &cobra.Command{
		Use:   "init",
		Short: "write a default " + initConfigFile + " in the current directory",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := tools.FileExists(initConfigFile); ok && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", initConfigFile)
			}

			defaults := yaml.MapSlice{
				{Key: "TARGET_DIRS", Value: config.FlagTargetDirsDefault},
				{Key: "PROJECT_PATTERNS", Value: config.FlagProjectPatternsDefault},
				{Key: "REBUILD_COMMAND", Value: config.FlagRebuildCommandDefault},
				{Key: "HOST", Value: config.FlagHostDefault},
				{Key: "LOG_LEVEL", Value: config.FlagLogLevelDefault},
				{Key: "LOG_TYPE", Value: config.FlagLogTypeDefault},
			}
			out, err := yaml.Marshal(defaults)
			if err != nil {
				return err
			}
			if err := ioutil.WriteFile(initConfigFile, out, 0644); err != nil {
				return err
			}
			logrus.Infof("wrote %s", initConfigFile)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
