package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/slnclean/slnclean/config"
)

func NewCmd(app App) *cobra.Command {
	cmd := CmdRoot(app)

	cmd.AddCommand(CmdCompletion(app, cmd))

	cmd.AddCommand(CmdClean(app))
	cmd.AddCommand(CmdRebuild(app))
	cmd.AddCommand(CmdList(app))
	cmd.AddCommand(CmdReport(app))
	cmd.AddCommand(CmdInit(app))
	cmd.AddCommand(CmdVersion(app))

	return cmd
}

func CmdRoot(app App) *cobra.Command {
	cl := app.GetConfigLoader()

	cmd := &cobra.Command{
		Use:   "slnclean",
		Short: "Sweep bin/obj build outputs out of every project of a solution 🧹",
	}

	configFile := app.GetConfigFile()

	pFlags := cmd.PersistentFlags()

	pFlags.StringVarP(configFile, "config", "", os.Getenv(cl.PrefixEnv("CONFIG")), config.FlagConfigDesc)
	pFlags.StringP("log-level", "l", config.FlagLogLevelDefault, config.FlagLogLevelDesc)
	pFlags.StringP("log-type", "", config.FlagLogTypeDefault, config.FlagLogTypeDesc)
	pFlags.BoolP("log-force-colors", "", config.FlagLogForceColorsDefault, config.FlagLogForceColorsDesc)
	pFlags.StringP("cwd", "", "", config.FlagCWDDesc)

	pFlags.StringP("solution", "s", config.FlagSolutionDefault, config.FlagSolutionDesc)
	pFlags.String("host", config.FlagHostDefault, config.FlagHostDesc)
	pFlags.StringSlice("pattern", config.FlagProjectPatternsDefault, config.FlagProjectPatternsDesc)

	v := app.GetViper()

	v.BindPFlag("CONFIG", pFlags.Lookup("config"))
	v.BindPFlag("LOG_LEVEL", pFlags.Lookup("log-level"))
	v.BindPFlag("LOG_TYPE", pFlags.Lookup("log-type"))
	v.BindPFlag("LOG_FORCE_COLORS", pFlags.Lookup("log-force-colors"))
	v.BindPFlag("SOLUTION", pFlags.Lookup("solution"))
	v.BindPFlag("HOST", pFlags.Lookup("host"))
	v.BindPFlag("PROJECT_PATTERNS", pFlags.Lookup("pattern"))

	v.BindEnv("CONFIG")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_TYPE")
	v.BindEnv("LOG_FORCE_COLORS")
	v.BindEnv("SOLUTION")
	v.BindEnv("HOST")
	v.BindEnv("PROJECT_PATTERNS")

	return cmd
}
