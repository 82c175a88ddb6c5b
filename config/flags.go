package config

const (
	FlagConfigDesc         = "config file (default is ./slnclean.yml or /etc/slnclean.yml)"
	FlagLogLevelDesc       = "log level panic|fatal|error|warning|info|debug|trace"
	FlagLogTypeDesc        = "log type json|text"
	FlagLogForceColorsDesc = "force log colors for text log when no tty"
	FlagCWDDesc            = "current working directory"

	FlagSolutionDesc = "solution file or directory to operate on"
	FlagHostDesc     = "project host auto|sln|walk"

	FlagTargetDirsDesc      = "target subdirectory names to clean, empty disables cleaning"
	FlagProjectsDesc        = "restrict to the named projects"
	FlagProjectPatternsDesc = "project file glob patterns used by the walk host"

	FlagRebuildCommandDesc = "command triggering the full rebuild"
	FlagAssumeYesDesc      = "do not ask for confirmation before deleting"

	FlagShutdownTimeoutDesc = "shutdown timeout"
)

var (
	FlagLogForceColorsDefault = false
	FlagLogTypeDefault        = "text"
	FlagLogLevelDefault       = "info"

	FlagSolutionDefault = ""
	FlagHostDefault     = "auto"

	FlagTargetDirsDefault      = []string{"bin", "obj"}
	FlagProjectsDefault        = []string{}
	FlagProjectPatternsDefault = []string{"**/*.csproj", "**/*.fsproj", "**/*.vbproj"}

	FlagRebuildCommandDefault = "dotnet build"
	FlagAssumeYesDefault      = false

	FlagShutdownTimeoutDefault = "30"
)
