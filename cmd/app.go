package cmd

import (
	cache "github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slnclean/slnclean/config"
	"github.com/slnclean/slnclean/proc"
	"github.com/slnclean/slnclean/registry"
	"github.com/slnclean/slnclean/solution"
)

type App interface {
	GetConfig() *config.Config
	GetViper() *viper.Viper
	GetConfigLoader() *config.ConfigLoader
	GetConfigFile() *string
	GetVersion() string
	OnPreRun(*cobra.Command)
	GetCache() *cache.Cache
	GetMainProc() *proc.Main
	GetReports() *registry.Reports
	GetSource() (solution.Source, error)
	IsExiting() bool
	Exiting()
}
