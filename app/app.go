package app

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	cmap "github.com/orcaman/concurrent-map"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slnclean/slnclean/cmd"
	"github.com/slnclean/slnclean/config"
	"github.com/slnclean/slnclean/errors"
	"github.com/slnclean/slnclean/hosts/sln"
	"github.com/slnclean/slnclean/hosts/walk"
	"github.com/slnclean/slnclean/proc"
	"github.com/slnclean/slnclean/registry"
	"github.com/slnclean/slnclean/solution"
)

// HostFactory builds a project source for the configured solution.
type HostFactory func(cfg *config.Config) (solution.Source, error)

type App struct {
	Config          *config.Config
	ConfigFile      *string
	ConfigEnvPrefix string
	ConfigLoader    *config.ConfigLoader
	Viper           *viper.Viper
	RootCmd         *cobra.Command

	Now      time.Time
	MainProc *proc.Main

	Hosts cmap.ConcurrentMap

	Cache *cache.Cache

	Reports *registry.Reports

	ExitingState bool

	Version string
}

func New(version string) *App {
	app := NewApp(version)
	app.RunCmd()
	return app
}

func NewApp(version string) *App {
	app := &App{
		Version: version,
	}

	app.ConfigEnvPrefix = "SLNCLEAN"

	app.Now = time.Now()

	app.Cache = cache.New(5*time.Minute, 10*time.Minute)

	var configFile string
	app.ConfigFile = &configFile

	app.ConfigLoader = config.NewConfigLoader()
	app.ConfigLoader.SetEnvPrefix(app.ConfigEnvPrefix)
	app.ConfigLoader.SetFile(app.ConfigFile)
	app.Config = app.ConfigLoader.Config
	app.Viper = app.ConfigLoader.Viper

	app.Hosts = cmap.New()
	app.LoadNativeHosts()

	return app
}

func (app *App) GetViper() *viper.Viper {
	return app.ConfigLoader.GetViper()
}

func (app *App) GetConfig() *config.Config {
	return app.ConfigLoader.GetConfig()
}

func (app *App) GetVersion() string {
	return app.Version
}

func (app *App) GetConfigLoader() *config.ConfigLoader {
	return app.ConfigLoader
}

func (app *App) GetConfigFile() *string {
	return app.ConfigFile
}

func (app *App) OnInitialize() {
	app.ConfigLoader.OnInitialize()
}

func (app *App) OnPreRun(cmd *cobra.Command) {
	app.ConfigLoader.OnPreRun(cmd)

	basePath := app.Config.ReportsDir
	if basePath == "" {
		usr, _ := user.Current()
		basePath = filepath.Join(usr.HomeDir, ".slnclean", "reports")
	}
	app.Reports = registry.CreateReports(&registry.ReportsOptions{
		BasePath: basePath,
	})
}

func (app *App) IsExiting() bool {
	return app.ExitingState
}
func (app *App) Exiting() {
	app.ExitingState = true
}

func (app *App) RunCmd() {
	cobra.OnInitialize(app.OnInitialize)

	RootCmd := cmd.NewCmd(app)
	app.RootCmd = RootCmd
	app.ConfigLoader.RootCmd = RootCmd

	if err := RootCmd.Execute(); err != nil {
		if codeErr, ok := err.(*errors.ErrorWithCode); ok {
			logrus.Error(codeErr)
			os.Exit(codeErr.Code)
		}
		logrus.Fatal(err)
	}
}

func (app *App) GetNow() time.Time {
	return app.Now
}

func (app *App) GetCache() *cache.Cache {
	return app.Cache
}

func (app *App) GetReports() *registry.Reports {
	return app.Reports
}

func (app *App) GetMainProc() *proc.Main {
	if app.MainProc == nil {
		app.MainProc = proc.CreateMain(app)
	}
	return app.MainProc
}

func (app *App) LoadNativeHosts() {
	app.Hosts.Set("sln", HostFactory(func(cfg *config.Config) (solution.Source, error) {
		return sln.New(cfg.Solution, cfg.Projects)
	}))
	app.Hosts.Set("walk", HostFactory(func(cfg *config.Config) (solution.Source, error) {
		root := cfg.Solution
		if info, err := os.Stat(root); err == nil && !info.IsDir() {
			root = filepath.Dir(root)
		}
		return walk.New(root, cfg.ProjectPatterns, cfg.Projects), nil
	}))
}

// GetSource picks the host matching the configured solution: the
// .sln host for solution files, the walk host for plain directories.
func (app *App) GetSource() (solution.Source, error) {
	cfg := app.GetConfig()

	kind := cfg.Host
	if kind == "" || kind == "auto" {
		if strings.EqualFold(filepath.Ext(cfg.Solution), ".sln") {
			kind = "sln"
		} else {
			kind = "walk"
		}
	}

	factoryI, ok := app.Hosts.Get(kind)
	if !ok {
		return nil, fmt.Errorf("unknown host %q", kind)
	}
	return factoryI.(HostFactory)(cfg)
}
