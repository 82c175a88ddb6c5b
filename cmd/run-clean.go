package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mgutz/ansi"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/slnclean/slnclean/errors"
	"github.com/slnclean/slnclean/loggers"
	"github.com/slnclean/slnclean/rebuild"
	"github.com/slnclean/slnclean/solution"
	"github.com/slnclean/slnclean/tools"
)

// RunClean executes one cleanup batch, optionally followed by the
// rebuild trigger, and persists the resulting report.
func RunClean(app App, withRebuild bool) (*solution.Report, error) {

	cfg := app.GetConfig()

	source, err := app.GetSource()
	if err != nil {
		return nil, err
	}

	if !cfg.AssumeYes && len(cfg.TargetDirs) > 0 {
		ok, err := confirmClean(app)
		if err != nil {
			return nil, err
		}
		if !ok {
			logrus.Info("nothing cleaned")
			return nil, nil
		}
	}

	var trigger solution.RebuildTrigger
	if withRebuild {
		trigger = rebuild.NewExecTrigger(
			cfg.RebuildCommand,
			rebuildDir(cfg.Solution),
			app.GetMainProc().GetWaitGroup(),
		)
	}

	b := &solution.Batch{
		Source:   source,
		Cleaner:  solution.NewCleaner(cfg.TargetDirs),
		Resolver: cachedResolver(app.GetCache()),
		Rebuild:  trigger,
		Progress: loggers.NewProgress(),
		Log:      loggers.NewOutput(),
	}

	report := b.Run()

	if reports := app.GetReports(); reports != nil {
		if err := reports.SetLast(cfg.Solution, tools.JsonEncode(report)); err != nil {
			logrus.Warnf("unable to persist report: %v", err)
		}
	}

	logReport(report)

	tools.PrintMemUsage()

	if !report.Success() {
		return report, failureError(report)
	}

	return report, nil
}

func failureError(report *solution.Report) error {
	err := fmt.Errorf("%d of %d projects failed", report.Failed, report.Total)
	if report.Failed == 0 {
		err = fmt.Errorf("rebuild could not be started: %s", report.RebuildError)
	}
	return &errors.ErrorWithCode{
		Err:  err,
		Code: 1,
	}
}

func logReport(report *solution.Report) {
	resultMsg := "🏁 %s %s"
	resultVars := []interface{}{
		ansi.Color(fmt.Sprintf("Cleaned=%d", report.Cleaned), "green+b"),
		ansi.Color(fmt.Sprintf("Skipped=%d", report.Skipped), "magenta+b"),
	}
	if report.Failed > 0 {
		resultMsg += " %s"
		resultVars = append(resultVars, ansi.Color(fmt.Sprintf("Failed=%d", report.Failed), "red+b"))
	}
	resultMsg += " %s"
	resultVars = append(resultVars, ansi.Color(fmt.Sprintf("Total=%d", report.Total), "blue+b"))
	logrus.Infof(resultMsg, resultVars...)

	for _, r := range report.Results {
		if r.Status == solution.StatusFailed {
			logrus.Warnf("  %s: %s", r.UniqueName, r.Error)
		}
	}
}

func confirmClean(app App) (bool, error) {
	cfg := app.GetConfig()

	var confirmed bool
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Delete %s under every project of %s ?",
			strings.Join(cfg.TargetDirs, ", "), cfg.Solution),
	}
	err := survey.AskOne(prompt, &confirmed)
	if err == terminal.InterruptErr {
		os.Exit(0)
	} else if err != nil {
		return false, err
	}
	return confirmed, nil
}

// cachedResolver memoizes resolved project roots for the session, so
// list-then-clean invocations do not stat the same paths twice.
func cachedResolver(c *cache.Cache) func(solution.Project) (string, bool) {
	if c == nil {
		return solution.ResolveRoot
	}
	return func(p solution.Project) (string, bool) {
		key := "root:" + p.UniqueName()
		if v, found := c.Get(key); found {
			root := v.(string)
			return root, root != ""
		}
		root, ok := solution.ResolveRoot(p)
		c.SetDefault(key, root)
		return root, ok
	}
}

func rebuildDir(sol string) string {
	if info, err := os.Stat(sol); err == nil && info.IsDir() {
		return sol
	}
	if sol == "" {
		return ""
	}
	return filepath.Dir(sol)
}
