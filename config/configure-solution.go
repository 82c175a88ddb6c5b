package config

import (
	"os"
	"path/filepath"
	"sort"
)

// ConfigureSolution defaults the solution to the first .sln file of
// the working directory, or the working directory itself when none
// exists (the walk host takes over in that case).
func (cl *ConfigLoader) ConfigureSolution() {
	cfg := cl.Config

	if cfg.Solution != "" {
		return
	}

	wd, err := os.Getwd()
	if err != nil {
		return
	}

	matches, _ := filepath.Glob(filepath.Join(wd, "*.sln"))
	if len(matches) > 0 {
		sort.Strings(matches)
		cfg.Solution = matches[0]
		return
	}
	cfg.Solution = wd
}
