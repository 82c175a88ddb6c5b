package config

import (
	"time"
)

// Config struct
type Config struct {
	LogLevel       string `mapstructure:"LOG_LEVEL" json:"log_level"`
	LogType        string `mapstructure:"LOG_TYPE" json:"log_type"`
	LogForceColors bool   `mapstructure:"LOG_FORCE_COLORS" json:"log_force_colors"`
	CWD            string `mapstructure:"CWD" json:"cwd"`

	Solution string `mapstructure:"SOLUTION" json:"solution"`
	Host     string `mapstructure:"HOST" json:"host"`

	TargetDirs      []string `mapstructure:"TARGET_DIRS" json:"target_dirs"`
	Projects        []string `mapstructure:"PROJECTS" json:"projects"`
	ProjectPatterns []string `mapstructure:"PROJECT_PATTERNS" json:"project_patterns"`

	RebuildCommand string `mapstructure:"REBUILD_COMMAND" json:"rebuild_command"`
	AssumeYes      bool   `mapstructure:"ASSUME_YES" json:"assume_yes"`

	ReportsDir string `mapstructure:"REPORTS_DIR" json:"reports_dir"`

	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" json:"shutdownTimeout,omitempty"`
}
