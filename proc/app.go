package proc

import (
	"github.com/slnclean/slnclean/config"
)

type App interface {
	GetConfig() *config.Config
	GetMainProc() *Main
	IsExiting() bool
	Exiting()
}
