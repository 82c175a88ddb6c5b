package config

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

type LogFormatter struct {
	logrus.TextFormatter
}

func (f *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	colorize := func(s string, style string) string { return s }
	if f.ForceColors || isatty.IsTerminal(os.Stdout.Fd()) {
		colorize = ansi.Color
	}

	var style string
	var icon string
	switch entry.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		style = "black+h"
		icon = "·"
	case logrus.WarnLevel:
		style = "yellow"
		icon = "!"
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		style = "red"
		icon = "✗"
	default:
		style = "cyan"
		icon = "»"
	}
	return []byte(colorize(icon, style) + " " + entry.Message + "\n"), nil
}
