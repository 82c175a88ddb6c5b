package loggers

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Output writes timestamped batch lines at info level, the CLI
// counterpart of an IDE output pane.
type Output struct {
	Entry *logrus.Entry
}

func NewOutput() *Output {
	return &Output{
		Entry: logrus.WithFields(logrus.Fields{}),
	}
}

func (o *Output) WriteLine(msg string) {
	o.Entry.Infof("%s %s", time.Now().Format("15:04:05"), msg)
}

func (o *Output) Clear() {}
