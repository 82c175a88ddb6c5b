package loggers

import (
	"github.com/sirupsen/logrus"
)

// Progress reports batch progress through logrus, the CLI
// counterpart of an IDE status bar.
type Progress struct {
	Entry *logrus.Entry
	total int
}

func NewProgress() *Progress {
	return &Progress{
		Entry: logrus.WithFields(logrus.Fields{}),
	}
}

func (p *Progress) SetTotal(n int) {
	p.total = n
	p.Entry.Debugf("progress: 0/%d", n)
}

func (p *Progress) SetCurrent(i int, label string) {
	p.Entry.Debugf("progress: %d/%d %s", i, p.total, label)
}

func (p *Progress) Clear() {
	p.total = 0
	p.Entry.Debug("progress: reset")
}
