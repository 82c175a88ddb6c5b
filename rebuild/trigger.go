// Package rebuild adapts an external build command to the batch's
// rebuild trigger.
package rebuild

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"sync"
	"syscall"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/kvz/logstreamer"
	"github.com/sirupsen/logrus"

	"github.com/slnclean/slnclean/loggers"
	"github.com/slnclean/slnclean/tools"
)

// ExecTrigger starts the configured rebuild command. Start reports
// synchronous acceptance only; completion is awaited by a background
// goroutine registered on the shared WaitGroup so the process does
// not outlive the CLI unobserved.
type ExecTrigger struct {
	Command   string
	Dir       string
	WaitGroup *sync.WaitGroup

	mu   sync.Mutex
	err  error
	done chan struct{}
}

func NewExecTrigger(command string, dir string, wg *sync.WaitGroup) *ExecTrigger {
	return &ExecTrigger{
		Command:   command,
		Dir:       dir,
		WaitGroup: wg,
	}
}

func (t *ExecTrigger) Start() error {
	parts, err := shellquote.Split(t.Command)
	if err != nil {
		return fmt.Errorf("invalid rebuild command %q: %w", t.Command, err)
	}
	if len(parts) == 0 {
		return errors.New("empty rebuild command")
	}

	commandPath, err := exec.LookPath(parts[0])
	if err != nil {
		return err
	}

	cmd := exec.Command(commandPath, parts[1:]...)
	cmd.Dir = t.Dir

	var contextLogger *logrus.Entry
	var memLog bytes.Buffer
	directStreamLog := logrus.IsLevelEnabled(logrus.InfoLevel)
	if directStreamLog {
		contextLogger = logrus.WithFields(logrus.Fields{"rebuild": parts[0]})
	} else {
		cmdLogrus := logrus.New()
		cmdLogrus.Out = &memLog
		cmdLogrus.SetFormatter(&tools.LogrusFormatterMsgOnly{})
		contextLogger = cmdLogrus.WithFields(logrus.Fields{})
	}
	w := contextLogger.Writer()
	logStreamer := logstreamer.NewLogstreamer(log.New(w, "", 0), "", true)
	cmd.Stdout = logStreamer
	cmd.Stderr = &loggers.Warn{Entry: contextLogger}

	// dedicated pidgroup so signals reach the whole child tree
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}

	if err := cmd.Start(); err != nil {
		logStreamer.Close()
		w.Close()
		return err
	}

	t.done = make(chan struct{})
	if t.WaitGroup != nil {
		t.WaitGroup.Add(1)
	}
	go func() {
		defer close(t.done)
		if t.WaitGroup != nil {
			defer t.WaitGroup.Done()
		}
		defer w.Close()
		defer logStreamer.Close()

		if err := cmd.Wait(); err != nil {
			if !directStreamLog {
				logrus.Warn(memLog.String())
			}
			logrus.Warnf("rebuild finished with error: %v", err)
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
			return
		}
		logrus.Info("rebuild finished")
	}()

	return nil
}

// Wait blocks until a started rebuild finishes. It is a no-op when
// Start was never accepted.
func (t *ExecTrigger) Wait() error {
	if t.done == nil {
		return nil
	}
	<-t.done
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
