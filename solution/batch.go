package solution

import (
	"fmt"
	"time"
)

// Batch drives one end-to-end cleanup pass:
// enumerate → resolve → clean → rebuild-trigger → report.
// A Batch value serves a single run and holds no state between runs.
// Everything executes sequentially on the calling goroutine.
type Batch struct {
	Source   Source
	Cleaner  *Cleaner
	Resolver func(Project) (string, bool)
	Rebuild  RebuildTrigger
	Progress ProgressSink
	Log      LogSink
}

// Run executes the batch. Every per-project failure degrades to
// skip-and-continue; Run itself never fails, the worst outcome is a
// report in which nothing was cleaned.
func (b *Batch) Run() *Report {
	start := time.Now()
	report := &Report{
		RebuildAsked: b.Rebuild != nil,
		StartedAt:    start,
	}

	progress := b.progress()
	log := b.log()
	defer progress.Clear()

	projects, err := Enumerate(b.Source)
	if err != nil {
		report.Elapsed = time.Since(start)
		log.WriteLine(fmt.Sprintf("unable to enumerate projects: %v", err))
		return report
	}

	report.Total = len(projects)
	progress.SetTotal(len(projects))

	resolve := b.resolver()
	cleaner := b.cleaner()

	for i, p := range projects {
		name := p.UniqueName()
		progress.SetCurrent(i+1, name)
		log.WriteLine(fmt.Sprintf("cleaning %d/%d %s", i+1, len(projects), name))

		result := Result{UniqueName: name}

		root, ok := resolve(p)
		if !ok {
			result.Status = StatusSkipped
			report.Skipped++
			report.Results = append(report.Results, result)
			continue
		}
		result.Root = root

		outcomes, err := cleaner.Clean(root)
		for _, o := range outcomes {
			result.Removed += o.Removed
		}
		if err != nil {
			result.Status = StatusFailed
			result.Error = err.Error()
			report.Failed++
		} else {
			result.Status = StatusCleaned
			report.Cleaned++
		}
		report.Results = append(report.Results, result)
	}

	if b.Rebuild != nil {
		if err := b.Rebuild.Start(); err != nil {
			report.RebuildError = err.Error()
		} else {
			report.Rebuilt = true
		}
	}

	report.Elapsed = time.Since(start)
	log.WriteLine(Summary(report))
	return report
}

// Summary renders the final one-line end state of a batch,
// distinguishing cleaned-and-rebuilt, cleaned-only and
// cleaned-but-rebuild-not-started.
func Summary(report *Report) string {
	var state string
	switch {
	case report.RebuildAsked && report.Rebuilt:
		state = "cleaned and rebuild started"
	case report.RebuildAsked:
		state = "cleaned, rebuild could not be started"
	default:
		state = "cleaned"
	}
	return fmt.Sprintf("%d/%d projects %s, %d skipped, %d failed, duration %s",
		report.Cleaned, report.Total, state,
		report.Skipped, report.Failed,
		report.Elapsed.Round(time.Millisecond))
}

func (b *Batch) resolver() func(Project) (string, bool) {
	if b.Resolver != nil {
		return b.Resolver
	}
	return ResolveRoot
}

func (b *Batch) cleaner() *Cleaner {
	if b.Cleaner != nil {
		return b.Cleaner
	}
	return &Cleaner{}
}

func (b *Batch) progress() ProgressSink {
	if b.Progress != nil {
		return b.Progress
	}
	return nopProgress{}
}

func (b *Batch) log() LogSink {
	if b.Log != nil {
		return b.Log
	}
	return nopLog{}
}
