package solution

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProgress struct {
	total   int
	current []string
	clears  int
}

func (p *recordingProgress) SetTotal(n int) { p.total = n }
func (p *recordingProgress) SetCurrent(i int, label string) {
	p.current = append(p.current, label)
}
func (p *recordingProgress) Clear() { p.clears++ }

type recordingLog struct{ lines []string }

func (l *recordingLog) WriteLine(msg string) { l.lines = append(l.lines, msg) }
func (l *recordingLog) Clear()               { l.lines = nil }

type fakeTrigger struct {
	err       error
	calls     int
	stepsSeen int
	progress  *recordingProgress
}

func (f *fakeTrigger) Start() error {
	f.calls++
	if f.progress != nil {
		f.stepsSeen = len(f.progress.current)
	}
	return f.err
}

// projectAt builds a leaf whose root resolves to dir.
func projectAt(t *testing.T, name, dir string) *fakeProject {
	t.Helper()
	p := leaf(name)
	p.candidates = []PathCandidate{candidate("FullPath", dir, nil)}
	return p
}

func batchFixture(t *testing.T, n int) (*fakeSource, []string) {
	t.Helper()
	var projects []Project
	var roots []string
	names := []string{"alpha", "beta", "gamma", "delta"}[:n]
	for _, name := range names {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "bin", name+".dll"))
		projects = append(projects, projectAt(t, name, dir))
		roots = append(roots, dir)
	}
	return &fakeSource{projects: projects}, roots
}

func TestBatchCleansEveryProject(t *testing.T) {
	src, roots := batchFixture(t, 3)

	b := &Batch{
		Source:  src,
		Cleaner: NewCleaner([]string{"bin", "obj"}),
	}
	report := b.Run()

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 3, report.Cleaned)
	assert.Equal(t, 0, report.Failed)
	assert.True(t, report.Success())
	for _, root := range roots {
		assert.Empty(t, listDir(t, filepath.Join(root, "bin")))
	}
}

func TestBatchIsolatesPerProjectFailures(t *testing.T) {
	src, _ := batchFixture(t, 3)

	// sabotage the second project with a symlinked target
	outside := t.TempDir()
	badRoot := t.TempDir()
	require.NoError(t, os.Symlink(outside, filepath.Join(badRoot, "bin")))
	src.projects[1] = projectAt(t, "beta", badRoot)

	b := &Batch{
		Source:  src,
		Cleaner: NewCleaner([]string{"bin"}),
	}
	report := b.Run()

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Cleaned)
	assert.Equal(t, 1, report.Failed)
	assert.False(t, report.Success())

	require.Len(t, report.Results, 3)
	assert.Equal(t, StatusCleaned, report.Results[0].Status)
	assert.Equal(t, StatusFailed, report.Results[1].Status)
	assert.NotEmpty(t, report.Results[1].Error)
	assert.Equal(t, StatusCleaned, report.Results[2].Status)
}

func TestBatchSkipsUnresolvableProjects(t *testing.T) {
	src, _ := batchFixture(t, 2)
	src.projects = append(src.projects, leaf("phantom"))

	b := &Batch{
		Source:  src,
		Cleaner: NewCleaner([]string{"bin"}),
	}
	report := b.Run()

	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Cleaned)
	assert.Equal(t, 1, report.Skipped)
	assert.True(t, report.Success())
}

func TestBatchInvokesRebuildOnceAfterAllProjects(t *testing.T) {
	src, _ := batchFixture(t, 3)

	progress := &recordingProgress{}
	trigger := &fakeTrigger{progress: progress}
	b := &Batch{
		Source:   src,
		Cleaner:  NewCleaner([]string{"bin"}),
		Rebuild:  trigger,
		Progress: progress,
	}
	report := b.Run()

	assert.Equal(t, 1, trigger.calls)
	assert.Equal(t, 3, trigger.stepsSeen)
	assert.True(t, report.Rebuilt)
	assert.True(t, report.Success())
}

func TestBatchReportsRebuildStartFailure(t *testing.T) {
	src, _ := batchFixture(t, 2)

	progress := &recordingProgress{}
	trigger := &fakeTrigger{err: errors.New("build manager unavailable")}
	b := &Batch{
		Source:   src,
		Cleaner:  NewCleaner([]string{"bin"}),
		Rebuild:  trigger,
		Progress: progress,
	}
	report := b.Run()

	assert.Equal(t, 2, report.Cleaned)
	assert.False(t, report.Rebuilt)
	assert.Equal(t, "build manager unavailable", report.RebuildError)
	assert.False(t, report.Success())
	assert.Equal(t, 1, progress.clears)
}

func TestBatchProgressLifecycle(t *testing.T) {
	src, _ := batchFixture(t, 3)

	progress := &recordingProgress{}
	b := &Batch{
		Source:   src,
		Cleaner:  NewCleaner([]string{"bin"}),
		Progress: progress,
	}
	b.Run()

	assert.Equal(t, 3, progress.total)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, progress.current)
	assert.Equal(t, 1, progress.clears)
}

func TestBatchEnumerationFailureYieldsEmptyReport(t *testing.T) {
	progress := &recordingProgress{}
	log := &recordingLog{}
	b := &Batch{
		Source:   &fakeSource{projectsErr: errors.New("solution not loaded")},
		Cleaner:  NewCleaner([]string{"bin"}),
		Progress: progress,
		Log:      log,
	}
	report := b.Run()

	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 1, progress.clears)
	assert.NotEmpty(t, log.lines)
}

func TestBatchWithoutTargetsStillRebuilds(t *testing.T) {
	src, roots := batchFixture(t, 1)

	trigger := &fakeTrigger{}
	b := &Batch{
		Source:  src,
		Cleaner: NewCleaner(nil),
		Rebuild: trigger,
	}
	report := b.Run()

	assert.Equal(t, 1, trigger.calls)
	assert.True(t, report.Rebuilt)
	assert.FileExists(t, filepath.Join(roots[0], "bin", "alpha.dll"))
}

func TestSummaryEndStates(t *testing.T) {
	cleanedOnly := Summary(&Report{Total: 2, Cleaned: 2})
	assert.Contains(t, cleanedOnly, "cleaned")
	assert.NotContains(t, cleanedOnly, "rebuild")

	rebuilt := Summary(&Report{Total: 2, Cleaned: 2, RebuildAsked: true, Rebuilt: true})
	assert.Contains(t, rebuilt, "rebuild started")

	noStart := Summary(&Report{Total: 2, Cleaned: 2, RebuildAsked: true})
	assert.Contains(t, noStart, "could not be started")
}
