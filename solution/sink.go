package solution

// ProgressSink receives batch progress updates. It is written to
// sequentially only and always reset to empty on batch completion.
type ProgressSink interface {
	SetTotal(n int)
	SetCurrent(i int, label string)
	Clear()
}

// LogSink receives user-facing batch output.
type LogSink interface {
	WriteLine(msg string)
	Clear()
}

// RebuildTrigger starts a full solution rebuild. Start reports
// synchronous acceptance only, completion is not awaited by the
// batch.
type RebuildTrigger interface {
	Start() error
}

type nopProgress struct{}

func (nopProgress) SetTotal(int)           {}
func (nopProgress) SetCurrent(int, string) {}
func (nopProgress) Clear()                 {}

type nopLog struct{}

func (nopLog) WriteLine(string) {}
func (nopLog) Clear()           {}
