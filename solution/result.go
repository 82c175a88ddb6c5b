package solution

import "time"

type Status string

const (
	StatusCleaned Status = "cleaned"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result is the outcome of cleaning one project.
type Result struct {
	UniqueName string `json:"unique_name"`
	Root       string `json:"root,omitempty"`
	Status     Status `json:"status"`
	Removed    int    `json:"removed"`
	Error      string `json:"error,omitempty"`
}

// Report aggregates one batch.
type Report struct {
	Total        int           `json:"total"`
	Cleaned      int           `json:"cleaned"`
	Skipped      int           `json:"skipped"`
	Failed       int           `json:"failed"`
	RebuildAsked bool          `json:"rebuild_asked"`
	Rebuilt      bool          `json:"rebuilt"`
	RebuildError string        `json:"rebuild_error,omitempty"`
	Elapsed      time.Duration `json:"elapsed"`
	StartedAt    time.Time     `json:"started_at"`
	Results      []Result      `json:"results,omitempty"`
}

func (r *Report) Success() bool {
	if r.Failed > 0 {
		return false
	}
	if r.RebuildAsked && !r.Rebuilt {
		return false
	}
	return true
}
