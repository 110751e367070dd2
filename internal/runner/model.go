package runner

import (
	"github.com/bartekus/commitlint/internal/linter"
	"github.com/bartekus/commitlint/internal/rules"
)

// Status is the overall outcome of a run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Exit codes decided by a run.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// Texts shown to the user.
const (
	ValidationSuccessful = "Commit validation: successful!"
	ValidationFailed     = "Commit validation: failed!"
	InputMarker          = "⧗"
	ErrorMarker          = "✖"
)

// Decision aggregates the results of every linted message.
type Decision struct {
	Results  []linter.Result
	Failed   int
	ExitCode int
}

// Passed reports whether every message passed.
func (d Decision) Passed() bool {
	return d.Failed == 0
}

// Status maps the decision onto the CI status vocabulary.
func (d Decision) Status() Status {
	if d.Passed() {
		return StatusSuccess
	}
	return StatusFailure
}

// CommitReport is the per-message entry of a Report.
type CommitReport struct {
	Header     string            `json:"header"`
	Passed     bool              `json:"passed"`
	Ignored    bool              `json:"ignored,omitempty"`
	Violations []rules.Violation `json:"violations"`
}

// Report is the machine-readable summary written with --report-file.
type Report struct {
	Status   Status         `json:"status"`
	ExitCode int            `json:"exit_code"`
	Total    int            `json:"total"`
	Failed   int            `json:"failed"`
	Commits  []CommitReport `json:"commits"`
}

// NewReport builds the report of a decision.
func NewReport(d Decision) Report {
	rep := Report{
		Status:   d.Status(),
		ExitCode: d.ExitCode,
		Total:    len(d.Results),
		Failed:   d.Failed,
		Commits:  make([]CommitReport, 0, len(d.Results)),
	}
	for _, res := range d.Results {
		rep.Commits = append(rep.Commits, CommitReport{
			Header:     res.Header,
			Passed:     res.Passed(),
			Ignored:    res.Ignored,
			Violations: res.Violations,
		})
	}
	return rep
}
