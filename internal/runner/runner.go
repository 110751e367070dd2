// Package runner drives the lint engine over one or many commit messages
// and turns the results into a single pass/fail decision.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bartekus/commitlint/internal/config"
	"github.com/bartekus/commitlint/internal/console"
	"github.com/bartekus/commitlint/internal/history"
	"github.com/bartekus/commitlint/internal/linter"
)

// Deps contains the collaborators of a Runner.
type Deps struct {
	Config  *config.Config
	Engine  *linter.Engine
	History history.Source
	Console console.Console
	// Store is optional; when set the report is written after each run.
	Store *ReportStore
	Log   logrus.FieldLogger
}

// Runner resolves inputs, lints them in order and reports.
type Runner struct {
	deps *Deps
}

// NewRunner creates a runner. Missing Config, Engine, Console or Log fall
// back to defaults.
func NewRunner(deps *Deps) *Runner {
	d := *deps
	if d.Config == nil {
		d.Config = config.Default()
	}
	if d.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		d.Log = l
	}
	if d.Engine == nil {
		d.Engine = linter.New(d.Config, nil, d.Log)
	}
	if d.Console == nil {
		d.Console = console.New(nil, nil)
	}
	return &Runner{deps: &d}
}

// Run lints every message named by in. It returns an error only when the
// input cannot be resolved; in that case nothing has been linted.
func (r *Runner) Run(ctx context.Context, in Input) (Decision, error) {
	messages, err := r.resolve(ctx, in)
	if err != nil {
		return Decision{}, err
	}

	out := r.deps.Console
	if r.deps.Config.Quiet {
		out = console.Discard{}
	}

	r.deps.Log.WithField("count", len(messages)).Debug("linting commit messages")

	dec := Decision{Results: make([]linter.Result, 0, len(messages))}
	for _, raw := range messages {
		res := r.deps.Engine.Lint(raw)
		dec.Results = append(dec.Results, res)
		if !res.Passed() {
			dec.Failed++
		}
		r.show(out, res)
	}

	if len(messages) != 1 {
		r.summarize(out, dec)
	}

	dec.ExitCode = ExitSuccess
	if !dec.Passed() {
		dec.ExitCode = ExitFailure
	}

	if r.deps.Store != nil {
		if err := r.deps.Store.Write(NewReport(dec)); err != nil {
			return dec, fmt.Errorf("writing report %s: %w", r.deps.Store.Path(), err)
		}
		r.deps.Log.WithField("path", r.deps.Store.Path()).Debug("report written")
	}
	return dec, nil
}

func (r *Runner) resolve(ctx context.Context, in Input) ([]string, error) {
	kind, err := in.Kind()
	if err != nil {
		return nil, err
	}
	r.deps.Log.WithField("input", kind).Debug("resolving input")

	switch kind {
	case KindMessage:
		return []string{in.Message}, nil

	case KindFile:
		data, err := os.ReadFile(in.File) //nolint:gosec // G304: path comes from the user
		if err != nil {
			return nil, &InputError{Kind: KindFile, Source: in.File, Err: err}
		}
		return []string{string(data)}, nil

	case KindHash:
		if r.deps.History == nil {
			return nil, fmt.Errorf("no history source configured for hash %s", in.Hash)
		}
		msg, err := r.deps.History.CommitMessage(ctx, in.Hash)
		if err != nil {
			return nil, err
		}
		return []string{msg}, nil

	default:
		if r.deps.History == nil {
			return nil, fmt.Errorf("no history source configured for range %s..%s", in.FromHash, in.ToHash)
		}
		to := in.ToHash
		if to == "" {
			to = history.DefaultToHash
		}
		return r.deps.History.CommitMessages(ctx, in.FromHash, to)
	}
}

// show prints the report of one message.
func (r *Runner) show(out console.Console, res linter.Result) {
	cfg := r.deps.Config
	echo := fmt.Sprintf("%s Input:\n%s\n", InputMarker, res.Header)

	if res.Passed() {
		if !cfg.HideInput {
			out.Success(echo)
		}
		out.Success(ValidationSuccessful)
		return
	}

	if !cfg.HideInput {
		out.Error(echo)
	}
	if cfg.SkipDetail {
		out.Error(ValidationFailed)
		return
	}
	out.Error(fmt.Sprintf("%s Found %d error(s).", ErrorMarker, len(res.Violations)))
	for _, v := range res.Violations {
		out.Error("- " + v.Message)
	}
}

func (r *Runner) summarize(out console.Console, dec Decision) {
	total := len(dec.Results)
	switch {
	case total == 0:
		out.Success("commitlint: No commits to check.")
	case dec.Passed():
		out.Success(fmt.Sprintf("commitlint: All %d commit(s) passed!", total))
	default:
		out.Error(fmt.Sprintf("commitlint: %d of %d commit(s) failed!", dec.Failed, total))
	}
}
