// Package linter runs the rule set against a single commit message.
package linter

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/bartekus/commitlint/internal/commit"
	"github.com/bartekus/commitlint/internal/config"
	"github.com/bartekus/commitlint/internal/rules"
)

// Result is the outcome of linting one message.
type Result struct {
	Header     string            `json:"header"`
	Violations []rules.Violation `json:"violations"`
	Ignored    bool              `json:"ignored,omitempty"`
}

// Passed reports whether no rule was violated.
func (r Result) Passed() bool {
	return len(r.Violations) == 0
}

// Engine applies the registered rules. It is safe for concurrent use.
type Engine struct {
	cfg      *config.Config
	registry *rules.Registry
	log      logrus.FieldLogger
}

// New creates an engine. A nil registry means the built-in rules; a nil
// logger discards diagnostics.
func New(cfg *config.Config, registry *rules.Registry, log logrus.FieldLogger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if registry == nil {
		registry = rules.NewDefaultRegistry()
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{cfg: cfg, registry: registry, log: log}
}

// Lint parses raw and evaluates every enabled rule. All rules run even
// after one reports a violation.
func (e *Engine) Lint(raw string) Result {
	msg := commit.Parse(raw)
	result := Result{
		Header:     msg.Header,
		Violations: []rules.Violation{},
	}

	log := e.log.WithField("header", msg.Header)

	if e.cfg.Ignored(msg.Header) {
		log.Debug("message matches an ignore pattern, skipping rules")
		result.Ignored = true
		return result
	}

	log.WithFields(logrus.Fields{
		"type":     msg.Type,
		"scope":    msg.Scope,
		"breaking": msg.Breaking,
		"body":     len(msg.Body),
		"footers":  len(msg.Footers),
	}).Debug("parsed commit message")

	for _, rule := range e.registry.Rules() {
		if !e.cfg.RuleEnabled(rule.Name()) {
			log.WithField("rule", rule.Name()).Debug("rule disabled")
			continue
		}
		found := rule.Evaluate(msg, e.cfg)
		log.WithFields(logrus.Fields{
			"rule":       rule.Name(),
			"violations": len(found),
		}).Debug("rule evaluated")
		result.Violations = append(result.Violations, found...)
	}

	return result
}
