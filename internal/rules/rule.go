// Package rules holds the validators applied to a parsed commit message.
//
// Each rule is independent and pure: it reads the message and the
// configuration and returns zero or more violations. The order in which
// rules are registered is the order in which their violations are reported.
package rules

import (
	"github.com/bartekus/commitlint/internal/commit"
	"github.com/bartekus/commitlint/internal/config"
)

// Rule is implemented by every validator.
type Rule interface {
	Name() string
	Description() string
	Evaluate(msg commit.Message, cfg *config.Config) []Violation
}

// Violation is a single finding of one rule.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// baseRule carries the name and description shared by all rules.
type baseRule struct {
	name        string
	description string
}

func (r baseRule) Name() string        { return r.name }
func (r baseRule) Description() string { return r.description }

func (r baseRule) violation(message string) []Violation {
	return []Violation{{Rule: r.name, Message: message}}
}
