package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/bartekus/commitlint/internal/commit"
	"github.com/bartekus/commitlint/internal/config"
)

// IncorrectFormatError is reported when the header does not follow
// `type(scope)!: subject`.
const IncorrectFormatError = "Commit message does not follow conventional commits format."

type HeaderFormat struct{ baseRule }

func NewHeaderFormat() *HeaderFormat {
	return &HeaderFormat{baseRule{
		name:        "header-format",
		description: "header must match type(scope)!: subject",
	}}
}

func (r *HeaderFormat) Evaluate(msg commit.Message, _ *config.Config) []Violation {
	if msg.HeaderMatched {
		return nil
	}
	return r.violation(IncorrectFormatError)
}

type HeaderMaxLength struct{ baseRule }

func NewHeaderMaxLength() *HeaderMaxLength {
	return &HeaderMaxLength{baseRule{
		name:        "header-max-length",
		description: "header must not exceed the configured number of characters",
	}}
}

func (r *HeaderMaxLength) Evaluate(msg commit.Message, cfg *config.Config) []Violation {
	limit := cfg.Rules.HeaderMaxLength
	if limit <= 0 || utf8.RuneCountInString(msg.Header) <= limit {
		return nil
	}
	return r.violation(fmt.Sprintf("Header length cannot exceed %d characters.", limit))
}
