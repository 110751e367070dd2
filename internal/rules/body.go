package rules

import (
	"github.com/bartekus/commitlint/internal/commit"
	"github.com/bartekus/commitlint/internal/config"
)

type BodyLeadingBlank struct{ baseRule }

func NewBodyLeadingBlank() *BodyLeadingBlank {
	return &BodyLeadingBlank{baseRule{
		name:        "body-leading-blank",
		description: "exactly one blank line must separate header and body",
	}}
}

func (r *BodyLeadingBlank) Evaluate(msg commit.Message, _ *config.Config) []Violation {
	if !msg.HasContent() || msg.BlankLinesAfterHeader == 1 {
		return nil
	}
	return r.violation("Body must be separated from the header by exactly one blank line.")
}
