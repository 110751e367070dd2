package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bartekus/commitlint/internal/commit"
	"github.com/bartekus/commitlint/internal/config"
)

type SubjectEmpty struct{ baseRule }

func NewSubjectEmpty() *SubjectEmpty {
	return &SubjectEmpty{baseRule{
		name:        "subject-empty",
		description: "subject must not be empty",
	}}
}

func (r *SubjectEmpty) Evaluate(msg commit.Message, _ *config.Config) []Violation {
	// A malformed header is reported by header-format alone.
	if !msg.HeaderMatched || strings.TrimSpace(msg.Subject) != "" {
		return nil
	}
	return r.violation("Commit subject must not be empty.")
}

type SubjectCase struct{ baseRule }

func NewSubjectCase() *SubjectCase {
	return &SubjectCase{baseRule{
		name:        "subject-case",
		description: "subject must start with the configured letter case",
	}}
}

func (r *SubjectCase) Evaluate(msg commit.Message, cfg *config.Config) []Violation {
	subject := strings.TrimSpace(msg.Subject)
	if !msg.HeaderMatched || subject == "" {
		return nil
	}

	first, _ := utf8.DecodeRuneInString(subject)
	switch cfg.Rules.SubjectCase {
	case config.CaseLower:
		if unicode.IsUpper(first) {
			return r.violation("Subject must start with a lower-case letter.")
		}
	case config.CaseSentence:
		if unicode.IsLower(first) {
			return r.violation("Subject must start with an upper-case letter.")
		}
	}
	return nil
}
