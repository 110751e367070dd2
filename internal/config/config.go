// Package config holds the settings resolved once at the start of a
// commitlint run. A Config is read-only after Validate succeeds.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Subject case policies.
const (
	CaseNone     = ""
	CaseLower    = "lower-case"
	CaseSentence = "sentence-case"
)

// DefaultTypes are the commit types accepted when no list is configured.
var DefaultTypes = []string{
	"build", "ci", "docs", "feat", "fix", "perf",
	"refactor", "style", "test", "chore", "revert", "bump",
}

// DefaultIgnorePatterns match messages generated by git and hosting
// platforms. Such messages pass without rule evaluation.
var DefaultIgnorePatterns = []string{
	`^Merge (pull request|branch|tag|remote-tracking branch) `,
	`^Merge .+ into .+`,
	`^Merged .+ (in|into) .+`,
	`^Merged PR .+: .+`,
	`^Revert ".+"`,
	`^Automatic merge`,
	`^Auto-merged .+ into .+`,
	`^(fixup|squash|amend)! `,
}

// Config is the resolved configuration of a run.
type Config struct {
	// Output options, set from command line flags.
	Quiet      bool `yaml:"-"`
	Verbose    bool `yaml:"-"`
	HideInput  bool `yaml:"-"`
	SkipDetail bool `yaml:"-"`

	Rules Rules `yaml:"rules"`

	ignore []*regexp.Regexp
}

// Rules are the rule-tunable values, usually loaded from a YAML file.
type Rules struct {
	Types           []string `yaml:"types"`
	Scopes          []string `yaml:"scopes"`
	HeaderMaxLength int      `yaml:"header_max_length"`
	SubjectCase     string   `yaml:"subject_case"`
	Ignore          []string `yaml:"ignore"`
	Disabled        []string `yaml:"disabled"`
}

// Error reports an invalid configuration value.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Default returns the configuration used when no file is found. It panics
// if the built-in defaults do not validate.
func Default() *Config {
	cfg := &Config{
		Rules: Rules{
			Types:  append([]string(nil), DefaultTypes...),
			Ignore: append([]string(nil), DefaultIgnorePatterns...),
		},
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

// Validate checks the rule values and compiles the ignore patterns.
func (c *Config) Validate() error {
	for i, t := range c.Rules.Types {
		if strings.TrimSpace(t) == "" {
			return &Error{Field: fmt.Sprintf("rules.types[%d]", i), Reason: "empty type name"}
		}
	}
	for i, s := range c.Rules.Scopes {
		if strings.TrimSpace(s) == "" {
			return &Error{Field: fmt.Sprintf("rules.scopes[%d]", i), Reason: "empty scope name"}
		}
	}
	if c.Rules.HeaderMaxLength < 0 {
		return &Error{Field: "rules.header_max_length", Reason: "must not be negative"}
	}
	switch c.Rules.SubjectCase {
	case CaseNone, CaseLower, CaseSentence:
	default:
		return &Error{
			Field:  "rules.subject_case",
			Reason: fmt.Sprintf("unknown policy %q (want %q or %q)", c.Rules.SubjectCase, CaseLower, CaseSentence),
		}
	}

	compiled := make([]*regexp.Regexp, 0, len(c.Rules.Ignore))
	for i, p := range c.Rules.Ignore {
		re, err := regexp.Compile(p)
		if err != nil {
			return &Error{Field: fmt.Sprintf("rules.ignore[%d]", i), Reason: err.Error()}
		}
		compiled = append(compiled, re)
	}
	c.ignore = compiled
	return nil
}

// Ignored reports whether header matches one of the ignore patterns.
func (c *Config) Ignored(header string) bool {
	for _, re := range c.ignore {
		if re.MatchString(header) {
			return true
		}
	}
	return false
}

// RuleEnabled reports whether the named rule has not been disabled.
func (c *Config) RuleEnabled(name string) bool {
	for _, d := range c.Rules.Disabled {
		if d == name {
			return false
		}
	}
	return true
}
