package rules

import (
	"fmt"
	"strings"

	"github.com/bartekus/commitlint/internal/commit"
	"github.com/bartekus/commitlint/internal/config"
)

type TypeEnum struct{ baseRule }

func NewTypeEnum() *TypeEnum {
	return &TypeEnum{baseRule{
		name:        "type-enum",
		description: "type must be one of the configured types",
	}}
}

func (r *TypeEnum) Evaluate(msg commit.Message, cfg *config.Config) []Violation {
	allowed := cfg.Rules.Types
	if !msg.HeaderMatched || len(allowed) == 0 || contains(allowed, msg.Type) {
		return nil
	}
	return r.violation(fmt.Sprintf("Type %q is not allowed. Allowed types: %s.", msg.Type, strings.Join(allowed, ", ")))
}

// ScopeEnum only applies when a scope list is configured and the header
// carries a scope.
type ScopeEnum struct{ baseRule }

func NewScopeEnum() *ScopeEnum {
	return &ScopeEnum{baseRule{
		name:        "scope-enum",
		description: "scope must be one of the configured scopes",
	}}
}

func (r *ScopeEnum) Evaluate(msg commit.Message, cfg *config.Config) []Violation {
	allowed := cfg.Rules.Scopes
	if !msg.HeaderMatched || msg.Scope == "" || len(allowed) == 0 || contains(allowed, msg.Scope) {
		return nil
	}
	return r.violation(fmt.Sprintf("Scope %q is not allowed. Allowed scopes: %s.", msg.Scope, strings.Join(allowed, ", ")))
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
