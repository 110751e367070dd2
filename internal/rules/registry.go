package rules

import "fmt"

// Registry keeps rules in registration order.
type Registry struct {
	rules []Rule
	index map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]Rule)}
}

// NewDefaultRegistry creates a registry holding the built-in rules.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaultRules(r)
	return r
}

// Register appends a rule. Names must be unique.
func (r *Registry) Register(rule Rule) error {
	if _, dup := r.index[rule.Name()]; dup {
		return fmt.Errorf("rule already registered: %s", rule.Name())
	}
	r.rules = append(r.rules, rule)
	r.index[rule.Name()] = rule
	return nil
}

// MustRegister is Register for built-in rules, where a duplicate is a bug.
func (r *Registry) MustRegister(rule Rule) {
	if err := r.Register(rule); err != nil {
		panic(err)
	}
}

// Lookup returns the rule with the given name.
func (r *Registry) Lookup(name string) (Rule, bool) {
	rule, ok := r.index[name]
	return rule, ok
}

// Rules returns the rules in registration order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Names returns rule names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name())
	}
	return names
}
