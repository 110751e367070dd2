package rules

// RegisterDefaultRules registers the built-in rules. The order here is the
// order violations are reported in.
func RegisterDefaultRules(r *Registry) {
	r.MustRegister(NewHeaderFormat())
	r.MustRegister(NewTypeEnum())
	r.MustRegister(NewScopeEnum())
	r.MustRegister(NewSubjectEmpty())
	r.MustRegister(NewSubjectCase())
	r.MustRegister(NewHeaderMaxLength())
	r.MustRegister(NewBodyLeadingBlank())
}
