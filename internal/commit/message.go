// Package commit models a commit message decomposed according to the
// Conventional Commits structure: a header, optional body paragraphs and
// trailing footers.
package commit

// Footer is a single trailing `Token: value` or `Token #value` entry.
type Footer struct {
	Token string
	Value string
}

// Message is the structured form of a raw commit message.
// It is produced by Parse and never mutated afterwards.
type Message struct {
	// Header is the first non-comment line of the message, verbatim.
	Header string

	// HeaderMatched reports whether Header follows `type(scope)!: subject`.
	// When false, Type, Scope and Subject are empty.
	HeaderMatched bool

	Type     string
	Scope    string
	Breaking bool
	Subject  string

	// Body holds the non-empty paragraphs between the header and the footers.
	Body    []string
	Footers []Footer

	// BlankLinesAfterHeader counts blank lines between the header and the
	// first line of body or footers. Zero when nothing follows the header.
	BlankLinesAfterHeader int
}

// HasContent reports whether anything follows the header.
func (m Message) HasContent() bool {
	return len(m.Body) > 0 || len(m.Footers) > 0
}

// Footer returns the value of the first footer with the given token.
func (m Message) Footer(token string) (string, bool) {
	for _, f := range m.Footers {
		if f.Token == token {
			return f.Value, true
		}
	}
	return "", false
}
