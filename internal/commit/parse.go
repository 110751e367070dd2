package commit

import (
	"regexp"
	"strings"
)

// ScissorsLine marks the start of the diff appended by `git commit --verbose`.
// Everything from this line onwards is not part of the message.
const ScissorsLine = "# ------------------------ >8 ------------------------"

var (
	headerRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*)(?:\(([^()]+)\))?(!)?: (.*)$`)
	footerRe = regexp.MustCompile(`^(BREAKING CHANGE|[A-Za-z0-9-]+)(?:: | #)(.*)$`)
)

// Parse decomposes raw commit text. It accepts any input, including the
// empty string, and reports malformed structure through empty fields rather
// than errors.
func Parse(raw string) Message {
	lines := StripComments(raw)

	// Leading and trailing blank lines carry no structure.
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	lines = lines[start:end]

	var msg Message
	if len(lines) == 0 {
		return msg
	}

	msg.Header = lines[0]
	parseHeader(&msg)

	rest := lines[1:]
	for len(rest) > 0 && isBlank(rest[0]) {
		msg.BlankLinesAfterHeader++
		rest = rest[1:]
	}
	if len(rest) == 0 {
		msg.BlankLinesAfterHeader = 0
		return msg
	}

	bodyLines, footers := splitFooters(rest)
	msg.Footers = footers
	msg.Body = paragraphs(bodyLines)

	for _, token := range []string{"BREAKING CHANGE", "BREAKING-CHANGE"} {
		if _, ok := msg.Footer(token); ok {
			msg.Breaking = true
		}
	}

	return msg
}

// StripComments splits raw into lines, normalising line endings, cutting the
// verbose diff below the scissors line and dropping lines starting with '#'.
func StripComments(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	if raw == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line == ScissorsLine {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

func parseHeader(msg *Message) {
	m := headerRe.FindStringSubmatch(msg.Header)
	if m == nil {
		return
	}
	msg.HeaderMatched = true
	msg.Type = m[1]
	msg.Scope = m[2]
	msg.Breaking = m[3] == "!"
	msg.Subject = m[4]
}

// splitFooters separates the footers from the body. Footers start at the
// first token line of the last paragraph; a later line without a token
// continues the value of the footer above it.
func splitFooters(lines []string) ([]string, []Footer) {
	last := 0
	for i, line := range lines {
		if isBlank(line) {
			last = i + 1
		}
	}

	start := -1
	for i := last; i < len(lines); i++ {
		if footerRe.MatchString(lines[i]) {
			start = i
			break
		}
	}
	if start < 0 {
		return lines, nil
	}

	var footers []Footer
	for _, line := range lines[start:] {
		if m := footerRe.FindStringSubmatch(line); m != nil {
			footers = append(footers, Footer{Token: m[1], Value: m[2]})
			continue
		}
		f := &footers[len(footers)-1]
		f.Value += "\n" + line
	}
	return lines[:start], footers
}

func paragraphs(lines []string) []string {
	var (
		out []string
		cur []string
	)
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range lines {
		if isBlank(line) {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
