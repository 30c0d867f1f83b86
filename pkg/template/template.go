// Package template holds the immutable text value that generation passes
// around, and the ${name} placeholder substitution applied to it.
package template

import "strings"

const (
	openDelim  = "${"
	closeDelim = "}"
)

// Template is text containing zero or more ${name} placeholders. It is a
// value type: substitution returns a new Template and never mutates the
// receiver.
type Template struct {
	text string
}

// New wraps text as a Template.
func New(text string) Template {
	return Template{text: text}
}

// String returns the template text.
func (t Template) String() string {
	return t.text
}

// IsZero reports whether the template holds no text.
func (t Template) IsZero() bool {
	return t.text == ""
}

// Substitute replaces every ${name} whose name is present in values.
// Placeholders missing from values are left untouched so that several
// passes can each fill part of the template. Substituted text is not
// rescanned.
func (t Template) Substitute(values map[string]string) Template {
	if len(values) == 0 || !strings.Contains(t.text, openDelim) {
		return t
	}

	var b strings.Builder
	b.Grow(len(t.text))
	scan(t.text, func(literal, name, token string) {
		b.WriteString(literal)
		if value, ok := values[name]; ok && token != "" {
			b.WriteString(value)
			return
		}
		b.WriteString(token)
	})

	return Template{text: b.String()}
}

// Placeholders returns the distinct placeholder names in order of first
// appearance.
func (t Template) Placeholders() []string {
	var names []string
	seen := make(map[string]bool)
	scan(t.text, func(_, name, token string) {
		if token == "" || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	})
	return names
}

// scan walks text and calls emit for each literal run followed by at most one
// placeholder token. token is empty for the trailing literal.
func scan(text string, emit func(literal, name, token string)) {
	rest := text
	for {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			emit(rest, "", "")
			return
		}
		nameStart := start + len(openDelim)
		end := strings.Index(rest[nameStart:], closeDelim)
		if end < 0 {
			emit(rest, "", "")
			return
		}
		name := rest[nameStart : nameStart+end]
		if !isIdentifier(name) {
			// Not a placeholder; keep the "$" and resume after it.
			emit(rest[:start+1], "", "")
			rest = rest[start+1:]
			continue
		}
		tokenEnd := nameStart + end + len(closeDelim)
		emit(rest[:start], name, rest[start:tokenEnd])
		rest = rest[tokenEnd:]
	}
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// Has reports whether the template contains a ${name} placeholder.
func (t Template) Has(name string) bool {
	return strings.Contains(t.text, openDelim+name+closeDelim)
}

// Builder concatenates rendered rows into a new Template.
type Builder struct {
	b    strings.Builder
	rows int
}

// Append adds one rendered row.
func (tb *Builder) Append(row Template) {
	tb.b.WriteString(row.text)
	tb.rows++
}

// Rows returns the number of appended rows.
func (tb *Builder) Rows() int {
	return tb.rows
}

// Template returns the concatenation of all appended rows.
func (tb *Builder) Template() Template {
	return Template{text: tb.b.String()}
}
