// Package source splices generated text into a host document at a marker
// while keeping the marker's indentation.
package source

import "strings"

// SpaceCount returns the number of leading whitespace characters in line.
func SpaceCount(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// IndentLines prefixes every line of text after the first with count
// spaces. The first line is left alone because it inherits the position of
// the marker it replaces.
func IndentLines(count int, text string) string {
	if count <= 0 || text == "" {
		return text
	}

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	pad := strings.Repeat(" ", count)
	var b strings.Builder
	b.Grow(len(text) + len(lines)*count)
	b.WriteString(lines[0])
	for _, line := range lines[1:] {
		b.WriteString(pad)
		b.WriteString(line)
	}
	return b.String()
}

// Insert replaces every occurrence of marker in host with text. The
// indentation applied to text is taken from the last host line containing
// the marker and used for all replacements.
func Insert(host, marker, text string) string {
	if marker == "" {
		return host
	}

	count := 0
	for _, line := range strings.SplitAfter(host, "\n") {
		if strings.Contains(line, marker) {
			count = SpaceCount(line)
		}
	}

	return strings.ReplaceAll(host, marker, IndentLines(count, text))
}

// Contains reports whether host holds marker at least once.
func Contains(host, marker string) bool {
	return marker != "" && strings.Contains(host, marker)
}
