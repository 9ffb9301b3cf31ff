// Package analyze computes basic text facts about file contents.
package analyze

import "strings"

const todoMarker = "TODO"

// LineCount returns the number of lines in content. An empty input has zero
// lines, and a trailing newline does not start a new one: "a\nb\n" is two lines.
func LineCount(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}

// HasTodos reports whether content contains the exact substring "TODO".
// The match is case-sensitive; lowercase "todo" does not count.
func HasTodos(content string) bool {
	return strings.Contains(content, todoMarker)
}
