// Package scaffold writes the generated files of a project: backend env files,
// the backend .gitignore entry, and the root README.
package scaffold

import "strings"

// LineMatcher reports whether a single line (without its newline) is the marker
// that makes a block already present.
type LineMatcher func(line string) bool

// MergeOrAppend returns existing with block appended, unless some line of
// existing satisfies marker, in which case existing is returned unchanged.
//
// Before appending, a newline is added if existing lacks a trailing one, then
// sep is written (only when existing is non-empty). The second result reports
// whether content changed. Pure; touches no files.
func MergeOrAppend(existing string, marker LineMatcher, block, sep string) (string, bool) {
	if HasLine(existing, marker) {
		return existing, false
	}

	var b strings.Builder
	b.WriteString(existing)
	if existing != "" {
		if !strings.HasSuffix(existing, "\n") {
			b.WriteString("\n")
		}
		b.WriteString(sep)
	}
	b.WriteString(block)
	return b.String(), true
}

// HasLine reports whether any line of content satisfies marker.
// Handles both \n and \r\n line endings.
func HasLine(content string, marker LineMatcher) bool {
	for _, line := range strings.Split(content, "\n") {
		if marker(strings.TrimSuffix(line, "\r")) {
			return true
		}
	}
	return false
}

// TrimmedEquals matches lines equal to entry after trimming surrounding whitespace.
func TrimmedEquals(entry string) LineMatcher {
	return func(line string) bool {
		return strings.TrimSpace(line) == entry
	}
}

// AssignsKey matches dotenv lines assigning key ("KEY=..." or "export KEY=...").
// Commented lines never match.
func AssignsKey(key string) LineMatcher {
	return func(line string) bool {
		s := strings.TrimSpace(line)
		s = strings.TrimPrefix(s, "export ")
		s = strings.TrimLeft(s, " \t")
		name, _, ok := strings.Cut(s, "=")
		return ok && strings.TrimSpace(name) == key
	}
}
