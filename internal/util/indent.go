package util

import "strings"

// TrimIndent removes the common leading whitespace shared by all
// non-blank lines, and drops the first and last line when blank.
// Blank interior lines come out empty.
func TrimIndent(text string) string {
	lines := strings.Split(text, "\n")

	// Drop a blank first/last line so raw multi-line literals with the
	// delimiters on their own lines trim cleanly.
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent <= 0 {
		return strings.Join(lines, "\n")
	}

	trimmed := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			trimmed[i] = ""
			continue
		}
		trimmed[i] = line[minIndent:]
	}
	return strings.Join(trimmed, "\n")
}
