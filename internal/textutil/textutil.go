// Package textutil provides small text helpers for the markdown
// pipeline.
package textutil

import "strings"

// Dedent removes the longest whitespace prefix common to all non-blank
// lines. Blank (whitespace-only) lines are ignored when computing the
// margin but still have it stripped when they carry it.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	margin := ""
	found := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		if !found {
			margin = indent
			found = true
			continue
		}
		i := 0
		for i < len(margin) && i < len(indent) && margin[i] == indent[i] {
			i++
		}
		margin = margin[:i]
	}

	if margin == "" {
		return text
	}
	for i, line := range lines {
		if strings.HasPrefix(line, margin) {
			lines[i] = line[len(margin):]
		}
	}
	return strings.Join(lines, "\n")
}
