package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	truncationMark = "..."
)

// formatErrorForDisplay renders an error for the banner line. The text
// is word-wrapped to at most maxErrorLines lines of maxWidth cells,
// with the first line shortened to make room for the "Error: " prefix.
// Anything past the last line is cut and marked with "...".
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}
	message := strings.Join(strings.Fields(err.Error()), " ")
	if message == "" {
		message = "unknown error"
	}

	firstWidth := maxWidth - utf8.RuneCountInString(errorPrefix)
	if firstWidth < 10 {
		firstWidth = 10
	}
	restWidth := maxWidth
	if restWidth < 10 {
		restWidth = 10
	}

	lines, rest := wrapWords(message, firstWidth, restWidth, maxErrorLines)
	if rest {
		last := lines[len(lines)-1]
		limit := restWidth - utf8.RuneCountInString(truncationMark)
		if runes := []rune(last); len(runes) > limit && limit > 0 {
			last = string(runes[:limit])
		}
		lines[len(lines)-1] = last + truncationMark
	}

	return errorPrefix + strings.Join(lines, "\n")
}

// wrapWords greedily wraps text into at most maxLines lines. The first
// line uses firstWidth, the rest restWidth. The second return value is
// true when text was left over.
func wrapWords(text string, firstWidth, restWidth, maxLines int) ([]string, bool) {
	words := strings.Fields(text)
	lines := []string{""}
	width := firstWidth

	for i, word := range words {
		cur := lines[len(lines)-1]
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if utf8.RuneCountInString(candidate) <= width || cur == "" {
			lines[len(lines)-1] = candidate
			continue
		}
		if len(lines) == maxLines {
			return lines, i < len(words)
		}
		lines = append(lines, word)
		width = restWidth
	}
	return lines, false
}
