package utils

import (
	"strings"
	"unicode/utf8"

	"go-query-cache/internal/models"
)

// PreviewLength is the number of characters kept by Preview
const PreviewLength = 100

// ContentStats counts characters, words and lines of draft content.
// Characters are counted as runes; an empty text still has one line.
func ContentStats(content string) models.ContentStats {
	return models.ContentStats{
		Characters: utf8.RuneCountInString(content),
		Words:      len(strings.Fields(content)),
		Lines:      strings.Count(content, "\n") + 1,
		Preview:    Preview(content, PreviewLength),
	}
}

// Preview truncates content to n characters, appending "..." when cut
func Preview(content string, n int) string {
	if n <= 0 || utf8.RuneCountInString(content) <= n {
		return content
	}
	runes := []rune(content)
	return string(runes[:n]) + "..."
}
