package utils

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanText collapses runs of whitespace and trims the result.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

var wordRe = regexp.MustCompile(`[a-z0-9']+`)

// Tokenize lowercases text and returns words longer than minLen characters.
func Tokenize(text string, minLen int) []string {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > minLen {
			out = append(out, w)
		}
	}
	return out
}

// TruncateText truncates text to maxLength, preserving word boundaries.
func TruncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	truncated := text[:maxLength]
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "..."
}

// NormalizePath canonicalizes a URL path for deduplication: query and
// fragment stripped, ./ and ../ segments collapsed, double slashes
// collapsed, trailing slash removed (the root stays "/").
func NormalizePath(path string) string {
	if idx := strings.IndexAny(path, "?#"); idx >= 0 {
		path = path[:idx]
	}
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	stack := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case "", ".":
			// empty segments cover leading, trailing and double slashes
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	if len(stack) == 0 {
		return "/"
	}
	return "/" + strings.Join(stack, "/")
}

// UniqueStrings returns the input with duplicates removed, preserving
// first-occurrence order.
func UniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
