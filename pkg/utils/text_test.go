package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "collapses whitespace", input: "  hello   \n\t world  ", expected: "hello world"},
		{name: "already clean", input: "hello world", expected: "hello world"},
		{name: "empty", input: "", expected: ""},
		{name: "only whitespace", input: " \n\t ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		minLen   int
		expected []string
	}{
		{
			name:     "lowercases and filters short words",
			input:    "Grow Your Revenue Now",
			minLen:   3,
			expected: []string{"grow", "your", "revenue"},
		},
		{
			name:     "punctuation is a separator",
			input:    "demand-gen, done right",
			minLen:   3,
			expected: []string{"demand", "done", "right"},
		},
		{
			name:     "no tokens",
			input:    "a an it",
			minLen:   3,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input, tt.minLen))
		})
	}
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "hello...", TruncateText("hello world again", 11))
	assert.Equal(t, "", TruncateText("", 10))
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty becomes root", input: "", expected: "/"},
		{name: "root stays root", input: "/", expected: "/"},
		{name: "trailing slash stripped", input: "/pricing/", expected: "/pricing"},
		{name: "query stripped", input: "/pricing?utm_source=google", expected: "/pricing"},
		{name: "fragment stripped", input: "/pricing#plans", expected: "/pricing"},
		{name: "double slashes collapsed", input: "/a//b", expected: "/a/b"},
		{name: "dot segments collapsed", input: "/a/./b", expected: "/a/b"},
		{name: "parent segments resolved", input: "/a/../b", expected: "/b"},
		{name: "parent past root clamps", input: "/../..", expected: "/"},
		{name: "query on root", input: "/?gclid=abc", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePath(tt.input))
		})
	}
}

func TestUniqueStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, UniqueStrings([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []string{}, UniqueStrings(nil))
}
