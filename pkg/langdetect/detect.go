// Package langdetect guesses the language of a code snippet.
// It wraps go-enry and is used to suggest an info string for fenced code
// blocks that have none.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Unknown is returned when no language could be determined with
// confidence. Callers should not surface it as a suggestion.
const Unknown = "text"

// classifier candidates, chosen to cover the languages that commonly
// appear in documentation code blocks.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a lowercase fence tag for the given snippet, or Unknown.
func Detect(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown
	}

	// Shebangs are unambiguous when present.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return fenceTag(lang)
	}

	if lang := detectByPattern(trimmed); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return fenceTag(lang)
	}

	return Unknown
}

// detectByPattern recognizes a handful of decisive syntactic markers that
// the statistical classifier tends to get wrong on short snippets.
func detectByPattern(trimmed []byte) string {
	s := string(trimmed)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")) &&
		(strings.Contains(s, "func ") || strings.Contains(s, "import")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) &&
		(strings.Contains(s, "\nRUN ") || strings.Contains(s, "\nCOPY ")):
		return "dockerfile"
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) && looksBalanced(trimmed):
		return "json"
	case strings.Contains(s, "def ") && strings.Contains(s, "):"):
		return "python"
	case strings.HasPrefix(strings.ToUpper(s), "SELECT ") ||
		strings.HasPrefix(strings.ToUpper(s), "INSERT INTO "):
		return "sql"
	}

	return ""
}

// looksBalanced reports whether the snippet opens and closes with the same
// bracket family, which filters out prose that merely starts with one.
func looksBalanced(b []byte) bool {
	last := b[len(b)-1]
	switch b[0] {
	case '{':
		return last == '}'
	case '[':
		return last == ']'
	default:
		return false
	}
}

// fenceTag converts a go-enry language name to the conventional fence tag.
func fenceTag(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
