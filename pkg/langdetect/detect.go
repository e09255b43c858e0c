// Package langdetect guesses the programming language of a code excerpt.
// It backs the optional fence annotation for @code blocks that carry no
// explicit {.lang} hint, using go-enry plus a few cheap heuristics for the
// snippet sizes typical of documentation examples.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when no language can be determined with confidence.
const Fallback = "text"

// candidates passed to the enry classifier. Documentation examples in the
// wild are overwhelmingly drawn from this set.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"C", "C++", "Go", "Python", "Java", "JavaScript", "TypeScript",
	"Rust", "Ruby", "Shell", "SQL", "JSON", "YAML", "HTML", "CSS",
}

// Detect returns a lowercase fence tag for the given code content, or
// Fallback when detection fails or confidence is low.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Fallback
	}

	// A shebang is the strongest possible signal.
	if lang, ok := enry.GetLanguageByShebang(content); ok {
		return fenceTag(lang)
	}

	if lang := detectByHeuristic(content); lang != "" {
		return lang
	}

	// The classifier reports ok only when its confidence is high; a weak
	// guess on a five-line snippet is worse than no annotation.
	if lang, ok := enry.GetLanguageByClassifier(content, candidates); ok && lang != "" {
		return fenceTag(lang)
	}

	return Fallback
}

// detectByHeuristic checks for unambiguous syntactic markers that short
// snippets exhibit long before a statistical classifier becomes reliable.
func detectByHeuristic(content []byte) string {
	text := string(content)
	trimmed := strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(trimmed, "package ") || strings.Contains(text, "func "):
		return "go"
	case strings.Contains(text, "#include"):
		return "cpp"
	case strings.Contains(text, "def ") && strings.Contains(text, "):"):
		return "python"
	case strings.Contains(text, "fn main()") || strings.Contains(text, "println!"):
		return "rust"
	case strings.HasPrefix(trimmed, "{") && strings.Contains(trimmed, `"`):
		return "json"
	case strings.HasPrefix(trimmed, "SELECT ") || strings.HasPrefix(trimmed, "select "):
		return "sql"
	}
	return ""
}

// fenceTag maps an enry language name to a Markdown fence tag.
func fenceTag(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
