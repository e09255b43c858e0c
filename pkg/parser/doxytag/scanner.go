// Package doxytag scans Doxygen-style documentation comments into a token
// stream and assembles the tokens into a doxast.Document.
//
// The scanner is deliberately permissive: Doxygen's tag vocabulary is
// open-ended, so unrecognized @word sequences pass through as literal text,
// and malformed constructs (an unterminated @code, a @param with no name)
// degrade to partial output instead of failing the conversion.
package doxytag

import (
	"strings"

	"github.com/yaklabco/doxymd/pkg/doxast"
)

// recognizedTags are the tags the scanner acts on. Everything else is prose.
//
//nolint:gochecknoglobals // Read-only lookup table.
var recognizedTags = map[string]bool{
	"brief":   true,
	"param":   true,
	"return":  true,
	"returns": true,
	"code":    true,
}

const endCodeMarker = "endcode"

// scanner performs a single left-to-right pass over decoration-stripped text.
type scanner struct {
	src    string
	pos    int
	tokens []doxast.Token
}

// Scan tokenizes raw comment text into a sequence of tokens.
//
// Comment decoration (/**, */, leading *, /// and //! line markers) is
// stripped line by line before tag recognition; plain undecorated text is
// equally valid input. Scan never fails: worst case it emits a single text
// token carrying the input essentially unchanged.
func Scan(raw string) []doxast.Token {
	src := stripDecoration(raw)
	if strings.TrimSpace(src) == "" {
		return nil
	}

	s := &scanner{src: src}
	s.scan()
	return s.tokens
}

func (s *scanner) scan() {
	textStart := s.pos

	for s.pos < len(s.src) {
		at, name := s.nextTag(s.pos)
		if at < 0 {
			break
		}

		s.flushText(s.src[textStart:at])

		// Advance past "@name".
		s.pos = at + 1 + len(name)

		if name == "code" {
			s.scanCodeFence()
		} else {
			s.scanTagBody(name)
		}
		textStart = s.pos
	}

	if textStart < len(s.src) {
		s.flushText(s.src[textStart:])
	}
}

// nextTag returns the index and name of the next recognized tag at or after
// from, or (-1, ""). Unrecognized @word runs are skipped in whole-word steps,
// so the scan stays linear even on input dense with '@' characters.
func (s *scanner) nextTag(from int) (int, string) {
	for i := from; i < len(s.src); {
		rel := strings.IndexByte(s.src[i:], '@')
		if rel < 0 {
			return -1, ""
		}
		at := i + rel
		name := tagWord(s.src[at+1:])
		if recognizedTags[name] {
			return at, name
		}
		i = at + 1 + len(name)
	}
	return -1, ""
}

// tagWord returns the maximal run of ASCII letters at the start of s.
func tagWord(s string) string {
	n := 0
	for n < len(s) && isLetter(s[n]) {
		n++
	}
	return s[:n]
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// scanTagBody captures the argument of @brief, @param, @return or @returns.
// The argument runs until the next recognized tag or end of input and is
// whitespace-normalized, since it fills a single paragraph or table cell.
func (s *scanner) scanTagBody(name string) {
	end, _ := s.nextTag(s.pos)
	if end < 0 {
		end = len(s.src)
	}

	body := normalizeSpace(s.src[s.pos:end])
	s.pos = end

	if name == "param" {
		pname, desc := splitParam(body)
		s.tokens = append(s.tokens, doxast.TagToken(name, pname, desc))
		return
	}
	s.tokens = append(s.tokens, doxast.TagToken(name, "", body))
}

// splitParam separates the leading parameter identifier from its description.
// When the first word is not an identifier the whole body is the description
// and the name stays empty.
func splitParam(body string) (name, desc string) {
	first, rest, _ := strings.Cut(body, " ")
	if isIdentifier(first) {
		return first, rest
	}
	return "", body
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// scanCodeFence captures a @code ... @endcode region verbatim. A missing
// @endcode closes the fence implicitly at end of input.
func (s *scanner) scanCodeFence() {
	lang := s.scanLangHint()

	end := s.findEndCode()
	content := s.src[s.pos:end]
	if end == len(s.src) {
		s.pos = end
	} else {
		s.pos = end + 1 + len(endCodeMarker)
	}

	content = trimFenceEdges(content)
	s.tokens = append(s.tokens, doxast.CodeFenceToken(lang, content))
}

// scanLangHint consumes a {.lang} hint immediately following @code, if any.
func (s *scanner) scanLangHint() string {
	if s.pos >= len(s.src) || s.src[s.pos] != '{' {
		return ""
	}
	rest := s.src[s.pos+1:]
	close := strings.IndexByte(rest, '}')
	if close < 0 || strings.ContainsRune(rest[:close], '\n') {
		// No closing brace on the same line: not a hint, leave it as code.
		return ""
	}
	hint := strings.TrimSpace(rest[:close])
	hint = strings.TrimPrefix(hint, ".")
	s.pos += close + 2
	return hint
}

// findEndCode returns the index of the next @endcode word, or len(src).
// Content inside the fence is not interpreted as tags.
func (s *scanner) findEndCode() int {
	for i := s.pos; i < len(s.src); {
		rel := strings.IndexByte(s.src[i:], '@')
		if rel < 0 {
			return len(s.src)
		}
		at := i + rel
		word := tagWord(s.src[at+1:])
		if word == endCodeMarker {
			return at
		}
		i = at + 1 + len(word)
	}
	return len(s.src)
}

// trimFenceEdges drops the newline adjoining each fence marker so the code
// body carries neither the line break after @code nor the one before
// @endcode, while preserving interior indentation.
func trimFenceEdges(content string) string {
	content = strings.TrimPrefix(content, "\r\n")
	content = strings.TrimPrefix(content, "\n")
	content = strings.TrimRight(content, " \t")
	content = strings.TrimSuffix(content, "\r\n")
	content = strings.TrimSuffix(content, "\n")
	return content
}

// flushText emits the span as a text token, collapsing runs of blank lines
// into a single paragraph break. Whitespace-only spans are dropped.
func (s *scanner) flushText(span string) {
	if strings.TrimSpace(span) == "" {
		return
	}

	var paragraphs []string
	var current []string

	for _, line := range strings.Split(span, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if len(current) > 0 {
				paragraphs = append(paragraphs, strings.Join(current, "\n"))
				current = current[:0]
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, "\n"))
	}

	s.tokens = append(s.tokens, doxast.TextToken(strings.Join(paragraphs, "\n\n")))
}

// normalizeSpace collapses all whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// stripDecoration removes conventional comment markers line by line: an
// opening /** or /*!, a closing */, a leading *, and /// or //! line
// comments. Lines without decoration pass through unchanged.
func stripDecoration(raw string) string {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = stripLineDecoration(line)
	}
	return strings.Join(lines, "\n")
}

func stripLineDecoration(line string) string {
	trimmed := strings.TrimLeft(line, " \t")

	switch {
	case strings.HasPrefix(trimmed, "/**"), strings.HasPrefix(trimmed, "/*!"):
		line = dropOneSpace(trimmed[3:])
	case strings.HasPrefix(trimmed, "///"), strings.HasPrefix(trimmed, "//!"):
		line = dropOneSpace(trimmed[3:])
	case strings.HasPrefix(trimmed, "*/"):
		line = dropOneSpace(trimmed[2:])
	case strings.HasPrefix(trimmed, "*"):
		line = dropOneSpace(trimmed[1:])
	}

	if strings.HasSuffix(strings.TrimRight(line, " \t"), "*/") {
		right := strings.TrimRight(line, " \t")
		line = strings.TrimRight(right[:len(right)-2], " \t")
	}

	return line
}

func dropOneSpace(s string) string {
	return strings.TrimPrefix(s, " ")
}
