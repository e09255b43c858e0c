// Package doxast defines the token stream and document model shared by the
// Doxygen tag scanner, the block builder, and the Markdown renderer.
package doxast

//go:generate stringer -type=TokenKind -trimprefix=Tok

// TokenKind classifies a scanned unit of documentation comment text.
type TokenKind uint8

// The scanner produces exactly these three kinds. The set is closed so the
// block builder can route tokens with an exhaustive switch.
const (
	// TokText is free-form prose. Paragraphs inside the content are
	// separated by a single blank line; runs of blank lines are collapsed
	// during scanning.
	TokText TokenKind = iota

	// TokTag is a recognized Doxygen tag (@brief, @param, @return/@returns)
	// together with its captured argument.
	TokTag

	// TokCodeFence is the verbatim content of a @code ... @endcode region.
	TokCodeFence
)

// Token is a classified unit of scanned input. Tokens are produced in source
// order and are immutable once created.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// Content holds prose for TokText and verbatim code for TokCodeFence.
	Content string

	// Tag is the lowercase tag name for TokTag ("brief", "param",
	// "return", "returns").
	Tag string

	// Arg is the parameter name for a @param token. It is empty when the
	// tag takes no leading identifier or when the identifier is missing.
	Arg string

	// Body is the tag's argument text for TokTag, whitespace-normalized.
	Body string

	// Lang is the optional language hint for TokCodeFence, captured from
	// a @code{.lang} form.
	Lang string
}

// TextToken returns a prose token.
func TextToken(content string) Token {
	return Token{Kind: TokText, Content: content}
}

// TagToken returns a recognized-tag token.
func TagToken(name, arg, body string) Token {
	return Token{Kind: TokTag, Tag: name, Arg: arg, Body: body}
}

// CodeFenceToken returns a verbatim code region token.
func CodeFenceToken(lang, content string) Token {
	return Token{Kind: TokCodeFence, Lang: lang, Content: content}
}
