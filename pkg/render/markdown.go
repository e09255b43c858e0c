// Package render turns a doxast.Document into Markdown text.
//
// Rendering is a total function with a fixed section order: brief paragraph,
// description paragraphs, parameter table, returns label, code fences. Every
// section whose field is empty is omitted; the fully-empty document renders
// to the empty string.
package render

import (
	"strings"

	"github.com/yaklabco/doxymd/pkg/doxast"
	"github.com/yaklabco/doxymd/pkg/langdetect"
)

// Options controls rendering behavior.
type Options struct {
	// DetectLanguage annotates fences that carried no @code{.lang} hint
	// with a language detected from the code content. Off by default so
	// output depends only on the input text.
	DetectLanguage bool
}

// Markdown renders the document with default options.
func Markdown(doc *doxast.Document) string {
	return MarkdownWith(doc, Options{})
}

// MarkdownWith renders the document under the given options.
func MarkdownWith(doc *doxast.Document, opts Options) string {
	if doc.IsEmpty() {
		return ""
	}

	var sections []string

	if doc.Brief != "" {
		sections = append(sections, doc.Brief)
	}

	sections = append(sections, doc.Description...)

	if len(doc.Params) > 0 {
		sections = append(sections, paramTable(doc.Params))
	}

	if doc.Returns != "" {
		sections = append(sections, "**Returns:** "+doc.Returns)
	}

	for _, block := range doc.CodeBlocks {
		sections = append(sections, codeFence(block, opts))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

// paramTable renders parameters as a two-column table in source order.
// Duplicate names stay as separate rows.
func paramTable(params []doxast.Param) string {
	var b strings.Builder
	b.WriteString("| Name | Description |\n")
	b.WriteString("| --- | --- |")
	for _, p := range params {
		b.WriteString("\n| ")
		b.WriteString(tableCell(p.Name))
		b.WriteString(" | ")
		b.WriteString(tableCell(p.Description))
		b.WriteString(" |")
	}
	return b.String()
}

// tableCell escapes pipes so cell text cannot break the table row.
func tableCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}

func codeFence(block doxast.CodeBlock, opts Options) string {
	lang := block.Lang
	if lang == "" && opts.DetectLanguage && block.Body != "" {
		lang = langdetect.Detect([]byte(block.Body))
	}

	var b strings.Builder
	b.WriteString("```")
	b.WriteString(lang)
	b.WriteString("\n")
	b.WriteString(block.Body)
	b.WriteString("\n```")
	return b.String()
}
