// Package convert is the front door of the conversion engine: it composes
// the tag scanner, the block builder, and the Markdown renderer, and sniffs
// whether an input is raw comment text or Doxygen-generated XML.
//
// Every function here is a pure function of its input. There is no shared
// state, so independent conversions may run concurrently without
// coordination.
package convert

import (
	"strings"

	"github.com/yaklabco/doxymd/pkg/doxast"
	"github.com/yaklabco/doxymd/pkg/parser/doxytag"
	"github.com/yaklabco/doxymd/pkg/render"
	"github.com/yaklabco/doxymd/pkg/xmldoc"
)

// Options controls conversion behavior.
type Options struct {
	// Render is passed through to the Markdown renderer.
	Render render.Options
}

// Convert turns raw documentation comment text into Markdown.
//
// It is total: no string input fails, and the empty string converts to the
// empty string. Calling Convert twice on the same input yields byte-identical
// output.
func Convert(raw string) string {
	return ConvertWith(raw, Options{})
}

// ConvertWith is Convert with explicit options.
func ConvertWith(raw string, opts Options) string {
	return render.MarkdownWith(Build(raw), opts.Render)
}

// Build runs the scanner and block builder, returning the document model
// without rendering it.
func Build(raw string) *doxast.Document {
	return doxytag.Build(doxytag.Scan(raw))
}

// Auto converts either input flavor: content that looks like Doxygen XML
// goes through the XML front end (where invalid XML is an error), everything
// else through the total comment-tag pipeline.
func Auto(raw string, opts Options) (string, error) {
	if LooksLikeXML(raw) {
		return xmldoc.Convert(raw)
	}
	return ConvertWith(raw, opts), nil
}

// LooksLikeXML reports whether content appears to be Doxygen XML output
// rather than comment text.
func LooksLikeXML(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return strings.HasPrefix(trimmed, "<?xml") ||
		strings.HasPrefix(trimmed, "<doxygen")
}
