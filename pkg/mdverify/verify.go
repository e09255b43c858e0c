// Package mdverify inspects emitted Markdown with a real Markdown parser.
// It backs the --verify flag: after rendering, the output is parsed as GFM
// and its structure counted, so a conversion that produced a broken table or
// an unclosed fence is visible in the run summary instead of on the website.
package mdverify

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Stats summarizes the structure of a parsed Markdown document.
type Stats struct {
	Headings     int
	Paragraphs   int
	Tables       int
	TableRows    int
	FencedBlocks int
	Lists        int
}

// Inspect parses content as GitHub Flavored Markdown and returns structural
// statistics. Markdown has no parse failures, so Inspect is total.
func Inspect(content []byte) Stats {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	var stats Stats
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading:
			stats.Headings++
		case *ast.Paragraph:
			stats.Paragraphs++
		case *ast.FencedCodeBlock:
			stats.FencedBlocks++
		case *ast.List:
			stats.Lists++
		case *extast.Table:
			stats.Tables++
		case *extast.TableRow:
			stats.TableRows++
		}
		return ast.WalkContinue, nil
	})

	return stats
}

// FenceLanguages returns the info strings of all fenced code blocks in
// content, in document order. Empty strings mark unannotated fences.
func FenceLanguages(content []byte) []string {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := md.Parser().Parse(text.NewReader(content))

	var langs []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if fence, ok := n.(*ast.FencedCodeBlock); ok {
			if fence.Info != nil {
				langs = append(langs, string(fence.Info.Segment.Value(content)))
			} else {
				langs = append(langs, "")
			}
		}
		return ast.WalkContinue, nil
	})
	return langs
}
