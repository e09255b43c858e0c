package doxytag

import (
	"strings"

	"github.com/yaklabco/doxymd/pkg/doxast"
)

// Build assembles a token sequence into a document model in a single pass.
//
// Routing policies:
//   - The first @brief wins the summary slot; later @brief bodies join the
//     description instead of overwriting it. When no @brief is present, the
//     first paragraph of leading prose is promoted to the summary.
//   - @return / @returns is last-one-wins; a restated return value replaces
//     the earlier one rather than being discarded.
//   - @param entries keep source order, duplicate names included.
//
// An empty token sequence yields an empty document, not an error.
func Build(tokens []doxast.Token) *doxast.Document {
	doc := &doxast.Document{}

	hasBriefTag := false
	for _, tok := range tokens {
		if tok.Kind == doxast.TokTag && tok.Tag == "brief" {
			hasBriefTag = true
			break
		}
	}

	briefSet := false
	leading := true

	for _, tok := range tokens {
		switch tok.Kind {
		case doxast.TokTag:
			switch tok.Tag {
			case "brief":
				if !briefSet {
					doc.Brief = tok.Body
					briefSet = true
				} else if tok.Body != "" {
					doc.Description = append(doc.Description, tok.Body)
				}
			case "param":
				doc.Params = append(doc.Params, doxast.Param{
					Name:        tok.Arg,
					Description: tok.Body,
				})
			case "return", "returns":
				doc.Returns = tok.Body
			}
		case doxast.TokCodeFence:
			doc.CodeBlocks = append(doc.CodeBlocks, doxast.CodeBlock{
				Lang: tok.Lang,
				Body: tok.Content,
			})
		case doxast.TokText:
			for _, para := range strings.Split(tok.Content, "\n\n") {
				if strings.TrimSpace(para) == "" {
					continue
				}
				if leading && !hasBriefTag && !briefSet {
					doc.Brief = para
					briefSet = true
					continue
				}
				doc.Description = append(doc.Description, para)
			}
		}
		leading = false
	}

	return doc
}
