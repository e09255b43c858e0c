package doxytag

import (
	"testing"

	"github.com/yaklabco/doxymd/pkg/doxast"
)

var fuzzSeeds = []string{
	"",
	"plain prose with no tags",
	"/** @brief Example. */",
	"/// @param x the value",
	"@brief A @param b B @return C",
	"@code\nint a = 1;\n@endcode",
	"@code{.py}\nprint('hi')\n@endcode",
	"@code never terminated",
	"@endcode stray closer",
	"@param\n@param x\n@param x again",
	"@@@@ @br @brief@brief @ @\x00",
	"/**\n * Summary line.\n *\n * @brief tagged.\n */",
}

// FuzzScan asserts the scanner is total: any input produces a token slice
// without panicking, and tokens carry consistent kinds.
func FuzzScan(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		tokens := Scan(input)

		for i, tok := range tokens {
			switch tok.Kind {
			case doxast.TokText:
				if tok.Content == "" {
					t.Errorf("token %d: empty text token", i)
				}
			case doxast.TokTag:
				if !recognizedTags[tok.Tag] {
					t.Errorf("token %d: unrecognized tag %q emitted", i, tok.Tag)
				}
			case doxast.TokCodeFence:
				// Any content is valid, including empty.
			default:
				t.Errorf("token %d: unknown kind %v", i, tok.Kind)
			}
		}
	})
}

// FuzzBuild asserts build-over-scan is total and deterministic: the same
// input always yields the same document.
func FuzzBuild(f *testing.F) {
	for _, seed := range fuzzSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		first := Build(Scan(input))
		second := Build(Scan(input))

		if first.Brief != second.Brief {
			t.Errorf("brief differs across runs: %q vs %q", first.Brief, second.Brief)
		}
		if len(first.Params) != len(second.Params) {
			t.Errorf("param count differs: %d vs %d", len(first.Params), len(second.Params))
		}
		if len(first.CodeBlocks) != len(second.CodeBlocks) {
			t.Errorf("code block count differs: %d vs %d", len(first.CodeBlocks), len(second.CodeBlocks))
		}
	})
}
