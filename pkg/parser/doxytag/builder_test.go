package doxytag

import (
	"testing"

	"github.com/yaklabco/doxymd/pkg/doxast"
)

func buildDoc(t *testing.T, input string) *doxast.Document {
	t.Helper()
	return Build(Scan(input))
}

func TestBuild_Empty(t *testing.T) {
	doc := Build(nil)
	if !doc.IsEmpty() {
		t.Errorf("document from nil tokens should be empty: %#v", doc)
	}

	doc = buildDoc(t, "")
	if !doc.IsEmpty() {
		t.Errorf("document from empty input should be empty: %#v", doc)
	}
}

func TestBuild_FirstBriefWins(t *testing.T) {
	doc := buildDoc(t, "@brief First summary. @brief Second summary.")

	if doc.Brief != "First summary." {
		t.Errorf("brief = %q, want %q", doc.Brief, "First summary.")
	}
	if len(doc.Description) != 1 || doc.Description[0] != "Second summary." {
		t.Errorf("description = %#v, want later brief demoted", doc.Description)
	}
}

func TestBuild_LeadingTextBecomesBrief(t *testing.T) {
	doc := buildDoc(t, "Short summary.\n\nLonger detail paragraph.")

	if doc.Brief != "Short summary." {
		t.Errorf("brief = %q, want %q", doc.Brief, "Short summary.")
	}
	if len(doc.Description) != 1 || doc.Description[0] != "Longer detail paragraph." {
		t.Errorf("description = %#v", doc.Description)
	}
}

func TestBuild_ExplicitBriefBeatsLeadingText(t *testing.T) {
	// When an @brief appears anywhere, leading prose stays description.
	doc := buildDoc(t, "Leading prose.\n@brief The real summary.")

	if doc.Brief != "The real summary." {
		t.Errorf("brief = %q, want %q", doc.Brief, "The real summary.")
	}
	if len(doc.Description) != 1 || doc.Description[0] != "Leading prose." {
		t.Errorf("description = %#v, want leading prose preserved", doc.Description)
	}
}

func TestBuild_DuplicateParamsPreserved(t *testing.T) {
	doc := buildDoc(t, "@param x first meaning\n@param x second meaning")

	if len(doc.Params) != 2 {
		t.Fatalf("params = %#v, want both entries", doc.Params)
	}
	if doc.Params[0].Description != "first meaning" || doc.Params[1].Description != "second meaning" {
		t.Errorf("params out of order: %#v", doc.Params)
	}
}

func TestBuild_LastReturnWins(t *testing.T) {
	doc := buildDoc(t, "@return old value\n@returns new value")

	if doc.Returns != "new value" {
		t.Errorf("returns = %q, want %q", doc.Returns, "new value")
	}
}

func TestBuild_CodeBlocksInOrder(t *testing.T) {
	doc := buildDoc(t, "@code{.go}\na()\n@endcode\ntext\n@code\nb()\n@endcode")

	if len(doc.CodeBlocks) != 2 {
		t.Fatalf("code blocks = %#v, want 2", doc.CodeBlocks)
	}
	if doc.CodeBlocks[0].Lang != "go" || doc.CodeBlocks[0].Body != "a()" {
		t.Errorf("first block = %#v", doc.CodeBlocks[0])
	}
	if doc.CodeBlocks[1].Lang != "" || doc.CodeBlocks[1].Body != "b()" {
		t.Errorf("second block = %#v", doc.CodeBlocks[1])
	}
}

func TestBuild_BriefBodySpansUntilNextTag(t *testing.T) {
	// A tag argument runs to the next recognized tag or end of input,
	// so trailing prose on later lines still belongs to the brief.
	doc := buildDoc(t, "@brief Summary.\nStill the summary.")

	if doc.Brief != "Summary. Still the summary." {
		t.Errorf("brief = %q", doc.Brief)
	}
	if len(doc.Description) != 0 {
		t.Errorf("description = %#v, want empty", doc.Description)
	}
}

func TestBuild_TextAfterFenceIsDescription(t *testing.T) {
	doc := buildDoc(t, "Summary.\n@code\nx()\n@endcode\nRemark one.\n\nRemark two.")

	want := []string{"Remark one.", "Remark two."}
	if len(doc.Description) != len(want) {
		t.Fatalf("description = %#v, want %v", doc.Description, want)
	}
	for i := range want {
		if doc.Description[i] != want[i] {
			t.Errorf("description[%d] = %q, want %q", i, doc.Description[i], want[i])
		}
	}
}

func TestBuild_EmptyBriefClaimsSlot(t *testing.T) {
	doc := buildDoc(t, "@brief @brief Actual summary.")

	if doc.Brief != "" {
		t.Errorf("brief = %q, want empty first brief to win", doc.Brief)
	}
	if len(doc.Description) != 1 || doc.Description[0] != "Actual summary." {
		t.Errorf("description = %#v", doc.Description)
	}
}
