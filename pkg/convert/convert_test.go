package convert

import (
	"strings"
	"testing"
)

func TestConvert_EmptyInput(t *testing.T) {
	if got := Convert(""); got != "" {
		t.Errorf("Convert(\"\") = %q, want empty string", got)
	}
	if got := Convert("   \n\t"); got != "" {
		t.Errorf("blank input converted to %q, want empty string", got)
	}
}

func TestConvert_Brief(t *testing.T) {
	got := Convert("/** @brief Example. */")

	if !strings.Contains(got, "Example.") {
		t.Errorf("output %q lost the brief text", got)
	}
	if strings.Contains(got, "@brief") {
		t.Errorf("output %q leaked the tag marker", got)
	}
}

func TestConvert_ParamTable(t *testing.T) {
	got := Convert("@param count number of retries")

	if !strings.Contains(got, "| Name | Description |") {
		t.Errorf("output %q missing table header", got)
	}
	if !strings.Contains(got, "| count | number of retries |") {
		t.Errorf("output %q missing param row", got)
	}
}

func TestConvert_CodeFence(t *testing.T) {
	got := Convert("@code\nint a = 1;\n@endcode")

	if !strings.Contains(got, "```\nint a = 1;\n```") {
		t.Errorf("output %q missing fenced code", got)
	}
	if strings.Contains(got, "@code") || strings.Contains(got, "@endcode") {
		t.Errorf("output %q leaked fence markers", got)
	}
}

func TestConvert_UnterminatedCode(t *testing.T) {
	got := Convert("@code\nint a = 1;")

	if !strings.Contains(got, "int a = 1;") {
		t.Errorf("output %q lost the code body", got)
	}
	if !strings.Contains(got, "```") {
		t.Errorf("output %q missing the fence", got)
	}
}

func TestConvert_UnknownTagsPassThrough(t *testing.T) {
	got := Convert("See @ref other and @note this.")

	if !strings.Contains(got, "@ref other") || !strings.Contains(got, "@note this.") {
		t.Errorf("output %q should keep unknown tags literally", got)
	}
}

func TestConvert_Stability(t *testing.T) {
	inputs := []string{
		"",
		"/** @brief A. @param x B @return C */",
		"@code{.cpp}\nf();\n@endcode trailing",
		"prose only\n\nwith paragraphs",
	}

	for _, input := range inputs {
		first := Convert(input)
		for i := 0; i < 3; i++ {
			if again := Convert(input); again != first {
				t.Errorf("unstable output for %q: %q then %q", input, first, again)
			}
		}
	}
}

func TestConvert_FullComment(t *testing.T) {
	input := `/**
 * Computes the widget score.
 *
 * @brief Scores a widget.
 * @param w the widget to score
 * @param opts scoring options
 * @return the score in [0, 1]
 * @code
 * s := Score(w, opts)
 * @endcode
 */`

	got := Convert(input)

	for _, want := range []string{
		"Scores a widget.",
		"Computes the widget score.",
		"| w | the widget to score |",
		"| opts | scoring options |",
		"**Returns:** the score in [0, 1]",
		"s := Score(w, opts)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("output should end with a newline:\n%q", got)
	}
}

func TestLooksLikeXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"xml declaration", "<?xml version=\"1.0\"?><doxygen/>", true},
		{"doxygen root", "<doxygen><compounddef/></doxygen>", true},
		{"leading whitespace", "\n  <?xml version=\"1.0\"?>", true},
		{"comment text", "/** @brief Example. */", false},
		{"html-ish prose", "use <b>bold</b> here", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeXML(tt.input); got != tt.want {
				t.Errorf("LooksLikeXML(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAuto_RoutesByContent(t *testing.T) {
	md, err := Auto("/** @brief Example. */", Options{})
	if err != nil {
		t.Fatalf("comment input errored: %v", err)
	}
	if !strings.Contains(md, "Example.") {
		t.Errorf("comment output %q", md)
	}

	xml := `<?xml version="1.0"?><doxygen><compounddef kind="class">
<compoundname>Widget</compoundname></compounddef></doxygen>`
	md, err = Auto(xml, Options{})
	if err != nil {
		t.Fatalf("xml input errored: %v", err)
	}
	if !strings.Contains(md, "## Widget") {
		t.Errorf("xml output %q missing compound heading", md)
	}

	if _, err = Auto("<?xml version=\"1.0\"?><doxygen>", Options{}); err == nil {
		t.Error("truncated xml should error")
	}
}

func TestBuild_ExposesDocument(t *testing.T) {
	doc := Build("@param a A\n@param b B")

	if len(doc.Params) != 2 {
		t.Fatalf("params = %#v", doc.Params)
	}
	if doc.Params[0].Name != "a" || doc.Params[1].Name != "b" {
		t.Errorf("params = %#v", doc.Params)
	}
}
