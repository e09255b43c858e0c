package xmldoc

import (
	"errors"
	"strings"
	"testing"
)

const classFixture = `<?xml version="1.0" encoding="UTF-8"?>
<doxygen>
  <compounddef kind="class">
    <compoundname>geom::Circle</compoundname>
    <briefdescription><para>A circle shape.</para></briefdescription>
    <detaileddescription><para>Represents a circle by center and radius.</para></detaileddescription>
    <sectiondef>
      <memberdef kind="function">
        <type>double</type>
        <name>area</name>
        <argsstring>() const</argsstring>
        <briefdescription><para>Computes the area.</para></briefdescription>
        <detaileddescription>
          <para>Uses pi times radius squared.</para>
          <simplesect kind="return"><para>the area in square units</para></simplesect>
        </detaileddescription>
      </memberdef>
      <memberdef kind="function">
        <type>void</type>
        <name>scale</name>
        <argsstring>(double factor)</argsstring>
        <param>
          <type>double</type>
          <declname>factor</declname>
          <briefdescription><para>scale multiplier</para></briefdescription>
        </param>
      </memberdef>
    </sectiondef>
  </compounddef>
</doxygen>`

func TestConvert_Class(t *testing.T) {
	got, err := Convert(classFixture)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	for _, want := range []string{
		"## geom::Circle",
		"A circle shape.",
		"Represents a circle by center and radius.",
		"### area() const",
		"**Brief:** Computes the area.",
		"**Returns:** the area in square units",
		"### scale(double factor)",
		"**Parameters:**",
		"| Name | Type | Description |",
		"| --- | --- | --- |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("output should end with a newline")
	}
}

func TestConvert_ParamRowAnchors(t *testing.T) {
	got, err := Convert(classFixture)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	wantRow := "| [`factor`](#scale-double-factor-factor) | [`double`](#type-double) | scale multiplier |"
	if !strings.Contains(got, wantRow) {
		t.Errorf("output missing row %q:\n%s", wantRow, got)
	}
}

func TestConvert_Enum(t *testing.T) {
	input := `<?xml version="1.0"?>
<doxygen>
  <compounddef kind="class">
    <compoundname>Color</compoundname>
    <sectiondef>
      <enum>
        <name>Kind</name>
        <briefdescription><para>Supported kinds.</para></briefdescription>
        <enumvalue><name>Red</name><briefdescription><para>red things</para></briefdescription></enumvalue>
        <enumvalue><name>Blue</name><briefdescription><para>blue things</para></briefdescription></enumvalue>
      </enum>
    </sectiondef>
  </compounddef>
</doxygen>`

	got, err := Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	for _, want := range []string{
		"### Enum: Kind",
		"Supported kinds.",
		"- `Red`: red things",
		"- `Blue`: blue things",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConvert_ProgramListing(t *testing.T) {
	input := `<doxygen><compounddef kind="class"><compoundname>X</compoundname>
<sectiondef><memberdef>
  <name>run</name>
  <detaileddescription>
    <para>Example:</para>
    <programlisting>
      <codeline><highlight>X x;</highlight></codeline>
      <codeline><highlight>x.run();</highlight></codeline>
    </programlisting>
  </detaileddescription>
</memberdef></sectiondef></compounddef></doxygen>`

	got, err := Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if !strings.Contains(got, "```cpp") {
		t.Errorf("output missing cpp fence:\n%s", got)
	}
	if !strings.Contains(got, "X x;") {
		t.Errorf("output missing listing content:\n%s", got)
	}
}

func TestConvert_TemplateParams(t *testing.T) {
	input := `<doxygen><compounddef kind="class"><compoundname>C</compoundname>
<sectiondef><memberdef>
  <name>map</name>
  <templateparamlist>
    <param><type>typename T</type></param>
    <param><type>typename U</type></param>
  </templateparamlist>
</memberdef></sectiondef></compounddef></doxygen>`

	got, err := Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	for _, want := range []string{
		"**Template parameters:**",
		"- typename T",
		"- typename U",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestConvert_TypeFallback(t *testing.T) {
	input := `<doxygen><compounddef kind="class"><compoundname>C</compoundname>
<sectiondef><memberdef>
  <type>int</type>
  <name>count</name>
</memberdef></sectiondef></compounddef></doxygen>`

	got, err := Convert(input)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}

	if !strings.Contains(got, "**Type:** int") {
		t.Errorf("output missing type fallback:\n%s", got)
	}
}

func TestConvert_InvalidXML(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", "<doxygen><compounddef>"},
		{"garbage", "not xml at all <"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.input)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidXML) {
				t.Errorf("error %v should wrap ErrInvalidXML", err)
			}
		})
	}
}

func TestGroupName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"namespace compound",
			`<doxygen><compounddef kind="namespace"><compoundname>geom</compoundname></compounddef></doxygen>`,
			"geom",
		},
		{
			"qualified class",
			`<doxygen><compounddef kind="class"><compoundname>geom::Circle</compoundname></compounddef></doxygen>`,
			"geom",
		},
		{
			"plain class",
			`<doxygen><compounddef kind="class"><compoundname>Widget</compoundname></compounddef></doxygen>`,
			"global",
		},
		{
			"no compound",
			`<doxygen><other/></doxygen>`,
			"global",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GroupName(tt.input)
			if err != nil {
				t.Fatalf("GroupName: %v", err)
			}
			if got != tt.want {
				t.Errorf("GroupName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"area () const", "area-const"},
		{"Scale(double factor)", "scale-double-factor"},
		{"double", "double"},
		{"", ""},
		{"___", ""},
	}

	for _, tt := range tests {
		if got := anchor(tt.input); got != tt.want {
			t.Errorf("anchor(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
