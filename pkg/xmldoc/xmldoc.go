// Package xmldoc converts Doxygen-generated XML into Markdown.
//
// This is the front end for doxygen's own XML output: compound definitions
// (classes, structs, namespaces), member definitions (functions and friends),
// enums, program listings, and parameter lists. Unlike the comment-tag path,
// invalid XML here is an error: the caller asked for XML and should learn
// that the input is not Doxygen XML.
package xmldoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidXML indicates the input could not be parsed as Doxygen XML.
var ErrInvalidXML = errors.New("input is not valid Doxygen XML")

// Convert renders Doxygen XML to Markdown.
func Convert(input string) (string, error) {
	root, err := parse(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidXML, err)
	}

	var md []string

	for _, comp := range withSelf(root, "compounddef") {
		md = appendCompound(md, comp)
	}
	for _, member := range withSelf(root, "memberdef") {
		md = appendMember(md, member)
	}

	return strings.TrimSpace(strings.Join(md, "\n")) + "\n", nil
}

// GroupName returns the grouping key used to place this document in the
// output tree: the namespace name for namespace compounds, the first "::"
// segment of the compound name otherwise, or "global".
func GroupName(input string) (string, error) {
	root, err := parse(input)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidXML, err)
	}

	comp := root.child("compounddef")
	if comp == nil {
		return "global", nil
	}

	name := comp.childText("compoundname")
	switch {
	case comp.attr("kind") == "namespace" && name != "":
		return name, nil
	case strings.Contains(name, "::"):
		return strings.SplitN(name, "::", 2)[0], nil
	default:
		return "global", nil
	}
}

// withSelf returns the node itself when it has the given name, followed by
// all matching descendants.
func withSelf(n *node, name string) []*node {
	if n.name == name {
		return append([]*node{n}, n.descendants(name)...)
	}
	return n.descendants(name)
}

// appendCompound renders a compounddef: a heading, brief and detailed
// description for class-like kinds, plus any enums it contains.
func appendCompound(md []string, comp *node) []string {
	kind := comp.attr("kind")
	name := comp.childText("compoundname")

	if kind == "class" || kind == "struct" || kind == "namespace" {
		md = append(md, "## "+name)
		if text := comp.child("briefdescription").paragraphText(); text != "" {
			md = append(md, text)
		}
		if text := comp.child("detaileddescription").paragraphText(); text != "" {
			md = append(md, text)
		}
	}

	for _, enum := range comp.descendants("enum") {
		md = appendEnum(md, enum)
	}

	return md
}

func appendEnum(md []string, enum *node) []string {
	name := enum.childText("name")
	if name == "" {
		name = enum.childText("definition")
	}
	md = append(md, "### Enum: "+name)

	if text := enum.child("briefdescription").paragraphText(); text != "" {
		md = append(md, text)
	}

	for _, value := range enum.children("enumvalue") {
		vname := value.childText("name")
		if vname == "" {
			vname = value.childText("id")
		}
		vbrief := value.child("briefdescription").paragraphText()
		md = append(md, fmt.Sprintf("- `%s`: %s", vname, vbrief))
	}

	return md
}

// appendMember renders a memberdef: heading with the argument string, brief,
// detailed description, code listings, return description, parameter table,
// and template parameters.
func appendMember(md []string, member *node) []string {
	name := member.childText("name")
	args := member.childText("argsstring")
	retType := member.childText("type")

	md = append(md, "### "+name+args)

	memberAnchor := anchor(name + " " + args)

	if text := member.child("briefdescription").paragraphText(); text != "" {
		md = append(md, "**Brief:** "+text)
	}

	sawReturns := false
	if detailed := member.child("detaileddescription"); detailed != nil {
		if text := detailed.paragraphText(); text != "" {
			md = append(md, text)
		}

		for _, listing := range detailed.descendants("programlisting") {
			code := strings.Trim(listing.allText(), "\n")
			if strings.TrimSpace(code) != "" {
				md = append(md, "```cpp\n"+strings.TrimSpace(code)+"\n```")
			}
		}

		for _, sect := range detailed.descendants("simplesect") {
			if sect.attr("kind") != "return" {
				continue
			}
			if text := sect.paragraphText(); text != "" {
				md = append(md, "**Returns:** "+text)
				sawReturns = true
			}
		}
	}

	if params := member.children("param"); len(params) > 0 {
		md = append(md, "**Parameters:**")
		md = append(md, "| Name | Type | Description |")
		md = append(md, "| --- | --- | --- |")
		for _, p := range params {
			md = append(md, paramRow(p, memberAnchor))
		}
	}

	if tpl := member.child("templateparamlist"); tpl != nil {
		var tparams []string
		for _, t := range tpl.children("param") {
			tname := t.childText("type")
			if tname == "" {
				tname = strings.TrimSpace(t.allText())
			}
			if tname != "" {
				tparams = append(tparams, tname)
			}
		}
		if len(tparams) > 0 {
			md = append(md, "**Template parameters:**")
			for _, tp := range tparams {
				md = append(md, "- "+tp)
			}
		}
	}

	if retType != "" && !sawReturns {
		md = append(md, "**Type:** "+retType)
	}

	md = append(md, "")
	return md
}

// paramRow renders one parameter table row. The name links to the member
// anchor and the type links to a type anchor, matching the site generator's
// cross-reference scheme.
func paramRow(p *node, memberAnchor string) string {
	name := p.childText("declname")
	if name == "" {
		name = p.childText("defname")
	}
	ptype := p.childText("type")
	brief := p.child("briefdescription").paragraphText()

	nameCell := ""
	if name != "" {
		nameCell = fmt.Sprintf("[`%s`](#%s-%s)", name, memberAnchor, anchor(name))
	}

	typeCell := "`" + ptype + "`"
	if a := anchor(ptype); a != "" {
		typeCell = fmt.Sprintf("[`%s`](#type-%s)", ptype, a)
	}

	return fmt.Sprintf("| %s | %s | %s |", nameCell, typeCell, brief)
}

// anchor lowercases text and collapses every non-alphanumeric run to a
// single hyphen.
func anchor(text string) string {
	var b strings.Builder
	lastHyphen := true // swallow leading separators
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
