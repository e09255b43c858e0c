package xmldoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// node is one element of a parsed XML tree. Mixed content (text interleaved
// with child elements) is kept in source order so text extraction preserves
// the original reading order.
type node struct {
	name  string
	attrs map[string]string
	parts []part
}

// part is either a text chunk or a child element, never both.
type part struct {
	text string
	elem *node
}

// parse decodes an XML document into a node tree rooted at the top element.
func parse(input string) (*node, error) {
	dec := xml.NewDecoder(strings.NewReader(input))

	var root *node
	var stack []*node

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) && root != nil && len(stack) == 0 {
				return root, nil
			}
			return nil, fmt.Errorf("decode xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &node{name: t.Name.Local, attrs: make(map[string]string, len(t.Attr))}
			for _, a := range t.Attr {
				n.attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = n
			} else {
				top := stack[len(stack)-1]
				top.parts = append(top.parts, part{elem: n})
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unbalanced end element %q", t.Name.Local)
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.parts = append(top.parts, part{text: string(t)})
			}
		}
	}
}

// attr returns an attribute value, or "" when absent.
func (n *node) attr(key string) string {
	if n == nil {
		return ""
	}
	return n.attrs[key]
}

// child returns the first direct child element with the given name.
func (n *node) child(name string) *node {
	if n == nil {
		return nil
	}
	for _, p := range n.parts {
		if p.elem != nil && p.elem.name == name {
			return p.elem
		}
	}
	return nil
}

// children returns all direct child elements with the given name, in order.
func (n *node) children(name string) []*node {
	if n == nil {
		return nil
	}
	var out []*node
	for _, p := range n.parts {
		if p.elem != nil && p.elem.name == name {
			out = append(out, p.elem)
		}
	}
	return out
}

// descendants returns all elements with the given name anywhere below n,
// in document order.
func (n *node) descendants(name string) []*node {
	if n == nil {
		return nil
	}
	var out []*node
	for _, p := range n.parts {
		if p.elem == nil {
			continue
		}
		if p.elem.name == name {
			out = append(out, p.elem)
		}
		out = append(out, p.elem.descendants(name)...)
	}
	return out
}

// childText returns the trimmed text content of the first direct child with
// the given name, or "".
func (n *node) childText(name string) string {
	return strings.TrimSpace(n.child(name).allText())
}

// allText concatenates every text chunk below n in document order.
func (n *node) allText() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *node) writeText(b *strings.Builder) {
	for _, p := range n.parts {
		if p.elem != nil {
			p.elem.writeText(b)
			continue
		}
		b.WriteString(p.text)
	}
}

// paragraphText joins the element's <para> children with blank lines. When
// there are no <para> children it falls back to the element's full text.
func (n *node) paragraphText() string {
	if n == nil {
		return ""
	}
	var paras []string
	for _, p := range n.children("para") {
		if text := strings.TrimSpace(p.allText()); text != "" {
			paras = append(paras, text)
		}
	}
	if len(paras) == 0 {
		if text := strings.TrimSpace(n.allText()); text != "" {
			paras = append(paras, text)
		}
	}
	return strings.Join(paras, "\n\n")
}
