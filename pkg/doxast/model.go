package doxast

// Param is one documented parameter. Names are not required to be unique;
// duplicates are preserved in source order rather than merged.
type Param struct {
	Name        string
	Description string
}

// CodeBlock is one verbatim code excerpt with an optional language hint.
type CodeBlock struct {
	// Lang is the fence annotation. Empty means an unannotated fence.
	Lang string

	// Body is the code text, without surrounding fence markers.
	Body string
}

// Document is the structured, tag-free representation of one documentation
// comment, independent of the output format.
//
// Every field defaults to empty rather than null: scanning an empty input
// yields a Document with all fields empty, never a failure.
type Document struct {
	// Brief is the summary line. Empty when the comment has neither a
	// @brief tag nor leading prose.
	Brief string

	// Description holds the remaining prose, one entry per paragraph, in
	// source order.
	Description []string

	// Params holds documented parameters in source order, duplicates
	// preserved.
	Params []Param

	// Returns is the description of the return value. Empty when absent.
	Returns string

	// CodeBlocks holds @code regions in source order.
	CodeBlocks []CodeBlock
}

// IsEmpty reports whether the document carries no content at all.
func (d *Document) IsEmpty() bool {
	if d == nil {
		return true
	}
	return d.Brief == "" &&
		len(d.Description) == 0 &&
		len(d.Params) == 0 &&
		d.Returns == "" &&
		len(d.CodeBlocks) == 0
}
