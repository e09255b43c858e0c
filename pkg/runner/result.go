package runner

import "github.com/yaklabco/doxymd/pkg/mdverify"

// FileOutcome records what happened to a single input file.
type FileOutcome struct {
	// Path is the input file that was processed.
	Path string

	// OutPath is the Markdown file that was written. Empty when the file
	// was skipped or errored.
	OutPath string

	// Group is the namespace grouping key for XML-derived outputs.
	Group string

	// Skipped is true when the file was passed over without output,
	// e.g. an .xml file that is not valid Doxygen XML.
	Skipped bool

	// SkipReason explains a skip for the run log.
	SkipReason string

	// Params and CodeBlocks count model elements for comment-tag inputs.
	Params     int
	CodeBlocks int

	// Verify holds the structure of the emitted Markdown when
	// verification is enabled.
	Verify *mdverify.Stats

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesConverted  int
	FilesSkipped    int
	FilesErrored    int

	// CodeBlocksTotal and ParamsTotal sum model elements across
	// comment-tag inputs.
	CodeBlocksTotal int
	ParamsTotal     int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each input, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any input errored.
func (r *Result) HasFailures() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// AllFailed reports whether every discovered input errored. A run where
// nothing succeeded exits non-zero; partial failure does not.
func (r *Result) AllFailed() bool {
	return r != nil &&
		r.Stats.FilesDiscovered > 0 &&
		r.Stats.FilesErrored == r.Stats.FilesDiscovered
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
	case outcome.Skipped:
		r.Stats.FilesSkipped++
	default:
		r.Stats.FilesConverted++
		r.Stats.CodeBlocksTotal += outcome.CodeBlocks
		r.Stats.ParamsTotal += outcome.Params
	}
}
