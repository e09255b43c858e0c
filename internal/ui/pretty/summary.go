package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/doxymd/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// FormatFileOutcome formats one converted file as a single output line.
// Example: "docs/widget.xml -> out/widgets/widget.md".
func (s *Styles) FormatFileOutcome(outcome runner.FileOutcome) string {
	switch {
	case outcome.Error != nil:
		return fmt.Sprintf("%s: %s\n",
			s.FilePath.Render(outcome.Path),
			s.Error.Render(fmt.Sprintf("error: %v", outcome.Error)),
		)
	case outcome.Skipped:
		return fmt.Sprintf("%s: %s\n",
			s.FilePath.Render(outcome.Path),
			s.Warning.Render("skipped: "+outcome.SkipReason),
		)
	default:
		line := fmt.Sprintf("%s %s %s",
			s.FilePath.Render(outcome.Path),
			s.Arrow.Render("->"),
			outcome.OutPath,
		)
		if outcome.Verify != nil {
			line += " " + s.Detail.Render(fmt.Sprintf(
				"(headings %d, tables %d, fences %d)",
				outcome.Verify.Headings,
				outcome.Verify.Tables,
				outcome.Verify.FencedBlocks,
			))
		}
		return line + "\n"
	}
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "converted 12 files (3 skipped, 1 failed)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No input files found.") + "\n"
	}

	fileWord := wordFiles
	if stats.FilesConverted == 1 {
		fileWord = wordFile
	}

	parts := []string{
		s.Success.Render(fmt.Sprintf("converted %d %s", stats.FilesConverted, fileWord)),
	}

	var extras []string
	if stats.FilesSkipped > 0 {
		extras = append(extras, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		extras = append(extras, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	if len(extras) > 0 {
		parts = append(parts, "("+strings.Join(extras, ", ")+")")
	}

	return strings.Join(parts, " ") + "\n"
}
