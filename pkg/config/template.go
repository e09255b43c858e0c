package config

import "fmt"

// templateHeader documents the file for people opening it cold.
const templateHeader = `# doxymd configuration
# Converts Doxygen documentation comments and Doxygen XML to Markdown.
# All keys are optional; values shown are the defaults.
`

// fullTemplate is the annotated starter config written by "doxymd init".
const fullTemplate = templateHeader + `
# Annotate code fences that have no @code{.lang} hint by detecting the
# language from the code content.
lang_detect: false

# Parse each emitted Markdown document and report its structure
# (headings, tables, fences) in the run summary.
verify: false

# Place XML-derived outputs in per-namespace subdirectories.
group: true

# Output directory for directory conversion mode.
outdir: doxymd_output

# Input file extensions considered documentation sources.
extensions:
  - .xml
  - .dox
  - .txt

# Glob patterns for files and directories to skip.
ignore: []

# Parallel workers; 0 means one per CPU.
jobs: 0
`

// GenerateTemplate returns the starter configuration file content.
// When full is false a minimal template is produced from the defaults.
func GenerateTemplate(full bool) ([]byte, error) {
	if full {
		return []byte(fullTemplate), nil
	}

	body, err := New().ToYAML()
	if err != nil {
		return nil, fmt.Errorf("render default config: %w", err)
	}
	return append([]byte(templateHeader+"\n"), body...), nil
}
