package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/yaklabco/doxymd/pkg/config"
	"github.com/yaklabco/doxymd/pkg/convert"
	"github.com/yaklabco/doxymd/pkg/fsutil"
	"github.com/yaklabco/doxymd/pkg/mdverify"
	"github.com/yaklabco/doxymd/pkg/render"
	"github.com/yaklabco/doxymd/pkg/xmldoc"
)

// Runner converts discovered input files to Markdown on disk.
type Runner struct {
	outDir string
	cfg    *config.Config
}

// New creates a Runner writing into outDir under the given configuration.
func New(outDir string, cfg *config.Config) *Runner {
	if cfg == nil {
		cfg = config.New()
	}
	return &Runner{outDir: outDir, cfg: cfg}
}

// Run discovers files under opts.Paths and converts them concurrently.
// Outcomes are returned in deterministic path order regardless of worker
// interleaving. Invalid Doxygen XML inputs are skipped, not fatal; the run
// itself fails only on discovery errors or context cancellation.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.convertFile(ctx, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// convertFile reads one input, converts it, and writes the .md output.
func (r *Runner) convertFile(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	raw := string(content)
	var md string

	if convert.LooksLikeXML(raw) {
		md, err = xmldoc.Convert(raw)
		if err != nil {
			// Not valid Doxygen XML: pass over the file rather than
			// failing the run, matching single-file behavior of a
			// documentation tree that mixes generated and stray XML.
			outcome.Skipped = true
			outcome.SkipReason = err.Error()
			return outcome
		}
		if group, gerr := xmldoc.GroupName(raw); gerr == nil {
			outcome.Group = group
		}
	} else {
		model := convert.Build(raw)
		outcome.Params = len(model.Params)
		outcome.CodeBlocks = len(model.CodeBlocks)
		md = render.MarkdownWith(model, render.Options{
			DetectLanguage: r.cfg.LangDetect,
		})
	}

	if r.cfg.Verify {
		stats := mdverify.Inspect([]byte(md))
		outcome.Verify = &stats
	}

	outPath := r.outputPath(path, outcome.Group)
	if err := fsutil.EnsureDir(filepath.Dir(outPath)); err != nil {
		outcome.Error = err
		return outcome
	}
	if err := fsutil.WriteAtomic(ctx, outPath, []byte(md), 0); err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.OutPath = outPath
	return outcome
}

// outputPath places the output under the out directory, grouped by
// namespace for XML-derived documents when grouping is enabled.
func (r *Runner) outputPath(inputPath, group string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if group != "" && r.cfg.GroupEnabled() {
		return filepath.Join(r.outDir, group, stem+".md")
	}
	return filepath.Join(r.outDir, stem+".md")
}
