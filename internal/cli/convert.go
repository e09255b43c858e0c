package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/doxymd/internal/configloader"
	"github.com/yaklabco/doxymd/internal/logging"
	"github.com/yaklabco/doxymd/internal/ui/pretty"
	"github.com/yaklabco/doxymd/pkg/config"
	"github.com/yaklabco/doxymd/pkg/convert"
	"github.com/yaklabco/doxymd/pkg/fsutil"
	"github.com/yaklabco/doxymd/pkg/mdverify"
	"github.com/yaklabco/doxymd/pkg/render"
	"github.com/yaklabco/doxymd/pkg/runner"
)

type convertFlags struct {
	outDir     string
	group      bool
	noGroup    bool
	langDetect bool
	verify     bool
	jobs       int
	ignore     []string
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert documentation comments or Doxygen XML to Markdown",
		Long:  convertLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outDir, "outdir", "o", "",
		"output directory for directory conversion mode")
	cmd.Flags().BoolVar(&flags.group, "group", false,
		"place XML outputs in per-namespace subdirectories")
	cmd.Flags().BoolVar(&flags.noGroup, "no-group", false,
		"disable per-namespace output subdirectories")
	cmd.Flags().BoolVar(&flags.langDetect, "lang-detect", false,
		"annotate unhinted code fences with a detected language")
	cmd.Flags().BoolVar(&flags.verify, "verify", false,
		"parse emitted Markdown and report its structure")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")

	return cmd
}

const convertLongDescription = `Convert documentation comments or Doxygen XML to Markdown.

With no arguments, reads one document from standard input and writes
Markdown to standard output. File arguments without --outdir also write to
standard output. Directory arguments (or --outdir) convert each discovered
input file into a .md file, grouping Doxygen XML outputs by namespace.

Examples:
  doxymd convert                      # stdin -> stdout
  doxymd convert comment.txt          # file -> stdout
  doxymd convert xml/ -o site/docs    # directory -> output tree
  doxymd convert xml/ --verify        # also check the emitted Markdown`

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		Overrides:    overridesFromFlags(cmd, flags),
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, loadResult.LoadedFrom)
	}
	logger.Debug("configuration resolved",
		logging.FieldLangDetect, cfg.LangDetect,
		logging.FieldVerify, cfg.Verify,
		logging.FieldGroup, cfg.GroupEnabled(),
		logging.FieldJobs, cfg.Jobs,
	)

	if len(args) == 0 {
		return convertStdin(cmd, cfg)
	}

	if !cmd.Flags().Changed("outdir") && allRegularFiles(args, workDir) {
		return convertToStdout(ctx, cmd, args, workDir, cfg)
	}

	return convertTree(ctx, cmd, args, workDir, cfg)
}

// overridesFromFlags returns the CLI overlay: only flags the user actually
// set override file and environment configuration.
func overridesFromFlags(cmd *cobra.Command, flags *convertFlags) func(*config.Config) {
	return func(cfg *config.Config) {
		if cmd.Flags().Changed("lang-detect") {
			cfg.LangDetect = flags.langDetect
		}
		if cmd.Flags().Changed("verify") {
			cfg.Verify = flags.verify
		}
		if cmd.Flags().Changed("group") {
			g := flags.group
			cfg.Group = &g
		}
		if cmd.Flags().Changed("no-group") && flags.noGroup {
			g := false
			cfg.Group = &g
		}
		if cmd.Flags().Changed("outdir") {
			cfg.OutDir = flags.outDir
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Jobs = flags.jobs
		}
		if len(flags.ignore) > 0 {
			cfg.Ignore = append(cfg.Ignore, flags.ignore...)
		}
	}
}

// convertStdin reads one document from stdin and writes Markdown to stdout.
func convertStdin(cmd *cobra.Command, cfg *config.Config) error {
	logger := logging.Default()

	if stdin, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(stdin.Fd())) {
		logger.Info("reading from standard input; finish with EOF (Ctrl-D)")
	}

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read standard input: %w", err)
	}

	md, err := convert.Auto(string(input), convertOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), md)
	reportVerify(logger, cfg, "<stdin>", md)
	return nil
}

// convertToStdout converts explicitly named files and prints the Markdown.
func convertToStdout(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	workDir string,
	cfg *config.Config,
) error {
	logger := logging.Default()

	for _, arg := range args {
		path := arg
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}

		content, err := fsutil.ReadFile(ctx, path)
		if err != nil {
			return err
		}

		md, err := convert.Auto(string(content), convertOptions(cfg))
		if err != nil {
			return fmt.Errorf("convert %s: %w", arg, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), md)
		reportVerify(logger, cfg, arg, md)
	}

	return nil
}

// convertTree runs the multi-file runner and prints per-file outcomes plus a
// summary.
func convertTree(
	ctx context.Context,
	cmd *cobra.Command,
	args []string,
	workDir string,
	cfg *config.Config,
) error {
	logger := logging.Default()

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = config.DefaultOutDir
	}
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(workDir, outDir)
	}

	logger.Debug("starting conversion run",
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
		logging.FieldOutDir, outDir,
	)

	result, err := runner.New(outDir, cfg).Run(ctx, runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		OutDir:     outDir,
		Jobs:       cfg.Jobs,
		Config:     cfg,
	})
	if err != nil {
		return fmt.Errorf("conversion run: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))

	for _, outcome := range result.Files {
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatFileOutcome(outcome))
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.FormatSummaryOneLine(result.Stats))

	logger.Debug("conversion run finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesConverted, result.Stats.FilesConverted,
		logging.FieldFilesSkipped, result.Stats.FilesSkipped,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldParams, result.Stats.ParamsTotal,
		logging.FieldCodeBlocks, result.Stats.CodeBlocksTotal,
	)

	if result.AllFailed() {
		return ErrAllInputsFailed
	}
	return nil
}

func convertOptions(cfg *config.Config) convert.Options {
	return convert.Options{
		Render: render.Options{DetectLanguage: cfg.LangDetect},
	}
}

// reportVerify logs the structure of emitted Markdown when --verify is set.
func reportVerify(logger *log.Logger, cfg *config.Config, name, md string) {
	if !cfg.Verify {
		return
	}
	stats := mdverify.Inspect([]byte(md))
	logger.Info("verified output",
		logging.FieldInput, name,
		"headings", stats.Headings,
		"paragraphs", stats.Paragraphs,
		"tables", stats.Tables,
		"fences", stats.FencedBlocks,
	)
}

// allRegularFiles reports whether every argument names an existing regular
// file, which selects stdout mode instead of a directory run.
func allRegularFiles(args []string, workDir string) bool {
	for _, arg := range args {
		path := arg
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}
