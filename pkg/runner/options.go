// Package runner orchestrates multi-file conversion: input discovery, a
// bounded worker pool, output placement, and aggregate statistics.
package runner

import "github.com/yaklabco/doxymd/pkg/config"

// Options controls a conversion run.
type Options struct {
	// Paths are the user-specified files or directories to convert.
	// If empty, the current working directory is used.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the process working directory is used.
	WorkingDir string

	// OutDir is the directory that receives .md outputs. If empty,
	// config.DefaultOutDir under WorkingDir is used.
	OutDir string

	// Jobs is the maximum number of concurrent workers.
	// 0 or negative means one per CPU.
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.New()
	}
	return o.Config
}
