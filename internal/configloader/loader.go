// Package configloader resolves the effective doxymd configuration by
// merging the standard sources in precedence order.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/doxymd/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the process working directory.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips DOXYMD_* environment overrides.
	IgnoreEnv bool

	// Overrides is applied last and carries values set explicitly on the
	// command line. May be nil.
	Overrides func(*config.Config)
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration.
// Precedence (highest to lowest):
//  1. CLI flags (opts.Overrides)
//  2. Environment variables (DOXYMD_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.doxymd.yml, upward search to the VCS root)
//  5. User config ($XDG_CONFIG_HOME/doxymd/config.yaml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	cfg := config.New()

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover config paths: %w", err)
	}

	if opts.ExplicitPath != "" {
		// An explicit path must exist; silence here would hide a typo.
		if err := mergeFile(cfg, opts.ExplicitPath, result); err != nil {
			return nil, err
		}
	} else {
		if paths.User != "" {
			if err := mergeFile(cfg, paths.User, result); err != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("ignoring user config %s: %v", paths.User, err))
			}
		}
		if paths.Project != "" {
			if err := mergeFile(cfg, paths.Project, result); err != nil {
				return nil, err
			}
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("apply environment overrides: %w", err)
		}
	}

	if opts.Overrides != nil {
		opts.Overrides(cfg)
	}

	result.Config = cfg
	return result, nil
}

// mergeFile overlays the YAML file at path onto cfg. Only keys present in
// the file override earlier values.
func mergeFile(cfg *config.Config, path string, result *LoadResult) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	loaded, err := config.FromYAML(data)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(cfg, loaded)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}

// overlay copies set fields from src onto dst. Booleans in YAML have no
// unset marker besides absence, so false values in a later file cannot clear
// an earlier true; the pointer-typed Group field is the exception.
func overlay(dst, src *config.Config) {
	if src.LangDetect {
		dst.LangDetect = true
	}
	if src.Verify {
		dst.Verify = true
	}
	if src.Group != nil {
		dst.Group = src.Group
	}
	if src.OutDir != "" {
		dst.OutDir = src.OutDir
	}
	if len(src.Extensions) > 0 {
		dst.Extensions = src.Extensions
	}
	if len(src.Ignore) > 0 {
		dst.Ignore = append(dst.Ignore, src.Ignore...)
	}
	if src.Jobs != 0 {
		dst.Jobs = src.Jobs
	}
}
