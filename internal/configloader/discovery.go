package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths. Missing files
// are empty strings, not errors.
type ConfigPaths struct {
	// User is the user-level config (e.g. ~/.config/doxymd/config.yaml).
	User string

	// Project is the project-level config found by searching upward from
	// the working directory (e.g. ./.doxymd.yml).
	Project string

	// Explicit is a config path provided via --config.
	Explicit string
}

// projectConfigFiles are the file names searched for, in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".doxymd.yml",
	".doxymd.yaml",
	"doxymd.yml",
	"doxymd.yaml",
}

// vcsRootMarkers stop the upward project search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("discover config: %w", ctx.Err())
	default:
	}

	paths := &ConfigPaths{
		User: findUserConfig(),
	}

	project, err := findProjectConfig(workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project

	return paths, nil
}

// findUserConfig looks under the OS user config directory.
func findUserConfig() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(base, "doxymd", name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// findProjectConfig searches upward from workDir, stopping at a VCS root or
// the filesystem root.
func findProjectConfig(workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", workDir, err)
	}

	for {
		for _, name := range projectConfigFiles {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, nil
			}
		}

		if isVCSRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
