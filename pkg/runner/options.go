// Package runner provides multi-file linting orchestration.
package runner

import "github.com/tidydown/tidydown/pkg/config"

// Options controls discovery and execution for one lint run.
type Options struct {
	// Paths holds the files and directories to process. Empty means the
	// current working directory.
	Paths []string

	// WorkingDir resolves relative entries in Paths. Empty means the
	// process working directory.
	WorkingDir string

	// Extensions lists the lowercase extensions (with leading dot) that
	// count as Markdown during directory walks. Explicitly named files
	// skip this filter. Empty means DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skips matching files and directories. Ignore patterns
	// from the config file and --ignore flags are merged here.
	ExcludeGlobs []string

	// FollowSymlinks enables walking into directory symlinks.
	FollowSymlinks bool

	// Jobs caps the worker count. Zero or negative selects
	// runtime.NumCPU().
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

// DefaultExtensions returns the extensions treated as Markdown when none
// are configured.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
