package search

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// validateGlob reports ErrInvalidGlob for malformed patterns.
func validateGlob(glob string) error {
	if !doublestar.ValidatePattern(filepath.ToSlash(glob)) {
		return fmt.Errorf("%w: %q", ErrInvalidGlob, glob)
	}
	return nil
}

// expandGlob resolves glob against fsys and returns matching regular files.
// The leading literal directories of the pattern become the walk root, so
// both relative and absolute globs work. Directories that cannot be read are
// skipped.
func expandGlob(fsys afero.Fs, glob string) ([]string, error) {
	if err := validateGlob(glob); err != nil {
		return nil, err
	}

	base, pattern := doublestar.SplitPattern(filepath.ToSlash(filepath.Clean(glob)))
	if pattern == "" || pattern == "." || pattern == ".." {
		return nil, nil
	}

	root := fsys
	if base != "." {
		root = afero.NewBasePathFs(fsys, filepath.FromSlash(base))
	}

	matches, err := doublestar.Glob(afero.NewIOFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidGlob, glob, err)
	}

	for i, m := range matches {
		matches[i] = filepath.FromSlash(path.Join(base, m))
	}
	return matches, nil
}
