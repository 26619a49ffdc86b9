// Package filesystem implements the file gatherer and the three
// renamer behaviors (live rename, live move, dry-run simulation) that
// back the rename pipeline.
package filesystem

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nemerle/tempren"
)

// FileGatherer enumerates candidate files beneath an input directory.
type FileGatherer interface {
	// GatherIn walks root and returns every matching File. The
	// implementations here read each directory with os.ReadDir, so
	// entries come sorted by file name; the OS's raw directory-entry
	// order is not preserved.
	GatherIn(root string) ([]*tempren.File, error)
}

func isHidden(basename string) bool {
	return strings.HasPrefix(basename, ".")
}

// FlatFileGatherer yields only the immediate children of the input
// directory.
type FlatFileGatherer struct {
	// IncludeHidden disables the default hidden-entry skip. A hidden
	// entry is one whose basename starts with '.'.
	IncludeHidden bool
}

// GatherIn implements FileGatherer.
func (g *FlatFileGatherer) GatherIn(root string) ([]*tempren.File, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, newIOError(root, err)
	}

	var files []*tempren.File
	for _, entry := range entries {
		if !g.IncludeHidden && isHidden(entry.Name()) {
			continue
		}
		if entry.IsDir() {
			continue
		}
		files = append(files, tempren.NewFile(root, entry.Name()))
	}
	return files, nil
}

// RecursiveFileGatherer performs a depth-first pre-order traversal of
// the input directory.
type RecursiveFileGatherer struct {
	IncludeHidden bool
}

// GatherIn implements FileGatherer.
func (g *RecursiveFileGatherer) GatherIn(root string) ([]*tempren.File, error) {
	var files []*tempren.File
	if err := g.walk(root, "", &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (g *RecursiveFileGatherer) walk(root, relDir string, files *[]*tempren.File) error {
	dirPath := filepath.Join(root, relDir)
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return newIOError(dirPath, err)
	}

	for _, entry := range entries {
		if !g.IncludeHidden && isHidden(entry.Name()) {
			// A hidden directory is skipped entirely: its descendants
			// are not visited.
			continue
		}

		rel := filepath.Join(relDir, entry.Name())

		if entry.IsDir() {
			if err := g.walk(root, rel, files); err != nil {
				return err
			}
			continue
		}

		*files = append(*files, tempren.NewFile(root, rel))
	}
	return nil
}
