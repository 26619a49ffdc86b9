package filesystem

import (
	"os"
	"path/filepath"

	"github.com/nemerle/tempren"
)

// Renamer is the contract shared by the three rename behaviors: live
// rename in place, live move with auto-mkdir, and dry-run simulation.
type Renamer interface {
	// Rename relocates src to dst. override allows overwriting an
	// existing destination file (never a directory).
	Rename(src, dst string, override bool) error
}

// FileRenamer renames within an existing parent directory; it never
// creates missing path components.
type FileRenamer struct{}

// Rename implements Renamer.
func (FileRenamer) Rename(src, dst string, override bool) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return tempren.NewFileNotFoundError(src)
	} else if err != nil {
		return tempren.NewIOError(src, err)
	}

	if err := checkDestination(dst, override); err != nil {
		return err
	}

	parent := filepath.Dir(dst)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return tempren.NewInvalidDestinationError(dst)
	}

	if err := os.Rename(src, dst); err != nil {
		return tempren.NewIOError(dst, err)
	}
	return nil
}

// FileMover behaves like FileRenamer but creates any missing
// destination directory components first.
type FileMover struct{}

// Rename implements Renamer.
func (FileMover) Rename(src, dst string, override bool) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return tempren.NewFileNotFoundError(src)
	} else if err != nil {
		return tempren.NewIOError(src, err)
	}

	if err := checkDestination(dst, override); err != nil {
		return err
	}

	parent := filepath.Dir(dst)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return tempren.NewIOError(parent, err)
	}

	if err := os.Rename(src, dst); err != nil {
		return tempren.NewIOError(dst, err)
	}
	return nil
}

// checkDestination applies the invariants shared by FileRenamer and
// FileMover: dst must not already exist unless override is set, and
// overriding a directory is never allowed.
func checkDestination(dst string, override bool) error {
	info, err := os.Stat(dst)
	exists := err == nil
	if err != nil && !os.IsNotExist(err) {
		return tempren.NewIOError(dst, err)
	}

	if exists && info.IsDir() {
		return tempren.NewFileExistsError(dst)
	}
	if exists && !override {
		return tempren.NewFileExistsError(dst)
	}
	return nil
}

// DryRunRenamer simulates renames against a virtual filesystem view
// layered on top of the real one, so that a multi-step plan (e.g.
// A->B then B->A) can be validated without ever touching disk. State
// is a pure function of the real filesystem plus the operation log
// recorded in created/removed.
type DryRunRenamer struct {
	created map[string]bool
	removed map[string]bool
}

// NewDryRunRenamer creates an empty dry-run renamer.
func NewDryRunRenamer() *DryRunRenamer {
	return &DryRunRenamer{created: map[string]bool{}, removed: map[string]bool{}}
}

func (r *DryRunRenamer) exists(path string) bool {
	realExists := false
	if info, err := os.Stat(path); err == nil {
		_ = info
		realExists = true
	}
	return (realExists || r.created[path]) && !r.removed[path]
}

func (r *DryRunRenamer) realIsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Rename implements Renamer against the virtual filesystem view.
func (r *DryRunRenamer) Rename(src, dst string, override bool) error {
	if !r.exists(src) {
		return tempren.NewFileNotFoundError(src)
	}
	if r.exists(dst) && !override {
		return tempren.NewFileExistsError(dst)
	}
	if r.realIsDir(dst) {
		return tempren.NewFileExistsError(dst)
	}

	r.removed[src] = true
	r.created[dst] = true
	// Transient-state rule: A->B followed by B->A must succeed even
	// though A originally existed — once A is (virtually) removed by
	// the first rename, a later rename back onto A must not be seen
	// as re-removing something already gone.
	delete(r.removed, dst)

	return nil
}
