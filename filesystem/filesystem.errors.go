package filesystem

import "github.com/nemerle/tempren"

// newIOError wraps an unexpected os.ReadDir/os.Stat failure from the
// gatherer. The renamer-specific kinds (FileNotFoundError,
// FileExistsError, InvalidDestinationError) are the same tagged
// variant the binder uses, so this package calls tempren's
// constructors directly rather than duplicating them.
func newIOError(path string, cause error) error {
	return tempren.NewIOError(path, cause)
}
