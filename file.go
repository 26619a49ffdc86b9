package tempren

import "path/filepath"

// File describes one filesystem entry discovered by a gatherer. It is
// deliberately a thin value: input_directory is the root the user
// supplied, relative_path is the traversal-produced sub-path including
// the basename.
type File struct {
	InputDirectory string
	RelativePath   string
}

// NewFile builds a File descriptor.
func NewFile(inputDirectory, relativePath string) *File {
	return &File{InputDirectory: inputDirectory, RelativePath: relativePath}
}

// AbsolutePath joins InputDirectory and RelativePath.
func (f *File) AbsolutePath() string {
	return filepath.Join(f.InputDirectory, f.RelativePath)
}

// Basename returns the final path component of RelativePath.
func (f *File) Basename() string {
	return filepath.Base(f.RelativePath)
}

// Dir returns the directory portion of RelativePath, "." when the
// file is a direct child of InputDirectory.
func (f *File) Dir() string {
	return filepath.Dir(f.RelativePath)
}
