package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the set of file operations rulesync performs.
// Missing paths are reported with errors that match fs.ErrNotExist.
type FileSystemProvider interface {
	// ReadDir returns the entries directly inside path, files and
	// directories alike, sorted by name. It does not recurse.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// WriteFile creates or truncates the file at path.
	WriteFile(path string, data []byte, perm fs.FileMode) error

	// Rename moves oldPath to newPath, replacing newPath if it exists.
	Rename(oldPath, newPath string) error

	// Remove deletes the file at path.
	Remove(path string) error
}
