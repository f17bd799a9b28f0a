// Package filesystem provides the file access abstraction used by the
// collector and the template binder.
//
// Key interfaces:
//   - FileSystemProvider: flat directory listing, reads, and the write and
//     rename primitives needed for staged output commits
//   - FileInfo: File metadata similar to os.FileInfo
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with error injection
package filesystem
