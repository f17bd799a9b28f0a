// Package scanner discovers rule documents and classifies them.
//
// The scanner package is responsible for:
//   - Listing the rules directory (non-recursive) for names ending in the rule suffix
//   - Skipping the reserved output filenames
//   - Extracting and validating each document's metadata block
//   - Collecting every problem instead of stopping at the first one
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
