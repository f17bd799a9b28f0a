// Package files groups the file-facing sub-packages.
//
//   - filesystem: filesystem abstraction with OS and in-memory implementations
//   - scanner: rule document discovery, metadata extraction and validation
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/rulesync/internal/files/filesystem"
//	    "github.com/vvka-141/rulesync/internal/files/scanner"
//	)
//
//	s := scanner.NewScannerWithFS(scanner.Rules{
//	    Suffix:   "-rules.md",
//	    Reserved: []string{"README.md", "agent-rules.md"},
//	    Required: rulesync.RequiredFields,
//	}, filesystem.NewOSFileSystem())
//	result, err := s.Collect("./rules")
package files
