// Package checksum hashes generated documents so check mode can tell whether
// an output on disk matches what a sync would write.
//
// # Normalization Strategy
//
// Two checksums are offered:
//
//   - Raw checksum: Hash of the exact content (detects all changes)
//   - Normalized checksum: Hash after converting CRLF and lone CR to LF,
//     stripping trailing whitespace from every line and trimming trailing
//     blank lines
//
// The normalized form keeps check mode quiet on checkouts that rewrite line
// endings or editors that strip the final newline.
//
// # Example Usage
//
//	calculator := checksum.New()
//	if calculator.CalculateNormalized(onDisk) != calculator.CalculateNormalized(rendered) {
//	    // output is stale
//	}
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
