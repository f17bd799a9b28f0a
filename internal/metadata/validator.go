package metadata

import "github.com/vvka-141/rulesync/pkg/rulesync"

// Validate checks that every required key is present in the record.
// Missing keys are reported in the order they appear in required.
// A nil record is treated as empty.
func Validate(rec rulesync.Record, required []string) ValidationResult {
	result := ValidationResult{Valid: true, Missing: []string{}}

	for _, field := range required {
		if _, ok := rec[field]; !ok {
			result.AddMissing(field)
		}
	}

	return result
}
