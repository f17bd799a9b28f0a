package metadata

// ValidationResult contains the outcome of metadata validation.
// If Valid is false, Missing lists the absent required keys.
type ValidationResult struct {
	Valid   bool
	Missing []string
}

// AddMissing records an absent key and marks the result as invalid.
func (v *ValidationResult) AddMissing(field string) {
	v.Valid = false
	v.Missing = append(v.Missing, field)
}

// HasErrors returns true if any required key is missing.
func (v *ValidationResult) HasErrors() bool {
	return len(v.Missing) > 0
}
