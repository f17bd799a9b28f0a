package rulesync

// Collector enumerates rule documents and classifies each one as a valid
// record or a validation error.
type Collector interface {
	Collect(dir string) (CollectResult, error)
}
