package rulesync

// Metadata field names recognised by the renderers.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"

	// FieldFilename is attached by the collector once a document validates.
	// It is never read from the metadata block itself.
	FieldFilename = "filename"
)

// RequiredFields lists the metadata keys every rule document must declare,
// in the order missing keys are reported.
var RequiredFields = []string{FieldTitle, FieldDescription, FieldCategory}

// Record is the field mapping parsed from a rule document's metadata block.
// Keys that are not required are preserved but ignored by rendering.
type Record map[string]string

// Title returns the title field.
func (r Record) Title() string { return r[FieldTitle] }

// Description returns the description field.
func (r Record) Description() string { return r[FieldDescription] }

// Category returns the category field.
func (r Record) Category() string { return r[FieldCategory] }

// Filename returns the name of the document the record was parsed from.
func (r Record) Filename() string { return r[FieldFilename] }

// ValidationError describes one rule document that could not be accepted.
// Missing holds required field names in fixed order, the synthetic
// "metadata_block" entry, or a single "READ_ERROR: ..." diagnostic.
type ValidationError struct {
	File    string
	Missing []string

	// Hint is an optional remediation note shown in verbose reports.
	Hint string
}

// Synthetic entries used in ValidationError.Missing.
const (
	MissingMetadataBlock = "metadata_block"
	ReadErrorPrefix      = "READ_ERROR: "
)

// CollectResult is the outcome of scanning a rules directory.
type CollectResult struct {
	// Scanned is the number of candidate documents found.
	Scanned int

	// Records holds every valid document, each carrying FieldFilename.
	Records []Record

	// Errors holds one entry per invalid document.
	Errors []ValidationError
}

// Valid reports whether every scanned document passed validation.
func (r CollectResult) Valid() bool {
	return len(r.Errors) == 0
}

// SyncResult summarises a successful sync run.
type SyncResult struct {
	Scanned int
	Written []string
}

// CheckResult summarises a check run. Stale lists outputs whose on-disk
// content differs from what a sync would write.
type CheckResult struct {
	Scanned int
	Stale   []string
}
