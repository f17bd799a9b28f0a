package rulesync

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Sync or check completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (invalid args or flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitValidationFailed = 20 // One or more rule documents failed validation
	ExitTemplateMissing  = 21 // A template file was not found
	ExitOutputStale      = 22 // Generated outputs are out of date (check mode)
)

const (
	// DefaultRuleSuffix selects candidate rule documents by filename.
	DefaultRuleSuffix = "-rules.md"

	// DefaultTemplatesDir is the templates directory, relative to the rules directory.
	DefaultTemplatesDir = "templates"

	// DefaultConfigFileName is looked up in the rules directory when no
	// explicit config path is given.
	DefaultConfigFileName = "rulesync.yaml"

	// ReadmeMarker is replaced by the categorized table.
	ReadmeMarker = "<!-- RULES_README -->"

	// IndexMarker is replaced by the flat index table.
	IndexMarker = "<!-- RULES_INDEX -->"

	ReadmeOutput   = "README.md"
	ReadmeTemplate = "README.md.template"
	IndexOutput    = "agent-rules.md"
	IndexTemplate  = "agent-rules.md.template"
)
