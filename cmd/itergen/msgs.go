package itergen

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate source code from combinatorial templates"
	MsgGenerateShort   = "Generate output files from manifests"
	MsgRenderShort     = "Print the text a manifest generates"
	MsgValuesShort     = "Print the values a binding produces"
	MsgModesShort      = "List the iteration modes"
	MsgConfigShort     = "Inspect itergen configuration"
	MsgConfigInitShort = "Print or write a commented default configuration"
	MsgConfigShowShort = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice  = "\nDRY RUN MODE - No files were written"
	MsgConfigWritten = "Wrote [path]%s[/path]\n"
	MsgValuesCount   = "%d values"
	MsgVersionFormat = "itergen version %s\n"
	MsgVersionCommit = "  commit: %s\n"
	MsgVersionBuilt  = "  built:  %s\n"

	// Error messages
	MsgErrLoadConfig      = "failed to load configuration: %w"
	MsgErrGenerate        = "failed to generate: %w"
	MsgErrManifestsFailed = "%d of %d manifests failed"
	MsgErrBadSet          = "invalid --set %q, expected key=value"
	MsgErrConfigExists    = "%s already exists, use --force to overwrite"
	MsgErrNoCommand       = "no command specified"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagRoot         = "Project root (default: nearest .itergen.toml, git root or working directory)"
	MsgFlagSet          = "Override a configuration key (key=value, repeatable)"
	MsgFlagDryRun       = "Render without writing files or running the formatter"
	MsgFlagFormat       = "Run the formatter even if configuration disables it"
	MsgFlagNoFormat     = "Never run the formatter"
	MsgFlagFormatScript = "Formatter command; the output path is appended"
	MsgFlagPlain        = "Plain, tab separated output"
	MsgFlagMode         = "Iteration mode (see 'itergen modes')"
	MsgFlagSize         = "Number of values drawn per group"
	MsgFlagComma        = "Join drawn values with \", \""
	MsgFlagCount        = "Print only the number of values"
	MsgFlagWrite        = "Write .itergen.toml to the project root instead of stdout"
	MsgFlagForce        = "Overwrite an existing .itergen.toml"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/generate-long.txt
	msgGenerateLongRaw string
	MsgGenerateLong    = strings.TrimSpace(msgGenerateLongRaw)

	//go:embed msgs/generate-example.txt
	msgGenerateExampleRaw string
	MsgGenerateExample    = strings.TrimRight(msgGenerateExampleRaw, "\n")

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/values-long.txt
	msgValuesLongRaw string
	MsgValuesLong    = strings.TrimSpace(msgValuesLongRaw)

	//go:embed msgs/values-example.txt
	msgValuesExampleRaw string
	MsgValuesExample    = strings.TrimRight(msgValuesExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
