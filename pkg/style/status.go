package style

import (
	"github.com/arthur-debert/itergen/pkg/types"
)

// statusVerbs describe each report status after the output path.
var statusVerbs = map[types.ReportStatus]string{
	types.ReportGenerated:    "generated",
	types.ReportFormatted:    "generated and formatted",
	types.ReportFormatFailed: "generated, formatter failed",
	types.ReportDryRun:       "would be generated",
	types.ReportFailed:       "failed",
}

// StatusIndicator returns the styled glyph for a report status.
func StatusIndicator(status types.ReportStatus) string {
	switch status {
	case types.ReportGenerated, types.ReportFormatted:
		return SuccessIndicator
	case types.ReportFormatFailed:
		return WarningIndicator
	case types.ReportDryRun:
		return PendingIndicator
	case types.ReportFailed:
		return ErrorIndicator
	default:
		return InfoIndicator
	}
}

// StatusVerb returns the human description for a report status.
func StatusVerb(status types.ReportStatus) string {
	if v, ok := statusVerbs[status]; ok {
		return v
	}
	return string(status)
}
