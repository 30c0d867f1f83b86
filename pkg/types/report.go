package types

// ReportStatus summarises what happened to one manifest.
type ReportStatus string

const (
	ReportGenerated    ReportStatus = "generated"     // Written, formatter not requested
	ReportFormatted    ReportStatus = "formatted"     // Written and formatted
	ReportFormatFailed ReportStatus = "format_failed" // Written, formatter failed
	ReportDryRun       ReportStatus = "dry_run"       // Rendered only, nothing written
	ReportFailed       ReportStatus = "failed"        // Nothing written
)

// Report describes the outcome of generating one manifest.
type Report struct {
	Manifest string
	Output   string
	Groups   int
	Bytes    int
	Status   ReportStatus
	Err      error
}
