package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/itergen/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer defines the interface for rendering various output types
type Renderer interface {
	RenderReports(reports []types.Report) string
	RenderTable(header []string, rows [][]string) string
	RenderError(err error) string
}

// NewRenderer picks the terminal renderer unless plain output is requested.
func NewRenderer(plain bool) Renderer {
	if plain {
		return NewPlainRenderer()
	}
	return NewTerminalRenderer()
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderReports renders one line per manifest plus a summary
func (r *TerminalRenderer) RenderReports(reports []types.Report) string {
	if len(reports) == 0 {
		return MutedStyle.Render("No manifests found")
	}

	var result strings.Builder
	failed := 0
	for _, rep := range reports {
		line := fmt.Sprintf("%s %s %s",
			StatusIndicator(rep.Status),
			PathStyle.Render(reportTarget(rep)),
			MutedStyle.Render(StatusVerb(rep.Status)))
		if rep.Status != types.ReportFailed {
			line += MutedStyle.Render(fmt.Sprintf(" (%d groups, %d bytes)", rep.Groups, rep.Bytes))
		}
		result.WriteString(line + "\n")
		if rep.Err != nil {
			result.WriteString(Indent(ErrorStyle.Render(rep.Err.Error()), 1) + "\n")
		}
		if rep.Status == types.ReportFailed {
			failed++
		}
	}

	summary := fmt.Sprintf("%d of %d manifests generated", len(reports)-failed, len(reports))
	if failed > 0 {
		result.WriteString("\n" + ErrorStyle.Render(summary))
	} else {
		result.WriteString("\n" + SuccessStyle.Render(summary))
	}

	return result.String()
}

// RenderTable renders rows with a header using pterm's table printer
func (r *TerminalRenderer) RenderTable(header []string, rows [][]string) string {
	data := pterm.TableData{header}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return NewPlainRenderer().RenderTable(header, rows)
	}
	return strings.TrimRight(out, "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}

	return fmt.Sprintf("%s %s", ErrorIndicator, ErrorStyle.Render(err.Error()))
}

// PlainRenderer implements Renderer with plain text output (no styling)
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// RenderReports renders one tab separated line per manifest
func (r *PlainRenderer) RenderReports(reports []types.Report) string {
	lines := make([]string, 0, len(reports))
	for _, rep := range reports {
		line := fmt.Sprintf("%s\t%s", rep.Status, reportTarget(rep))
		if rep.Err != nil {
			line += "\t" + rep.Err.Error()
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderTable renders the rows only, tab separated
func (r *PlainRenderer) RenderTable(header []string, rows [][]string) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, strings.Join(row, "\t"))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

func reportTarget(rep types.Report) string {
	if rep.Output != "" {
		return rep.Output
	}
	return rep.Manifest
}
