package style

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MarkupParser handles parsing and rendering of markup tags
type MarkupParser struct {
	styles map[string]lipgloss.Style
}

// NewMarkupParser creates a new markup parser with default styles
func NewMarkupParser() *MarkupParser {
	return &MarkupParser{
		styles: map[string]lipgloss.Style{
			"title":   TitleStyle,
			"success": SuccessStyle,
			"error":   ErrorStyle,
			"warning": WarningStyle,
			"info":    InfoStyle,
			"code":    CodeStyle,
			"path":    PathStyle,
			"muted":   MutedStyle,
			"bold":    lipgloss.NewStyle().Bold(true),
			"marker":  MarkerStyle,
			"mode":    ModeStyle,
		},
	}
}

// tagPattern matches an innermost tag pair. Content may hold ANSI escape
// sequences left by an inner tag that was already rendered.
var tagPattern = regexp.MustCompile(`\[([a-z]+)\]((?:[^\[]|\x1b\[)*?)\[/([a-z]+)\]`)

// Render processes markup text and returns styled output. Unknown tags are
// left as written; nested tags are resolved innermost first.
func (p *MarkupParser) Render(text string) string {
	result := text

	for {
		changed := false
		result = tagPattern.ReplaceAllStringFunc(result, func(match string) string {
			sub := tagPattern.FindStringSubmatch(match)
			if sub[1] != sub[3] {
				return match
			}
			style, ok := p.styles[sub[1]]
			if !ok {
				return match
			}
			changed = true
			return style.Render(sub[2])
		})
		if !changed {
			return result
		}
	}
}

// AddStyle allows adding custom styles
func (p *MarkupParser) AddStyle(tag string, style lipgloss.Style) {
	p.styles[tag] = style
}

// RenderTemplate renders a template with variable substitution and markup
func (p *MarkupParser) RenderTemplate(template string, vars map[string]string) string {
	// First, substitute variables
	result := template
	for key, value := range vars {
		placeholder := "{{" + key + "}}"
		result = strings.ReplaceAll(result, placeholder, value)
	}

	// Then render markup
	return p.Render(result)
}

// Global parser instance
var defaultParser = NewMarkupParser()

// Render is a convenience function using the default parser
func Render(text string) string {
	return defaultParser.Render(text)
}

// RenderTemplate is a convenience function using the default parser
func RenderTemplate(template string, vars map[string]string) string {
	return defaultParser.RenderTemplate(template, vars)
}
