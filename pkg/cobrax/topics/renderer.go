package topics

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns raw topic content into terminal output. format is the
// topic file extension, e.g. ".md".
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written, newline terminated
type PlainRenderer struct{}

// Render returns content with exactly one trailing newline
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}

// GlamourRenderer uses the glamour library for rich markdown rendering
type GlamourRenderer struct {
	Style string // Style name: "dark", "light", "notty", "auto", or path to custom style
	Width int    // Word wrap width (0 = glamour default)
}

// NewGlamourRenderer creates a markdown renderer using glamour with auto-detection
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

// Render converts markdown to terminal output. Non-markdown content and
// rendering failures fall back to PlainRenderer.
func (r *GlamourRenderer) Render(content string, format string) string {
	var plain PlainRenderer
	if format != ".md" {
		return plain.Render(content, format)
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStandardStyle(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return plain.Render(content, format)
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return plain.Render(content, format)
	}
	return rendered
}
