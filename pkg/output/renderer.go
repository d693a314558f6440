// Package output turns composed documents into terminal, plain-text, or
// JSON form for the CLI.
package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/rulebook/pkg/types"
)

// Renderer renders composed guidance as rich terminal markdown via glamour.
type Renderer struct {
	Style string // "dark", "light", "notty", "auto", or path to a custom style
	Width int    // terminal width, 0 for auto-detect
}

// NewRenderer creates a markdown renderer with auto-detected styling.
func NewRenderer() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts the document's markdown to styled terminal output.
// Falls back to the plain concatenated text on any rendering error.
func (r *Renderer) Render(doc *types.ResolvedDocument) string {
	content := doc.Text()

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// IsTerminal reports whether f is attached to a terminal, treating Cygwin
// terminals as terminals.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// queryResult is the JSON shape of one compose query: attributed segments
// plus flattened warning strings.
type queryResult struct {
	Segments []types.ResolvedSegment `json:"segments"`
	Warnings []string                `json:"warnings"`
}

// WriteJSON emits the document as JSON to w.
func WriteJSON(w io.Writer, doc *types.ResolvedDocument) error {
	result := queryResult{
		Segments: doc.Segments,
		Warnings: make([]string, 0, len(doc.Warnings)),
	}
	if result.Segments == nil {
		result.Segments = []types.ResolvedSegment{}
	}
	for _, warning := range doc.Warnings {
		result.Warnings = append(result.Warnings, warning.String())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
