package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ppiankov/lidspan/internal/model"
	"gopkg.in/yaml.v3"
)

// excerptLimit caps how many characters of a span are echoed in the summary
const excerptLimit = 40

// Renderer writes segmentation results as JSON, YAML, or a readable table
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the result as indented JSON to path
func (r *Renderer) RenderJSON(result *model.Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// RenderYAML writes the result as YAML to path
func (r *Renderer) RenderYAML(result *model.Result, path string) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// WriteJSON streams the result as indented JSON to w
func (r *Renderer) WriteJSON(result *model.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

// WriteYAML streams the result as YAML to w
func (r *Renderer) WriteYAML(result *model.Result, w io.Writer) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// RenderSummary prints a human-readable span table
func (r *Renderer) RenderSummary(result *model.Result, w io.Writer) {
	runes := []rune(result.Text)

	fmt.Fprintf(w, "%-12s %-12s %-6s %-6s %s\n", "OFFSETS", "SCRIPT", "LANG", "CONF", "TEXT")
	for _, sp := range result.Spans {
		fmt.Fprintf(w, "%-12s %-12s %-6s %-6.2f %s\n",
			fmt.Sprintf("[%d,%d)", sp.Start, sp.End),
			sp.Script, sp.Lang, sp.Confidence,
			excerpt(runes, sp.Start, sp.End))
	}
	fmt.Fprintf(w, "\n%d span(s)\n", len(result.Spans))
}

// excerpt quotes a span's text, truncated to a readable length
func excerpt(runes []rune, start, end int) string {
	if start < 0 || end > len(runes) || start >= end {
		return ""
	}
	text := runes[start:end]
	if len(text) > excerptLimit {
		return fmt.Sprintf("%q…", string(text[:excerptLimit]))
	}
	return fmt.Sprintf("%q", string(text))
}
