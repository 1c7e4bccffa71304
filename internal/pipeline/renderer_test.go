package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ppiankov/lidspan/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleResult() *model.Result {
	return &model.Result{
		Text:        "Hola amigo, how are you?",
		SegmentedAt: time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		Spans: []model.Span{
			{Start: 0, End: 10, Script: model.ScriptLatin, Lang: "es", Confidence: 0.905},
			{Start: 10, End: 12, Script: model.ScriptCommon, Lang: model.LangUnd},
			{Start: 12, End: 24, Script: model.ScriptLatin, Lang: "en", Confidence: 0.9525},
		},
	}
}

func TestRenderJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spans.json")

	if err := NewRenderer().RenderJSON(sampleResult(), path); err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var decoded model.Result
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Spans) != 3 {
		t.Errorf("decoded %d spans, want 3", len(decoded.Spans))
	}
	if decoded.Spans[0].Lang != "es" {
		t.Errorf("first span lang = %s, want es", decoded.Spans[0].Lang)
	}
}

func TestRenderYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spans.yaml")

	if err := NewRenderer().RenderYAML(sampleResult(), path); err != nil {
		t.Fatalf("RenderYAML() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var decoded model.Result
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded.Spans) != 3 {
		t.Errorf("decoded %d spans, want 3", len(decoded.Spans))
	}
}

func TestRenderSummary(t *testing.T) {
	var buf strings.Builder
	NewRenderer().RenderSummary(sampleResult(), &buf)
	out := buf.String()

	for _, want := range []string{"OFFSETS", "[0,10)", "[12,24)", "es", "en", "und", "3 span(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, `"Hola amigo"`) {
		t.Errorf("summary missing span excerpt:\n%s", out)
	}
}

func TestExcerpt_Truncation(t *testing.T) {
	runes := []rune(strings.Repeat("a", 100))

	got := excerpt(runes, 0, 100)
	if !strings.HasSuffix(got, "…") {
		t.Errorf("expected truncated excerpt to end with ellipsis: %s", got)
	}

	if got := excerpt(runes, 90, 80); got != "" {
		t.Errorf("expected empty excerpt for inverted range, got %s", got)
	}
	if got := excerpt(runes, 0, 200); got != "" {
		t.Errorf("expected empty excerpt for out-of-range end, got %s", got)
	}
}
