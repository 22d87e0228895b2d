package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/crimson-sun/verity/internal/model"
	"github.com/crimson-sun/verity/internal/output"
)

func testPrediction() model.Prediction {
	return model.Prediction{
		Label:       "REAL",
		Probability: 0.959,
		InputText:   "Scientists discover new planet <similar> to Earth",
	}
}

// captureStdout redirects os.Stdout to capture output.
func captureStdout(fn func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestOutputCompactJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(output.Full, false)
		out.Write(context.Background(), testPrediction())
	})

	// Should be single line (NDJSON).
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var m map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["label"] != "REAL" {
		t.Fatalf("expected label=REAL, got %v", m["label"])
	}
	if !strings.Contains(lines[0], "<similar>") {
		t.Fatalf("expected unescaped input text, got %s", lines[0])
	}
}

func TestOutputPrettyJSON(t *testing.T) {
	result := captureStdout(func() {
		out := New(output.Full, true)
		out.Write(context.Background(), testPrediction())
	})

	// Pretty JSON should have multiple lines with indentation.
	if !strings.Contains(result, "  ") {
		t.Fatal("expected indented output for pretty mode")
	}
	lines := strings.Split(strings.TrimSpace(result), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected multi-line pretty output, got %d lines", len(lines))
	}
}

func TestOutputMinimalOmitsText(t *testing.T) {
	result := captureStdout(func() {
		out := New(output.Minimal, false)
		out.Write(context.Background(), testPrediction())
	})

	var m map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(result)), &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := m["input_text"]; ok {
		t.Fatal("input_text should be omitted at Minimal")
	}
	if m["probability"] != 0.959 {
		t.Fatalf("probability should be preserved, got %v", m["probability"])
	}
}
