package output

import (
	"encoding/json"
	"testing"

	"github.com/crimson-sun/verity/internal/model"
)

func basePrediction() model.Prediction {
	return model.Prediction{
		Label:       "FAKE",
		Probability: 0.942,
		InputText:   "You won't believe this secret giveaway",
	}
}

func encode(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return m
}

func TestFormatPredictionMinimal(t *testing.T) {
	m := encode(t, FormatPrediction(basePrediction(), Minimal))

	if _, ok := m["input_text"]; ok {
		t.Fatal("input_text should be omitted at Minimal")
	}
	if m["label"] != "FAKE" {
		t.Fatalf("label should be preserved, got %v", m["label"])
	}
	if m["probability"] != 0.942 {
		t.Fatalf("probability should be preserved, got %v", m["probability"])
	}
}

func TestFormatPredictionFull(t *testing.T) {
	m := encode(t, FormatPrediction(basePrediction(), Full))

	expected := []string{"label", "probability", "input_text"}
	for _, key := range expected {
		if _, ok := m[key]; !ok {
			t.Fatalf("expected key %q in JSON", key)
		}
	}
	if len(m) != len(expected) {
		t.Fatalf("unexpected keys: %v", m)
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in   string
		want Verbosity
	}{
		{"minimal", Minimal},
		{"full", Full},
		{"", Full},
		{"MINIMAL", Full},
	}
	for _, tt := range tests {
		if got := ParseVerbosity(tt.in); got != tt.want {
			t.Errorf("ParseVerbosity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
