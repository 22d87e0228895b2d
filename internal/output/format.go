package output

import "github.com/crimson-sun/verity/internal/model"

// Verbosity controls which prediction fields are written.
type Verbosity int

const (
	// Minimal writes label and probability only.
	Minimal Verbosity = iota
	// Full also echoes the input text.
	Full
)

// ParseVerbosity maps "minimal" to Minimal; anything else is Full.
func ParseVerbosity(s string) Verbosity {
	if s == "minimal" {
		return Minimal
	}
	return Full
}

type minimalPrediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// FormatPrediction returns the value to encode for pred at the given verbosity.
func FormatPrediction(pred model.Prediction, verbosity Verbosity) any {
	if verbosity == Minimal {
		return minimalPrediction{Label: pred.Label, Probability: pred.Probability}
	}
	return pred
}
