package verdict

import (
	"fmt"
	"math"
)

// Labels returned by the verdict.
const (
	Fake = "FAKE"
	Real = "REAL"
)

// Result holds the labeled outcome for one document.
type Result struct {
	Label string
	// Confidence is the probability of the chosen label.
	Confidence float64
	// FakeProbability is the raw probability of the fake class.
	FakeProbability float64
}

// Verdict turns class probabilities into a FAKE/REAL label.
type Verdict struct {
	Threshold      float64
	FakeClassIndex int
}

// New creates a Verdict. A document is labeled FAKE when the probability at
// fakeClassIndex is at least threshold.
func New(threshold float64, fakeClassIndex int) *Verdict {
	return &Verdict{Threshold: threshold, FakeClassIndex: fakeClassIndex}
}

// Decide labels a probability vector.
func (v *Verdict) Decide(proba []float64) (Result, error) {
	if v.FakeClassIndex < 0 || v.FakeClassIndex >= len(proba) {
		return Result{}, fmt.Errorf("verdict: fake class index %d outside %d probabilities", v.FakeClassIndex, len(proba))
	}

	fake := proba[v.FakeClassIndex]
	if math.IsNaN(fake) {
		return Result{}, fmt.Errorf("verdict: fake probability is NaN")
	}
	if fake >= v.Threshold {
		return Result{Label: Fake, Confidence: fake, FakeProbability: fake}, nil
	}
	return Result{Label: Real, Confidence: 1 - fake, FakeProbability: fake}, nil
}

// Round rounds x to the given number of decimal places, half away from zero.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
