package classifier

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/crimson-sun/verity/internal/engine/vectorizer"
)

const kindLogistic = "logistic_regression"

// Logistic is a fitted logistic regression. One coefficient row means a
// binary model scored with the logistic function; several rows mean a
// multinomial model scored with softmax.
type Logistic struct {
	coef      [][]float64
	intercept []float64
	features  int
}

// NewLogistic validates weights and returns a Logistic classifier.
// intercept may be nil, meaning all zeros.
func NewLogistic(coef [][]float64, intercept []float64) (*Logistic, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("logistic: no coefficient rows")
	}
	n := len(coef[0])
	if n == 0 {
		return nil, fmt.Errorf("logistic: coefficient rows are empty")
	}
	for i, row := range coef {
		if len(row) != n {
			return nil, fmt.Errorf("logistic: row %d has %d coefficients, want %d", i, len(row), n)
		}
	}
	if intercept == nil {
		intercept = make([]float64, len(coef))
	}
	if len(intercept) != len(coef) {
		return nil, fmt.Errorf("logistic: %d intercepts for %d coefficient rows", len(intercept), len(coef))
	}
	return &Logistic{coef: coef, intercept: intercept, features: n}, nil
}

func (l *Logistic) Kind() string     { return kindLogistic }
func (l *Logistic) NumFeatures() int { return l.features }
func (l *Logistic) Close() error     { return nil }

func (l *Logistic) NumClasses() int {
	if len(l.coef) == 1 {
		return 2
	}
	return len(l.coef)
}

// PredictProba implements Classifier.
func (l *Logistic) PredictProba(x vectorizer.Sparse) ([]float64, error) {
	if err := checkDim(x, l.features); err != nil {
		return nil, err
	}
	if len(l.coef) == 1 {
		p := sigmoid(x.Dot(l.coef[0]) + l.intercept[0])
		return []float64{1 - p, p}, nil
	}
	scores := make([]float64, len(l.coef))
	for i, row := range l.coef {
		scores[i] = x.Dot(row) + l.intercept[i]
	}
	return softmax(scores), nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// softmax normalizes scores in place after shifting by the maximum and
// returns them.
func softmax(scores []float64) []float64 {
	peak := math.Inf(-1)
	for _, s := range scores {
		peak = math.Max(peak, s)
	}
	var sum float64
	for i, s := range scores {
		scores[i] = math.Exp(s - peak)
		sum += scores[i]
	}
	for i := range scores {
		scores[i] /= sum
	}
	return scores
}

func decodeLogistic(raw []byte) (Classifier, error) {
	var a struct {
		Classes   []json.RawMessage `json:"classes"`
		Coef      [][]float64       `json:"coef"`
		Intercept []float64         `json:"intercept"`
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("logistic: failed to parse artifact: %w", err)
	}
	l, err := NewLogistic(a.Coef, a.Intercept)
	if err != nil {
		return nil, err
	}
	if len(a.Classes) > 0 && len(a.Classes) != l.NumClasses() {
		return nil, fmt.Errorf("logistic: %d classes listed, weights describe %d", len(a.Classes), l.NumClasses())
	}
	return l, nil
}

func init() {
	RegisterKind(kindLogistic, decodeLogistic)
}
