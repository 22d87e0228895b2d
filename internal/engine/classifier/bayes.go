package classifier

import (
	"encoding/json"
	"fmt"

	"github.com/crimson-sun/verity/internal/engine/vectorizer"
)

const kindMultinomialNB = "multinomial_nb"

// MultinomialNB is a fitted multinomial naive Bayes model.
type MultinomialNB struct {
	classLogPrior  []float64
	featureLogProb [][]float64
	features       int
}

// NewMultinomialNB validates the log-space parameters of a fitted model.
func NewMultinomialNB(classLogPrior []float64, featureLogProb [][]float64) (*MultinomialNB, error) {
	if len(classLogPrior) < 2 {
		return nil, fmt.Errorf("multinomial_nb: need at least 2 classes, got %d", len(classLogPrior))
	}
	if len(featureLogProb) != len(classLogPrior) {
		return nil, fmt.Errorf("multinomial_nb: %d feature rows for %d classes", len(featureLogProb), len(classLogPrior))
	}
	n := len(featureLogProb[0])
	if n == 0 {
		return nil, fmt.Errorf("multinomial_nb: feature rows are empty")
	}
	for i, row := range featureLogProb {
		if len(row) != n {
			return nil, fmt.Errorf("multinomial_nb: row %d has %d features, want %d", i, len(row), n)
		}
	}
	return &MultinomialNB{classLogPrior: classLogPrior, featureLogProb: featureLogProb, features: n}, nil
}

func (m *MultinomialNB) Kind() string     { return kindMultinomialNB }
func (m *MultinomialNB) NumFeatures() int { return m.features }
func (m *MultinomialNB) NumClasses() int  { return len(m.classLogPrior) }
func (m *MultinomialNB) Close() error     { return nil }

// PredictProba implements Classifier. The joint log likelihood of each
// class is normalized with log-sum-exp, which is what softmax computes.
func (m *MultinomialNB) PredictProba(x vectorizer.Sparse) ([]float64, error) {
	if err := checkDim(x, m.features); err != nil {
		return nil, err
	}
	jll := make([]float64, len(m.classLogPrior))
	for c, row := range m.featureLogProb {
		jll[c] = x.Dot(row) + m.classLogPrior[c]
	}
	return softmax(jll), nil
}

func decodeMultinomialNB(raw []byte) (Classifier, error) {
	var a struct {
		ClassLogPrior  []float64   `json:"class_log_prior"`
		FeatureLogProb [][]float64 `json:"feature_log_prob"`
	}
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("multinomial_nb: failed to parse artifact: %w", err)
	}
	return NewMultinomialNB(a.ClassLogPrior, a.FeatureLogProb)
}

func init() {
	RegisterKind(kindMultinomialNB, decodeMultinomialNB)
}
