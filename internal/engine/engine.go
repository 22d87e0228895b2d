package engine

import (
	"fmt"

	"github.com/crimson-sun/verity/internal/engine/classifier"
	"github.com/crimson-sun/verity/internal/engine/normalizer"
	"github.com/crimson-sun/verity/internal/engine/vectorizer"
	"github.com/crimson-sun/verity/internal/engine/verdict"
	"github.com/crimson-sun/verity/internal/model"
)

// probabilityPlaces is the rounding applied to reported probabilities.
const probabilityPlaces = 3

// Engine orchestrates the normalize → vectorize → classify → label pipeline.
// All components are read-only after construction, so an Engine is safe for
// concurrent use.
type Engine struct {
	normalizer *normalizer.Normalizer
	vectorizer vectorizer.Vectorizer
	classifier classifier.Classifier
	verdict    *verdict.Verdict
}

// New creates an Engine with the provided components.
func New(norm *normalizer.Normalizer, vec vectorizer.Vectorizer, cls classifier.Classifier, v *verdict.Verdict) *Engine {
	return &Engine{
		normalizer: norm,
		vectorizer: vec,
		classifier: cls,
		verdict:    v,
	}
}

// Predict classifies a single piece of raw text. The returned prediction
// echoes text unmodified.
func (e *Engine) Predict(text string) (model.Prediction, error) {
	res, err := e.Score(text)
	if err != nil {
		return model.Prediction{}, err
	}
	return model.Prediction{
		Label:       res.Label,
		Probability: verdict.Round(res.Confidence, probabilityPlaces),
		InputText:   text,
	}, nil
}

// Score runs the pipeline and returns the unrounded verdict.
func (e *Engine) Score(text string) (verdict.Result, error) {
	cleaned := e.normalizer.Normalize(text)
	vec := e.vectorizer.Transform(cleaned)

	proba, err := e.classifier.PredictProba(vec)
	if err != nil {
		return verdict.Result{}, fmt.Errorf("engine: %w", err)
	}

	res, err := e.verdict.Decide(proba)
	if err != nil {
		return verdict.Result{}, fmt.Errorf("engine: %w", err)
	}
	return res, nil
}
