package verity

import (
	"fmt"

	"github.com/crimson-sun/verity/internal/engine"
	"github.com/crimson-sun/verity/internal/engine/artifact"
	"github.com/crimson-sun/verity/internal/engine/classifier"
	"github.com/crimson-sun/verity/internal/engine/normalizer"
	"github.com/crimson-sun/verity/internal/engine/verdict"
)

// Labels returned in Prediction.Label.
const (
	Fake = verdict.Fake
	Real = verdict.Real
)

// Prediction is the result of classifying one piece of text.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"` // confidence in Label, 3 decimal places
	InputText   string  `json:"input_text"`
}

// ModelInfo describes the loaded artifacts.
type ModelInfo = artifact.Info

// Verity is a fake news detector. Safe for concurrent use.
type Verity struct {
	engine *engine.Engine
	bundle *artifact.Bundle
}

// New loads the model artifacts and returns a ready detector.
func New(opts ...Option) (*Verity, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.threshold < 0 || o.threshold > 1 {
		return nil, fmt.Errorf("verity: threshold must be between 0 and 1, got %v", o.threshold)
	}

	paths := artifact.Resolve(o.modelDir, o.vectorizerPath, o.classifierPath)
	bundle, err := artifact.Load(paths, classifier.Options{RuntimeLibrary: o.runtimeLibrary})
	if err != nil {
		return nil, fmt.Errorf("verity: %w", err)
	}

	if o.fakeClassIndex < 0 || o.fakeClassIndex >= bundle.Info.Classes {
		bundle.Close()
		return nil, fmt.Errorf("verity: fake class index %d out of range for %d classes", o.fakeClassIndex, bundle.Info.Classes)
	}

	eng := engine.New(
		normalizer.New(o.foldAccents),
		bundle.Vectorizer,
		bundle.Classifier,
		verdict.New(o.threshold, o.fakeClassIndex),
	)
	return &Verity{engine: eng, bundle: bundle}, nil
}

// Detect classifies text. The prediction echoes text unmodified.
func (v *Verity) Detect(text string) (Prediction, error) {
	p, err := v.engine.Predict(text)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{
		Label:       p.Label,
		Probability: p.Probability,
		InputText:   p.InputText,
	}, nil
}

// Info describes the artifacts this instance loaded.
func (v *Verity) Info() ModelInfo {
	return v.bundle.Info
}

// Close releases model resources.
func (v *Verity) Close() error {
	return v.bundle.Close()
}
