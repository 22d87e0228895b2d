package verity

import "github.com/crimson-sun/verity/internal/engine/artifact"

type options struct {
	modelDir       string
	vectorizerPath string
	classifierPath string
	runtimeLibrary string
	threshold      float64
	fakeClassIndex int
	foldAccents    bool
}

// Option configures a Verity instance.
type Option func(*options)

// WithModelDir sets the directory containing the model artifacts.
// Expects vectorizer.json plus one of classifier.json,
// classifier.safetensors, classifier.onnx.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.modelDir = dir
	}
}

// WithModelPaths sets explicit artifact paths. Either may be empty to fall
// back to the model directory.
func WithModelPaths(vectorizer, classifier string) Option {
	return func(o *options) {
		o.vectorizerPath = vectorizer
		o.classifierPath = classifier
	}
}

// WithThreshold sets the fake probability at or above which text is labeled
// FAKE. Default: 0.5.
func WithThreshold(t float64) Option {
	return func(o *options) {
		o.threshold = t
	}
}

// WithFakeClassIndex sets which classifier output holds the fake
// probability. Default: 1.
func WithFakeClassIndex(i int) Option {
	return func(o *options) {
		o.fakeClassIndex = i
	}
}

// WithAccentFolding strips diacritics before filtering, so "café" keeps its
// letters as "cafe" instead of becoming "caf".
func WithAccentFolding(fold bool) Option {
	return func(o *options) {
		o.foldAccents = fold
	}
}

// WithRuntimeLibrary sets the ONNX Runtime shared library used by .onnx
// classifiers. Default: libonnxruntime.so next to the classifier.
func WithRuntimeLibrary(path string) Option {
	return func(o *options) {
		o.runtimeLibrary = path
	}
}

func defaultOptions() options {
	return options{
		modelDir:       artifact.DefaultDir,
		threshold:      0.5,
		fakeClassIndex: 1,
	}
}
