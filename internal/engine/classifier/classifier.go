package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/crimson-sun/verity/internal/engine/vectorizer"
)

// Classifier maps a feature vector to one probability per class.
type Classifier interface {
	// PredictProba returns class probabilities in class-index order.
	PredictProba(x vectorizer.Sparse) ([]float64, error)

	// Kind names the backend, e.g. "logistic_regression" or "onnx".
	Kind() string

	// NumFeatures is the expected input dimension, or 0 if the model does
	// not declare one.
	NumFeatures() int

	NumClasses() int

	Close() error
}

// Options holds backend-specific loading options.
type Options struct {
	// RuntimeLibrary is the ONNX Runtime shared library path. Empty means
	// libonnxruntime.so next to the model file.
	RuntimeLibrary string

	// IntraOpThreads bounds ONNX Runtime intra-op parallelism. 0 means 4.
	IntraOpThreads int
}

// Opener loads a classifier artifact from disk.
type Opener func(path string, opts Options) (Classifier, error)

// Decoder builds a classifier from a JSON artifact body.
type Decoder func(raw []byte) (Classifier, error)

var (
	openers  = map[string]Opener{}
	decoders = map[string]Decoder{}
)

// Register adds an opener for artifacts with the given file extension
// (including the dot, e.g. ".onnx").
func Register(ext string, o Opener) {
	openers[strings.ToLower(ext)] = o
}

// RegisterKind adds a decoder for JSON artifacts whose "kind" field equals kind.
func RegisterKind(kind string, d Decoder) {
	decoders[kind] = d
}

// Kinds returns the names of all registered JSON artifact kinds, sorted.
func Kinds() []string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extensions returns all registered artifact file extensions, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(openers))
	for ext := range openers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Open loads the classifier at path, choosing a backend by file extension.
func Open(path string, opts Options) (Classifier, error) {
	ext := strings.ToLower(filepath.Ext(path))
	o, ok := openers[ext]
	if !ok {
		return nil, fmt.Errorf("classifier: unsupported artifact type %q (%s)", ext, path)
	}
	return o(path, opts)
}

func init() {
	Register(".json", openJSON)
}

// openJSON reads the artifact's "kind" field and dispatches to the matching
// decoder.
func openJSON(path string, _ Options) (Classifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	return Decode(raw)
}

// Decode builds a classifier from a JSON artifact.
func Decode(raw []byte) (Classifier, error) {
	var head struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, fmt.Errorf("classifier: failed to parse artifact: %w", err)
	}
	d, ok := decoders[head.Kind]
	if !ok {
		return nil, fmt.Errorf("classifier: unknown kind %q (known: %s)", head.Kind, strings.Join(Kinds(), ", "))
	}
	return d(raw)
}

func checkDim(x vectorizer.Sparse, want int) error {
	if x.Dim != want {
		return fmt.Errorf("classifier: input has %d features, model expects %d", x.Dim, want)
	}
	return nil
}
