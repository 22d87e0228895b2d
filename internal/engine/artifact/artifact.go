package artifact

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/crimson-sun/verity/internal/engine/classifier"
	"github.com/crimson-sun/verity/internal/engine/vectorizer"
)

// DefaultDir is the model directory used when none is configured.
const DefaultDir = "model"

// classifierCandidates are probed in order when no classifier path is given.
var classifierCandidates = []string{
	"classifier.json",
	"classifier.safetensors",
	"classifier.onnx",
}

// Paths locates the two artifacts on disk.
type Paths struct {
	Vectorizer string
	Classifier string
}

// Resolve determines artifact paths. Explicit paths take precedence over
// dir; a missing classifier path resolves to the first candidate file that
// exists in dir, or classifier.json if none do.
func Resolve(dir, vectorizerPath, classifierPath string) Paths {
	if dir == "" {
		dir = DefaultDir
	}
	p := Paths{Vectorizer: vectorizerPath, Classifier: classifierPath}
	if p.Vectorizer == "" {
		p.Vectorizer = filepath.Join(dir, "vectorizer.json")
	}
	if p.Classifier == "" {
		p.Classifier = filepath.Join(dir, classifierCandidates[0])
		for _, name := range classifierCandidates {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				p.Classifier = candidate
				break
			}
		}
	}
	return p
}

// Info describes the loaded artifacts.
type Info struct {
	VectorizerPath   string    `json:"vectorizer_path"`
	VectorizerSHA256 string    `json:"vectorizer_sha256"`
	ClassifierPath   string    `json:"classifier_path"`
	ClassifierSHA256 string    `json:"classifier_sha256"`
	ClassifierKind   string    `json:"classifier_kind"`
	Features         int       `json:"features"`
	Classes          int       `json:"classes"`
	LoadedAt         time.Time `json:"loaded_at"`
}

// Bundle is the process-wide, read-only model state.
type Bundle struct {
	Vectorizer vectorizer.Vectorizer
	Classifier classifier.Classifier
	Info       Info
}

// Load reads both artifacts and checks that they agree on the feature
// dimension.
func Load(p Paths, opts classifier.Options) (*Bundle, error) {
	vec, err := vectorizer.Load(p.Vectorizer)
	if err != nil {
		return nil, fmt.Errorf("artifact: %w", err)
	}

	cls, err := classifier.Open(p.Classifier, opts)
	if err != nil {
		return nil, fmt.Errorf("artifact: %w", err)
	}

	if n := cls.NumFeatures(); n > 0 && n != vec.Dim() {
		cls.Close()
		return nil, fmt.Errorf("artifact: vectorizer produces %d features, classifier expects %d", vec.Dim(), n)
	}

	vecSum, err := fileSHA256(p.Vectorizer)
	if err != nil {
		cls.Close()
		return nil, fmt.Errorf("artifact: %w", err)
	}
	clsSum, err := fileSHA256(p.Classifier)
	if err != nil {
		cls.Close()
		return nil, fmt.Errorf("artifact: %w", err)
	}

	return &Bundle{
		Vectorizer: vec,
		Classifier: cls,
		Info: Info{
			VectorizerPath:   p.Vectorizer,
			VectorizerSHA256: vecSum,
			ClassifierPath:   p.Classifier,
			ClassifierSHA256: clsSum,
			ClassifierKind:   cls.Kind(),
			Features:         vec.Dim(),
			Classes:          cls.NumClasses(),
			LoadedAt:         time.Now().UTC(),
		},
	}, nil
}

// Close releases classifier resources.
func (b *Bundle) Close() error {
	return b.Classifier.Close()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
