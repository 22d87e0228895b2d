package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed corpus.json
var corpusJSON []byte

//go:embed vectorizer.json
var vectorizerJSON []byte

//go:embed classifier.json
var classifierJSON []byte

// CorpusEntry is a labeled headline with the prediction the fixture model
// produces for it.
type CorpusEntry struct {
	Text                string  `json:"text"`
	ExpectedLabel       string  `json:"expected_label"`
	ExpectedProbability float64 `json:"expected_probability"`
	Description         string  `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}

// VectorizerJSON returns the fixture vectorizer artifact.
func VectorizerJSON() []byte { return vectorizerJSON }

// ClassifierJSON returns the fixture logistic regression artifact.
func ClassifierJSON() []byte { return classifierJSON }

// WriteModelDir writes the fixture artifacts into dir using the default
// file names (vectorizer.json, classifier.json).
func WriteModelDir(dir string) error {
	files := map[string][]byte{
		"vectorizer.json": vectorizerJSON,
		"classifier.json": classifierJSON,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
