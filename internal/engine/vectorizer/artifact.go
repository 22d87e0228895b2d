package vectorizer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// artifact is the on-disk JSON form of a fitted vectorizer.
type artifact struct {
	Kind         string         `json:"kind"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	NgramRange   [2]int         `json:"ngram_range"`
	TokenPattern string         `json:"token_pattern"`
	StopWords    []string       `json:"stop_words"`
	Lowercase    *bool          `json:"lowercase"`
	Binary       bool           `json:"binary"`
	SublinearTF  bool           `json:"sublinear_tf"`
	UseIDF       *bool          `json:"use_idf"`
	Norm         *string        `json:"norm"`
}

// Load reads a vectorizer artifact from path.
func Load(path string) (*TFIDF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}
	defer f.Close()

	v, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return v, nil
}

// Decode parses and validates a vectorizer artifact.
//
// Kind "tfidf" defaults to use_idf=true and norm="l2"; kind "count" is a raw
// term counter (use_idf=false, norm="") unless the artifact says otherwise.
func Decode(r io.Reader) (*TFIDF, error) {
	var a artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("vectorizer: failed to parse artifact: %w", err)
	}

	useIDF, norm := true, "l2"
	switch a.Kind {
	case "tfidf", "":
	case "count":
		useIDF, norm = false, ""
	default:
		return nil, fmt.Errorf("vectorizer: unsupported kind %q", a.Kind)
	}
	if a.UseIDF != nil {
		useIDF = *a.UseIDF
	}
	if a.Norm != nil {
		norm = *a.Norm
	}
	switch norm {
	case "l1", "l2", "":
	default:
		return nil, fmt.Errorf("vectorizer: unsupported norm %q", norm)
	}

	if len(a.Vocabulary) == 0 {
		return nil, fmt.Errorf("vectorizer: vocabulary is empty")
	}
	seen := make([]bool, len(a.Vocabulary))
	for term, col := range a.Vocabulary {
		if col < 0 || col >= len(a.Vocabulary) {
			return nil, fmt.Errorf("vectorizer: term %q has column %d outside [0, %d)", term, col, len(a.Vocabulary))
		}
		if seen[col] {
			return nil, fmt.Errorf("vectorizer: column %d assigned to more than one term", col)
		}
		seen[col] = true
	}
	if useIDF && len(a.IDF) != len(a.Vocabulary) {
		return nil, fmt.Errorf("vectorizer: idf has %d weights for %d terms", len(a.IDF), len(a.Vocabulary))
	}

	lowercase := true
	if a.Lowercase != nil {
		lowercase = *a.Lowercase
	}
	an, err := newAnalyzer(a.TokenPattern, a.NgramRange, a.StopWords, lowercase)
	if err != nil {
		return nil, fmt.Errorf("vectorizer: %w", err)
	}

	return &TFIDF{
		analyzer:    an,
		vocabulary:  a.Vocabulary,
		idf:         a.IDF,
		binary:      a.Binary,
		sublinearTF: a.SublinearTF,
		useIDF:      useIDF,
		norm:        norm,
	}, nil
}
