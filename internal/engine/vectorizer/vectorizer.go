package vectorizer

import (
	"math"
	"sort"
)

// Sparse is a sparse feature vector. Indices are strictly increasing and
// every index is below Dim.
type Sparse struct {
	Dim     int
	Indices []int
	Values  []float64
}

// Dense expands the vector into a float32 slice of length Dim.
func (s Sparse) Dense() []float32 {
	out := make([]float32, s.Dim)
	for i, idx := range s.Indices {
		out[idx] = float32(s.Values[i])
	}
	return out
}

// Dot returns the inner product of s with a dense weight row of length Dim.
func (s Sparse) Dot(row []float64) float64 {
	var sum float64
	for i, idx := range s.Indices {
		sum += s.Values[i] * row[idx]
	}
	return sum
}

// Vectorizer turns normalized text into a feature vector.
type Vectorizer interface {
	Transform(text string) Sparse
	Dim() int
}

// TFIDF is a term-frequency / inverse-document-frequency vectorizer with a
// fixed vocabulary. It is read-only after loading and safe for concurrent use.
type TFIDF struct {
	analyzer    *analyzer
	vocabulary  map[string]int
	idf         []float64
	binary      bool
	sublinearTF bool
	useIDF      bool
	norm        string
}

// Dim returns the number of features (vocabulary size).
func (v *TFIDF) Dim() int {
	return len(v.vocabulary)
}

// Transform vectorizes a single document.
func (v *TFIDF) Transform(text string) Sparse {
	counts := make(map[int]float64)
	for _, term := range v.analyzer.analyze(text) {
		if col, ok := v.vocabulary[term]; ok {
			counts[col]++
		}
	}

	indices := make([]int, 0, len(counts))
	for col := range counts {
		indices = append(indices, col)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	for i, col := range indices {
		tf := counts[col]
		if v.binary {
			tf = 1
		}
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		if v.useIDF {
			tf *= v.idf[col]
		}
		values[i] = tf
	}

	normalize(values, v.norm)
	return Sparse{Dim: v.Dim(), Indices: indices, Values: values}
}

func normalize(values []float64, kind string) {
	var total float64
	switch kind {
	case "l2":
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	case "l1":
		for _, x := range values {
			total += math.Abs(x)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}
