package vectorizer

import (
	"fmt"
	"regexp"
	"strings"
)

const defaultTokenPattern = `\b\w\w+\b`

// analyzer splits a document into the word n-grams the vocabulary is keyed on.
type analyzer struct {
	lowercase bool
	pattern   *regexp.Regexp
	stopWords map[string]struct{}
	minN      int
	maxN      int
}

func newAnalyzer(tokenPattern string, ngramRange [2]int, stopWords []string, lowercase bool) (*analyzer, error) {
	if tokenPattern == "" {
		tokenPattern = defaultTokenPattern
	}
	// The unicode flag is implicit here; RE2 reads (?u) as an unknown flag.
	tokenPattern = strings.TrimPrefix(tokenPattern, "(?u)")
	re, err := regexp.Compile(tokenPattern)
	if err != nil {
		return nil, fmt.Errorf("token pattern: %w", err)
	}
	if re.NumSubexp() > 1 {
		return nil, fmt.Errorf("token pattern %q has %d capture groups, want at most 1", tokenPattern, re.NumSubexp())
	}

	minN, maxN := ngramRange[0], ngramRange[1]
	if minN == 0 && maxN == 0 {
		minN, maxN = 1, 1
	}
	if minN < 1 || maxN < minN {
		return nil, fmt.Errorf("invalid ngram range [%d, %d]", minN, maxN)
	}

	var stops map[string]struct{}
	if len(stopWords) > 0 {
		stops = make(map[string]struct{}, len(stopWords))
		for _, w := range stopWords {
			stops[w] = struct{}{}
		}
	}

	return &analyzer{
		lowercase: lowercase,
		pattern:   re,
		stopWords: stops,
		minN:      minN,
		maxN:      maxN,
	}, nil
}

// analyze returns the n-grams of text in document order.
func (a *analyzer) analyze(text string) []string {
	if a.lowercase {
		text = strings.ToLower(text)
	}
	return a.ngrams(a.tokenize(text))
}

func (a *analyzer) tokenize(text string) []string {
	var tokens []string
	if a.pattern.NumSubexp() == 1 {
		for _, m := range a.pattern.FindAllStringSubmatch(text, -1) {
			tokens = append(tokens, m[1])
		}
		return tokens
	}
	return a.pattern.FindAllString(text, -1)
}

func (a *analyzer) ngrams(tokens []string) []string {
	if a.stopWords != nil {
		kept := tokens[:0]
		for _, tok := range tokens {
			if _, stop := a.stopWords[tok]; !stop {
				kept = append(kept, tok)
			}
		}
		tokens = kept
	}

	if a.maxN == 1 {
		return tokens
	}

	var out []string
	if a.minN == 1 {
		out = append(out, tokens...)
	}
	for n := max(a.minN, 2); n <= a.maxN; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
