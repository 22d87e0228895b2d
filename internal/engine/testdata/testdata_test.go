package testdata

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCorpus(t *testing.T) {
	entries, err := LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus() error: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("corpus is empty")
	}
	for i, e := range entries {
		if e.ExpectedLabel != "FAKE" && e.ExpectedLabel != "REAL" {
			t.Errorf("entry %d: unexpected label %q", i, e.ExpectedLabel)
		}
		if e.ExpectedProbability < 0.5 || e.ExpectedProbability > 1 {
			t.Errorf("entry %d: probability %v outside [0.5, 1]", i, e.ExpectedProbability)
		}
		if e.Description == "" {
			t.Errorf("entry %d: missing description", i)
		}
	}
}

func TestWriteModelDir(t *testing.T) {
	dir := t.TempDir()
	if err := WriteModelDir(dir); err != nil {
		t.Fatalf("WriteModelDir() error: %v", err)
	}
	for _, name := range []string{"vectorizer.json", "classifier.json"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
