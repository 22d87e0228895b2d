package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/verity/internal/model"
	"github.com/crimson-sun/verity/internal/output"
)

// Output appends NDJSON predictions to a file through a buffered writer.
type Output struct {
	mu        sync.Mutex
	f         *os.File
	w         *bufio.Writer
	verbosity output.Verbosity
}

// New opens path for appending, creating it if needed.
func New(path string, verbosity output.Verbosity) (*Output, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file output: open %s: %w", path, err)
	}
	return &Output{f: f, w: bufio.NewWriter(f), verbosity: verbosity}, nil
}

// Write appends pred as one JSON line.
func (o *Output) Write(_ context.Context, pred model.Prediction) error {
	data, err := json.Marshal(output.FormatPrediction(pred, o.verbosity))
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, err := o.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	return o.f.Close()
}
