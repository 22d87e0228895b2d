package multi

import (
	"context"
	"errors"

	"github.com/crimson-sun/verity/internal/model"
	"github.com/crimson-sun/verity/internal/output"
)

// Multi writes each prediction to several outputs in order. A failing
// output does not stop delivery to the rest.
type Multi struct {
	outputs []output.Output
}

// New creates a Multi over outputs.
func New(outputs ...output.Output) *Multi {
	return &Multi{outputs: outputs}
}

func (m *Multi) Write(ctx context.Context, pred model.Prediction) error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Write(ctx, pred); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Close() error {
	var errs []error
	for _, o := range m.outputs {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
