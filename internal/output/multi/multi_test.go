package multi

import (
	"context"
	"errors"
	"testing"

	"github.com/crimson-sun/verity/internal/model"
)

type recordingOutput struct {
	preds  []model.Prediction
	closed bool
	err    error
}

func (r *recordingOutput) Write(_ context.Context, pred model.Prediction) error {
	r.preds = append(r.preds, pred)
	return r.err
}

func (r *recordingOutput) Close() error {
	r.closed = true
	return r.err
}

func TestWriteReachesEveryOutput(t *testing.T) {
	a, b := &recordingOutput{}, &recordingOutput{}
	m := New(a, b)

	pred := model.Prediction{Label: "FAKE", Probability: 0.979}
	if err := m.Write(context.Background(), pred); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, out := range []*recordingOutput{a, b} {
		if len(out.preds) != 1 || out.preds[0] != pred {
			t.Errorf("output %d: got %+v", i, out.preds)
		}
	}
}

func TestFailingOutputDoesNotBlockOthers(t *testing.T) {
	boom := errors.New("disk full")
	a := &recordingOutput{err: boom}
	b := &recordingOutput{}
	m := New(a, b)

	err := m.Write(context.Background(), model.Prediction{Label: "REAL"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if len(b.preds) != 1 {
		t.Error("second output should still receive the prediction")
	}
}

func TestCloseClosesAll(t *testing.T) {
	a := &recordingOutput{err: errors.New("close failed")}
	b := &recordingOutput{}
	m := New(a, b)

	if err := m.Close(); err == nil {
		t.Fatal("expected error from first output")
	}
	if !a.closed || !b.closed {
		t.Error("every output should be closed")
	}
}

func TestEmpty(t *testing.T) {
	m := New()
	if err := m.Write(context.Background(), model.Prediction{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
