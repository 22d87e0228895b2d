package classifier

import (
	"os"
	"strings"
	"testing"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/crimson-sun/verity/internal/engine/vectorizer"
)

const testONNXPath = "../../../model/classifier.onnx"

func skipIfNoONNXModel(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(testONNXPath); os.IsNotExist(err) {
		t.Skip("ONNX classifier not found; export one to model/classifier.onnx first")
	}
}

func TestProbabilityOutputPrefersNamedTensor(t *testing.T) {
	outputs := []ort.InputOutputInfo{
		{Name: "label", OrtValueType: ort.ONNXTypeTensor, DataType: ort.TensorElementDataTypeInt64, Dimensions: ort.NewShape(-1)},
		{Name: "probabilities", OrtValueType: ort.ONNXTypeTensor, DataType: ort.TensorElementDataTypeFloat, Dimensions: ort.NewShape(-1, 2)},
	}
	out, err := probabilityOutput(outputs)
	if err != nil {
		t.Fatalf("probabilityOutput() error: %v", err)
	}
	if out.Name != "probabilities" {
		t.Errorf("picked %q, want probabilities", out.Name)
	}
}

func TestProbabilityOutputFallsBackToLast(t *testing.T) {
	outputs := []ort.InputOutputInfo{
		{Name: "output_label", OrtValueType: ort.ONNXTypeTensor, DataType: ort.TensorElementDataTypeInt64, Dimensions: ort.NewShape(-1)},
		{Name: "output_probability", OrtValueType: ort.ONNXTypeTensor, DataType: ort.TensorElementDataTypeFloat, Dimensions: ort.NewShape(-1, 2)},
	}
	out, err := probabilityOutput(outputs)
	if err != nil {
		t.Fatalf("probabilityOutput() error: %v", err)
	}
	if out.Name != "output_probability" {
		t.Errorf("picked %q, want output_probability", out.Name)
	}
}

func TestProbabilityOutputRejectsZipMap(t *testing.T) {
	outputs := []ort.InputOutputInfo{
		{Name: "output_label", OrtValueType: ort.ONNXTypeTensor, DataType: ort.TensorElementDataTypeInt64, Dimensions: ort.NewShape(-1)},
		{Name: "output_probability", OrtValueType: ort.ONNXTypeSequence},
	}
	_, err := probabilityOutput(outputs)
	if err == nil || !strings.Contains(err.Error(), "ZipMap") {
		t.Fatalf("expected ZipMap error, got %v", err)
	}
}

func TestProbabilityOutputNone(t *testing.T) {
	if _, err := probabilityOutput(nil); err == nil {
		t.Fatal("expected error for model without outputs")
	}
}

func TestONNXInference(t *testing.T) {
	skipIfNoONNXModel(t)

	c, err := Open(testONNXPath, Options{})
	if err != nil {
		t.Fatalf("failed to load ONNX classifier: %v", err)
	}
	defer c.Close()

	if c.NumFeatures() <= 0 {
		t.Fatalf("expected positive feature count, got %d", c.NumFeatures())
	}

	proba, err := c.PredictProba(vectorizer.Sparse{Dim: c.NumFeatures()})
	if err != nil {
		t.Fatalf("inference failed: %v", err)
	}
	if len(proba) != c.NumClasses() {
		t.Fatalf("got %d probabilities, want %d", len(proba), c.NumClasses())
	}
	if s := sum(proba); s < 0.999 || s > 1.001 {
		t.Errorf("probabilities sum to %v, want 1", s)
	}
	t.Logf("zero-vector probabilities: %v", proba)
}
