package classifier

import (
	"fmt"
	"path/filepath"
	"sync"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/crimson-sun/verity/internal/engine/vectorizer"
)

const kindONNX = "onnx"

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// initORT initializes the ONNX Runtime environment. Only the first call has
// any effect; later calls return the first call's result.
func initORT(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	return ortEnv.err
}

// ONNX runs an exported classifier through ONNX Runtime. The model must take
// one float tensor of shape [batch, features] and produce class
// probabilities as a float tensor of shape [batch, classes].
type ONNX struct {
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
	features   int64
	classes    int64
}

func openONNX(path string, opts Options) (Classifier, error) {
	libPath := opts.RuntimeLibrary
	if libPath == "" {
		libPath = filepath.Join(filepath.Dir(path), "libonnxruntime.so")
	}
	if err := initORT(libPath); err != nil {
		return nil, fmt.Errorf("onnx: failed to initialize runtime: %w", err)
	}

	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	if len(inputs) != 1 {
		return nil, fmt.Errorf("onnx: expected exactly 1 input, got %d", len(inputs))
	}
	in := inputs[0]
	if in.DataType != ort.TensorElementDataTypeFloat {
		return nil, fmt.Errorf("onnx: input %q must be float, got %v", in.Name, in.DataType)
	}
	if len(in.Dimensions) != 2 || in.Dimensions[1] <= 0 {
		return nil, fmt.Errorf("onnx: expected input shape [batch, features], got %v", in.Dimensions)
	}

	out, err := probabilityOutput(outputs)
	if err != nil {
		return nil, err
	}
	classes := out.Dimensions[1]
	if classes <= 0 {
		classes = 2
	}

	sessOpts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer sessOpts.Destroy()
	threads := opts.IntraOpThreads
	if threads <= 0 {
		threads = 4
	}
	sessOpts.SetIntraOpNumThreads(threads)
	sessOpts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(path, []string{in.Name}, []string{out.Name}, sessOpts)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}

	return &ONNX{
		session:    session,
		inputName:  in.Name,
		outputName: out.Name,
		features:   in.Dimensions[1],
		classes:    classes,
	}, nil
}

// probabilityOutput picks the output named "probabilities", falling back to
// the last output. Converters usually emit the predicted label first.
func probabilityOutput(outputs []ort.InputOutputInfo) (ort.InputOutputInfo, error) {
	if len(outputs) == 0 {
		return ort.InputOutputInfo{}, fmt.Errorf("onnx: model has no outputs")
	}
	out := outputs[len(outputs)-1]
	for _, o := range outputs {
		if o.Name == "probabilities" {
			out = o
			break
		}
	}
	if out.OrtValueType != ort.ONNXTypeTensor || out.DataType != ort.TensorElementDataTypeFloat {
		return out, fmt.Errorf("onnx: output %q must be a float tensor (export without a ZipMap)", out.Name)
	}
	if len(out.Dimensions) != 2 {
		return out, fmt.Errorf("onnx: expected output shape [batch, classes], got %v", out.Dimensions)
	}
	return out, nil
}

func (o *ONNX) Kind() string     { return kindONNX }
func (o *ONNX) NumFeatures() int { return int(o.features) }
func (o *ONNX) NumClasses() int  { return int(o.classes) }

// PredictProba implements Classifier.
func (o *ONNX) PredictProba(x vectorizer.Sparse) ([]float64, error) {
	if err := checkDim(x, int(o.features)); err != nil {
		return nil, err
	}

	in, err := ort.NewTensor(ort.NewShape(1, o.features), x.Dense())
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create input tensor: %w", err)
	}
	defer in.Destroy()

	out, err := ort.NewEmptyTensor[float32](ort.NewShape(1, o.classes))
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create output tensor: %w", err)
	}
	defer out.Destroy()

	if err := o.session.Run([]ort.Value{in}, []ort.Value{out}); err != nil {
		return nil, fmt.Errorf("onnx: inference failed: %w", err)
	}

	src := out.GetData()
	proba := make([]float64, len(src))
	for i, p := range src {
		proba[i] = float64(p)
	}
	return proba, nil
}

// Close releases the ONNX session resources.
func (o *ONNX) Close() error {
	return o.session.Destroy()
}

func init() {
	Register(".onnx", openONNX)
}
