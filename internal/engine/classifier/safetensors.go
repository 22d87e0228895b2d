package classifier

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// tensor is a dense tensor read from a safetensors file, widened to float64.
type tensor struct {
	shape []int
	data  []float64
}

// readSafetensors parses a safetensors file: an 8-byte little-endian header
// length, a JSON header, then the raw tensor bytes. Only F32 and F64 tensors
// are supported.
func readSafetensors(path string) (map[string]tensor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("safetensors: %w", err)
	}
	if len(data) < 8 {
		return nil, fmt.Errorf("safetensors: file too small: %d bytes", len(data))
	}

	headerLen := binary.LittleEndian.Uint64(data[:8])
	if uint64(len(data))-8 < headerLen {
		return nil, fmt.Errorf("safetensors: header length %d exceeds file size", headerLen)
	}

	var header map[string]json.RawMessage
	if err := json.Unmarshal(data[8:8+headerLen], &header); err != nil {
		return nil, fmt.Errorf("safetensors: failed to parse header: %w", err)
	}

	body := data[8+headerLen:]
	tensors := make(map[string]tensor, len(header))
	for name, raw := range header {
		if name == "__metadata__" {
			continue
		}

		var meta struct {
			Dtype       string `json:"dtype"`
			Shape       []int  `json:"shape"`
			DataOffsets [2]int `json:"data_offsets"`
		}
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("safetensors: tensor %q: bad metadata: %w", name, err)
		}

		var width int
		switch meta.Dtype {
		case "F32":
			width = 4
		case "F64":
			width = 8
		default:
			return nil, fmt.Errorf("safetensors: tensor %q: unsupported dtype %s", name, meta.Dtype)
		}

		count := 1
		for _, d := range meta.Shape {
			count *= d
		}
		start, end := meta.DataOffsets[0], meta.DataOffsets[1]
		if start < 0 || end < start || end > len(body) {
			return nil, fmt.Errorf("safetensors: tensor %q: data range [%d:%d] exceeds file size %d",
				name, start, end, len(body))
		}
		if end-start != count*width {
			return nil, fmt.Errorf("safetensors: tensor %q: data size %d doesn't match shape %v",
				name, end-start, meta.Shape)
		}

		values := make([]float64, count)
		for i := range values {
			off := start + i*width
			if width == 4 {
				values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(body[off : off+4])))
			} else {
				values[i] = math.Float64frombits(binary.LittleEndian.Uint64(body[off : off+8]))
			}
		}
		tensors[name] = tensor{shape: meta.Shape, data: values}
	}
	return tensors, nil
}

// openSafetensors loads a logistic regression stored as a "coef" tensor of
// shape [classes, features] (or [features]) and an optional "intercept"
// tensor of shape [classes].
func openSafetensors(path string, _ Options) (Classifier, error) {
	tensors, err := readSafetensors(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	coefT, ok := tensors["coef"]
	if !ok {
		return nil, fmt.Errorf("classifier: tensor 'coef' not found in %s", path)
	}
	var rows, cols int
	switch len(coefT.shape) {
	case 1:
		rows, cols = 1, coefT.shape[0]
	case 2:
		rows, cols = coefT.shape[0], coefT.shape[1]
	default:
		return nil, fmt.Errorf("classifier: expected 1D or 2D 'coef' tensor, got shape %v", coefT.shape)
	}

	coef := make([][]float64, rows)
	for i := range coef {
		coef[i] = coefT.data[i*cols : (i+1)*cols]
	}

	var intercept []float64
	if it, ok := tensors["intercept"]; ok {
		intercept = it.data
	}

	l, err := NewLogistic(coef, intercept)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	return l, nil
}

func init() {
	Register(".safetensors", openSafetensors)
}
