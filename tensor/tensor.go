// Package tensor converts 1-D and 2-D numeric sequences into the 3-D
// (samples, timesteps, features) layout expected by sequence-model input
// layers.
//
// A sample is one independent sequence in a batch, a timestep is one ordered
// observation within it, and a feature is one scalar measured at that
// timestep. Every constructor validates that the requested shape accounts for
// exactly the elements provided and preserves element order row-major; a
// violation surfaces as ShapeMismatchError.
package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// Tensor3D is a (samples, timesteps, features) array backed by a row-major
// buffer. Values are laid out sample by sample, each sample timestep by
// timestep. Constructors copy their input, and no method mutates the
// receiver, so a Tensor3D can be shared freely.
type Tensor3D struct {
	samples   int
	timesteps int
	features  int
	data      []float64
}

// FromSlice arranges a flat sequence into shape (samples, timesteps,
// features). The product of the three dimensions must equal len(values);
// otherwise a ShapeMismatchError is returned. Element order is preserved.
func FromSlice(values []float64, samples, timesteps, features int) (*Tensor3D, error) {
	if samples < 1 || timesteps < 1 || features < 1 {
		return nil, errors.NewValueError("FromSlice", "all dimensions must be positive")
	}
	if samples*timesteps*features != len(values) {
		return nil, errors.NewShapeMismatchError("FromSlice", []int{samples, timesteps, features}, len(values))
	}

	data := make([]float64, len(values))
	copy(data, values)

	return &Tensor3D{
		samples:   samples,
		timesteps: timesteps,
		features:  features,
		data:      data,
	}, nil
}

// FromMatrix reinterprets an R×C matrix as a single-sample batch of shape
// (1, R, C): each row becomes one timestep, each column one feature.
func FromMatrix(m mat.Matrix) (*Tensor3D, error) {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("FromMatrix", "empty matrix")
	}

	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = m.At(i, j)
		}
	}

	return &Tensor3D{samples: 1, timesteps: r, features: c, data: data}, nil
}

// FromRows reinterprets a rectangular 2-D sequence as a single-sample batch
// of shape (1, R, C). A ragged input, where some row's length differs from
// the first row's, yields a ShapeMismatchError.
func FromRows(rows [][]float64) (*Tensor3D, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.NewValueError("FromRows", "empty sequence")
	}

	r := len(rows)
	c := len(rows[0])
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	for _, row := range rows {
		if len(row) != c {
			return nil, errors.NewShapeMismatchError("FromRows", []int{r, c}, total)
		}
	}

	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Tensor3D{samples: 1, timesteps: r, features: c, data: data}, nil
}

// Reshape relabels the tensor's dimensions over the same row-major element
// order. The new product must equal Len(); otherwise a ShapeMismatchError is
// returned. The receiver is left untouched and the result gets its own copy
// of the data.
func (t *Tensor3D) Reshape(samples, timesteps, features int) (*Tensor3D, error) {
	if samples < 1 || timesteps < 1 || features < 1 {
		return nil, errors.NewValueError("Reshape", "all dimensions must be positive")
	}
	if samples*timesteps*features != len(t.data) {
		return nil, errors.NewShapeMismatchError("Reshape", []int{samples, timesteps, features}, len(t.data))
	}

	data := make([]float64, len(t.data))
	copy(data, t.data)

	return &Tensor3D{
		samples:   samples,
		timesteps: timesteps,
		features:  features,
		data:      data,
	}, nil
}

// Dims returns the (samples, timesteps, features) dimensions.
func (t *Tensor3D) Dims() (samples, timesteps, features int) {
	return t.samples, t.timesteps, t.features
}

// Len returns the total element count.
func (t *Tensor3D) Len() int {
	return len(t.data)
}

// At returns the value at (sample, step, feature). It panics when any index
// is out of bounds, following the gonum mat convention.
func (t *Tensor3D) At(sample, step, feature int) float64 {
	if sample < 0 || sample >= t.samples {
		panic(fmt.Sprintf("tensor: sample index %d out of range [0, %d)", sample, t.samples))
	}
	if step < 0 || step >= t.timesteps {
		panic(fmt.Sprintf("tensor: timestep index %d out of range [0, %d)", step, t.timesteps))
	}
	if feature < 0 || feature >= t.features {
		panic(fmt.Sprintf("tensor: feature index %d out of range [0, %d)", feature, t.features))
	}
	return t.data[(sample*t.timesteps+step)*t.features+feature]
}

// Flatten returns a copy of the elements in row-major order, the exact order
// they were supplied in.
func (t *Tensor3D) Flatten() []float64 {
	out := make([]float64, len(t.data))
	copy(out, t.data)
	return out
}

// SampleMatrix returns sample i as a timesteps×features matrix copy.
// It panics when i is out of range.
func (t *Tensor3D) SampleMatrix(i int) *mat.Dense {
	if i < 0 || i >= t.samples {
		panic(fmt.Sprintf("tensor: sample index %d out of range [0, %d)", i, t.samples))
	}
	stride := t.timesteps * t.features
	data := make([]float64, stride)
	copy(data, t.data[i*stride:(i+1)*stride])
	return mat.NewDense(t.timesteps, t.features, data)
}

// String renders the shape, not the data, which keeps logs readable for
// large batches.
func (t *Tensor3D) String() string {
	return fmt.Sprintf("Tensor3D(%d, %d, %d)", t.samples, t.timesteps, t.features)
}
