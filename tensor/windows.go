package tensor

import (
	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// Windows frames a univariate series into overlapping windows, the usual way
// a recurrent model's training batch is built from one long measurement
// series. Each window of length timesteps becomes one sample with a single
// feature per step, so the result has shape
// (numWindows, timesteps, 1) with numWindows = (len(series)-timesteps)/stride + 1.
//
// timesteps and stride must be at least 1; a series shorter than one window
// yields a ShapeMismatchError.
func Windows(series []float64, timesteps, stride int) (*Tensor3D, error) {
	if timesteps < 1 {
		return nil, errors.NewValueError("Windows", "timesteps must be positive")
	}
	if stride < 1 {
		return nil, errors.NewValueError("Windows", "stride must be positive")
	}
	if len(series) < timesteps {
		return nil, errors.NewShapeMismatchError("Windows", []int{1, timesteps, 1}, len(series))
	}

	numWindows := (len(series)-timesteps)/stride + 1
	data := make([]float64, 0, numWindows*timesteps)
	for w := 0; w < numWindows; w++ {
		start := w * stride
		data = append(data, series[start:start+timesteps]...)
	}

	return &Tensor3D{
		samples:   numWindows,
		timesteps: timesteps,
		features:  1,
		data:      data,
	}, nil
}
