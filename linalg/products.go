package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// Dot returns the inner product of two vectors of equal length.
func Dot(a, b mat.Vector) (float64, error) {
	if a.Len() == 0 {
		return 0, errors.NewValueError("Dot", "empty vector")
	}
	if a.Len() != b.Len() {
		return 0, errors.NewDimensionError("Dot", a.Len(), b.Len(), 0)
	}

	return mat.Dot(a, b), nil
}

// MatMul returns the matrix product a·b. The column count of a must equal
// the row count of b; otherwise a DimensionError is returned.
func MatMul(a, b mat.Matrix) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ra == 0 || ca == 0 || rb == 0 || cb == 0 {
		return nil, errors.NewValueError("MatMul", "empty matrix")
	}
	if ca != rb {
		return nil, errors.NewDimensionError("MatMul", ca, rb, 0)
	}

	var out mat.Dense
	out.Mul(a, b)
	return &out, nil
}

// MatVec returns the matrix-vector product a·v. The column count of a must
// equal the length of v.
func MatVec(a mat.Matrix, v mat.Vector) (*mat.VecDense, error) {
	r, c := a.Dims()

	if r == 0 || c == 0 {
		return nil, errors.NewValueError("MatVec", "empty matrix")
	}
	if c != v.Len() {
		return nil, errors.NewDimensionError("MatVec", c, v.Len(), 0)
	}

	var out mat.VecDense
	out.MulVec(a, v)
	return &out, nil
}

// Norm returns the Euclidean (L2) norm of a vector. The result is always
// non-negative.
func Norm(v mat.Vector) (float64, error) {
	if v.Len() == 0 {
		return 0, errors.NewValueError("Norm", "empty vector")
	}
	return mat.Norm(v, 2), nil
}
