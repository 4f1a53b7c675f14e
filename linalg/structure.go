package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// Identity returns the n×n identity matrix.
func Identity(n int) (*mat.Dense, error) {
	if n < 1 {
		return nil, errors.NewValueError("Identity", "size must be positive")
	}

	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		out.Set(i, i, 1)
	}
	return out, nil
}

// Tril returns a copy of a with every element above the k-th diagonal
// zeroed, keeping the lower triangular part. k = 0 keeps the main
// diagonal, k > 0 also keeps k diagonals above it, k < 0 drops the main
// diagonal and those just below it.
func Tril(a mat.Matrix, k int) (*mat.Dense, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("Tril", "empty matrix")
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j-i <= k {
				out.Set(i, j, a.At(i, j))
			}
		}
	}
	return out, nil
}

// Triu returns a copy of a with every element below the k-th diagonal
// zeroed, keeping the upper triangular part. k = 0 keeps the main
// diagonal, k < 0 also keeps |k| diagonals below it, k > 0 drops the
// main diagonal and those just above it.
func Triu(a mat.Matrix, k int) (*mat.Dense, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("Triu", "empty matrix")
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j-i >= k {
				out.Set(i, j, a.At(i, j))
			}
		}
	}
	return out, nil
}

// Diagonal returns the main diagonal of a as a vector of length min(r, c).
func Diagonal(a mat.Matrix) (*mat.VecDense, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("Diagonal", "empty matrix")
	}

	n := r
	if c < n {
		n = c
	}
	out := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		out.SetVec(i, a.At(i, i))
	}
	return out, nil
}

// Transpose returns aᵀ as a new matrix.
func Transpose(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("Transpose", "empty matrix")
	}

	var out mat.Dense
	out.CloneFrom(a.T())
	return &out, nil
}
