package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/core/parallel"
	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// parallelThreshold is the row count below which elementwise loops stay
// sequential.
const parallelThreshold = 1000

// elementwise applies fn pairwise over two identically shaped matrices.
func elementwise(op string, a, b mat.Matrix, fn func(x, y float64) float64) (*mat.Dense, error) {
	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ra == 0 || ca == 0 {
		return nil, errors.NewValueError(op, "empty matrix")
	}
	if ra != rb {
		return nil, errors.NewDimensionError(op, ra, rb, 0)
	}
	if ca != cb {
		return nil, errors.NewDimensionError(op, ca, cb, 1)
	}

	out := mat.NewDense(ra, ca, nil)
	parallel.ParallelizeWithThreshold(ra, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < ca; j++ {
				out.Set(i, j, fn(a.At(i, j), b.At(i, j)))
			}
		}
	})

	return out, nil
}

// Add returns the elementwise sum a + b. The operands must have identical
// shapes; a mismatch yields a DimensionError.
func Add(a, b mat.Matrix) (*mat.Dense, error) {
	return elementwise("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns the elementwise difference a - b. The operands must have
// identical shapes.
func Sub(a, b mat.Matrix) (*mat.Dense, error) {
	return elementwise("Sub", a, b, func(x, y float64) float64 { return x - y })
}

// MulElem returns the elementwise (Hadamard) product a ∘ b. The operands
// must have identical shapes.
func MulElem(a, b mat.Matrix) (*mat.Dense, error) {
	return elementwise("MulElem", a, b, func(x, y float64) float64 { return x * y })
}

// DivElem returns the elementwise quotient a / b. The operands must have
// identical shapes. Division by zero follows IEEE-754: the result element is
// ±Inf, or NaN for 0/0.
func DivElem(a, b mat.Matrix) (*mat.Dense, error) {
	return elementwise("DivElem", a, b, func(x, y float64) float64 { return x / y })
}

// Scale returns c * a for a scalar c and a matrix of any shape.
func Scale(c float64, a mat.Matrix) (*mat.Dense, error) {
	r, cols := a.Dims()
	if r == 0 || cols == 0 {
		return nil, errors.NewValueError("Scale", "empty matrix")
	}

	out := mat.NewDense(r, cols, nil)
	out.Scale(c, a)
	return out, nil
}
