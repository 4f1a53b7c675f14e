package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// Trace returns the sum of the diagonal elements of a square matrix.
func Trace(a mat.Matrix) (float64, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return 0, errors.NewValueError("Trace", "empty matrix")
	}
	if r != c {
		return 0, errors.NewDomainError("Trace", "matrix must be square")
	}

	return mat.Trace(a), nil
}

// Det returns the determinant of a square matrix.
func Det(a mat.Matrix) (float64, error) {
	r, c := a.Dims()
	if r == 0 || c == 0 {
		return 0, errors.NewValueError("Det", "empty matrix")
	}
	if r != c {
		return 0, errors.NewDomainError("Det", "matrix must be square")
	}

	return mat.Det(a), nil
}

// Rank returns the rank of a, the number of singular values above the
// numerical tolerance max(r, c) · σ_max · ε.
func Rank(a mat.Matrix) (rank int, err error) {
	defer errors.Recover(&err, "Rank")

	r, c := a.Dims()
	if r == 0 || c == 0 {
		return 0, errors.NewValueError("Rank", "empty matrix")
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDNone); !ok {
		return 0, errors.NewDomainError("Rank", "SVD failed to converge")
	}

	values := svd.Values(nil)
	eps := math.Nextafter(1, 2) - 1
	n := r
	if c > n {
		n = c
	}
	tol := float64(n) * values[0] * eps

	for _, v := range values {
		if v > tol {
			rank++
		}
	}
	return rank, nil
}

// Inverse returns the inverse of a square, non-singular matrix. A singular
// input yields a SingularMatrixError. When the matrix is invertible but
// badly conditioned the computed inverse is returned and an
// IllConditionedWarning is emitted through the warning handler.
func Inverse(a mat.Matrix) (inv *mat.Dense, err error) {
	defer errors.Recover(&err, "Inverse")

	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("Inverse", "empty matrix")
	}
	if r != c {
		return nil, errors.NewDomainError("Inverse", "matrix must be square")
	}

	inv = &mat.Dense{}
	if err := checkCondition("Inverse", inv.Inverse(a)); err != nil {
		return nil, err
	}
	return inv, nil
}

// checkCondition maps gonum's solve/invert errors onto the catalog's
// taxonomy. A finite mat.Condition means the computation succeeded with
// precision loss, which is reported as a warning; everything else is treated
// as singularity.
func checkCondition(op string, err error) error {
	if err == nil {
		return nil
	}

	var cond mat.Condition
	if errors.As(err, &cond) && !math.IsInf(float64(cond), 1) {
		errors.Warn(errors.NewIllConditionedWarning(op, float64(cond)))
		return nil
	}

	return errors.NewSingularMatrixError(op)
}
