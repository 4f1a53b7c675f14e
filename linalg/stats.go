package linalg

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// Mean returns the arithmetic mean of x.
func Mean(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewValueError("Mean", "empty data")
	}
	return stat.Mean(x, nil), nil
}

// Variance returns the sample variance of x, normalized by N−1. At least two
// values are required; fewer yield a DomainError.
func Variance(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewValueError("Variance", "empty data")
	}
	if len(x) < 2 {
		return 0, errors.NewDomainError("Variance", "sample variance requires at least two values")
	}
	return stat.Variance(x, nil), nil
}

// StdDev returns the sample standard deviation of x, the square root of the
// N−1 normalized variance.
func StdDev(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, errors.NewValueError("StdDev", "empty data")
	}
	if len(x) < 2 {
		return 0, errors.NewDomainError("StdDev", "sample standard deviation requires at least two values")
	}
	return stat.StdDev(x, nil), nil
}

// Covariance returns the pairwise sample covariance matrix of the columns of
// x, where rows are observations. At least two observations are required.
func Covariance(x mat.Matrix) (*mat.SymDense, error) {
	r, c := x.Dims()
	if r == 0 || c == 0 {
		return nil, errors.NewValueError("Covariance", "empty matrix")
	}
	if r < 2 {
		return nil, errors.NewDomainError("Covariance", "covariance requires at least two observations")
	}

	cov := mat.NewSymDense(c, nil)
	stat.CovarianceMatrix(cov, x, nil)
	return cov, nil
}

// LeastSquares returns the least-squares solution x of a·x ≈ b. The
// coefficient matrix must have at least as many rows as columns (a
// determined or overdetermined system); an underdetermined system yields a
// DomainError and a row-count disagreement between a and b a DimensionError.
// A rank-deficient coefficient matrix yields a SingularMatrixError; an
// ill-conditioned but solvable system emits an IllConditionedWarning.
func LeastSquares(a, b mat.Matrix) (x *mat.Dense, err error) {
	defer errors.Recover(&err, "LeastSquares")

	ra, ca := a.Dims()
	rb, cb := b.Dims()

	if ra == 0 || ca == 0 || rb == 0 || cb == 0 {
		return nil, errors.NewValueError("LeastSquares", "empty matrix")
	}
	if ra < ca {
		return nil, errors.NewDomainError("LeastSquares", "system is underdetermined: fewer rows than columns")
	}
	if rb != ra {
		return nil, errors.NewDimensionError("LeastSquares", ra, rb, 0)
	}

	x = &mat.Dense{}
	if err := checkCondition("LeastSquares", x.Solve(a, b)); err != nil {
		return nil, err
	}
	return x, nil
}
