package linalg

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name      string
		x         []float64
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "simple",
			x:         []float64{1, 2, 3, 4},
			want:      2.5,
			tolerance: 1e-12,
		},
		{
			name:      "single value",
			x:         []float64{7},
			want:      7,
			tolerance: 1e-12,
		},
		{
			name:    "empty",
			x:       nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean(tt.x)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Mean() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Mean() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	// Sample variance of [1,2,3,4]: squared deviations from the mean 2.5 sum
	// to 5.0, divided by n-1 = 3.
	got, err := Variance([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("Variance() error = %v", err)
	}

	want := 5.0 / 3.0
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("Variance() = %v, want %v", got, want)
	}
}

func TestVarianceTooFewValues(t *testing.T) {
	_, err := Variance([]float64{1})
	if err == nil {
		t.Fatal("Variance() of one value should fail")
	}

	var domErr *errors.DomainError
	if !errors.As(err, &domErr) {
		t.Fatalf("error should be a *DomainError, got %T", err)
	}

	if _, err := Variance(nil); err == nil {
		t.Fatal("Variance() of empty data should fail")
	}
}

func TestStdDev(t *testing.T) {
	got, err := StdDev([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("StdDev() error = %v", err)
	}

	want := math.Sqrt(5.0 / 3.0)
	if math.Abs(got-want) > 1e-10 {
		t.Errorf("StdDev() = %v, want %v", got, want)
	}
}

func TestCovariance(t *testing.T) {
	// Two perfectly correlated columns: y = 2x.
	x := mat.NewDense(4, 2, []float64{
		1, 2,
		2, 4,
		3, 6,
		4, 8,
	})

	cov, err := Covariance(x)
	if err != nil {
		t.Fatalf("Covariance() error = %v", err)
	}

	n, _ := cov.Dims()
	if n != 2 {
		t.Fatalf("Covariance() dims = %d, want 2", n)
	}

	varX := 5.0 / 3.0
	if math.Abs(cov.At(0, 0)-varX) > 1e-10 {
		t.Errorf("Cov(x,x) = %v, want %v", cov.At(0, 0), varX)
	}
	if math.Abs(cov.At(1, 1)-4*varX) > 1e-10 {
		t.Errorf("Cov(y,y) = %v, want %v", cov.At(1, 1), 4*varX)
	}
	if math.Abs(cov.At(0, 1)-2*varX) > 1e-10 {
		t.Errorf("Cov(x,y) = %v, want %v", cov.At(0, 1), 2*varX)
	}
	if cov.At(0, 1) != cov.At(1, 0) {
		t.Error("covariance matrix must be symmetric")
	}
}

func TestCovarianceTooFewObservations(t *testing.T) {
	_, err := Covariance(mat.NewDense(1, 2, []float64{1, 2}))
	if err == nil {
		t.Fatal("Covariance() with one observation should fail")
	}

	var domErr *errors.DomainError
	if !errors.As(err, &domErr) {
		t.Fatalf("error should be a *DomainError, got %T", err)
	}
}

func TestLeastSquaresExact(t *testing.T) {
	// Solvable square system: x = [2, -1].
	a := mat.NewDense(2, 2, []float64{1, 1, 1, -1})
	b := mat.NewDense(2, 1, []float64{1, 3})

	x, err := LeastSquares(a, b)
	if err != nil {
		t.Fatalf("LeastSquares() error = %v", err)
	}

	if math.Abs(x.At(0, 0)-2) > 1e-10 || math.Abs(x.At(1, 0)+1) > 1e-10 {
		t.Errorf("x = [%v, %v], want [2, -1]", x.At(0, 0), x.At(1, 0))
	}
}

func TestLeastSquaresOverdetermined(t *testing.T) {
	// Fit y = 2t + 1 through exact points; the residual is zero so the
	// least-squares solution recovers the coefficients.
	a := mat.NewDense(4, 2, []float64{
		0, 1,
		1, 1,
		2, 1,
		3, 1,
	})
	b := mat.NewDense(4, 1, []float64{1, 3, 5, 7})

	x, err := LeastSquares(a, b)
	if err != nil {
		t.Fatalf("LeastSquares() error = %v", err)
	}

	if math.Abs(x.At(0, 0)-2) > 1e-10 {
		t.Errorf("slope = %v, want 2", x.At(0, 0))
	}
	if math.Abs(x.At(1, 0)-1) > 1e-10 {
		t.Errorf("intercept = %v, want 1", x.At(1, 0))
	}
}

func TestLeastSquaresUnderdetermined(t *testing.T) {
	a := mat.NewDense(1, 2, []float64{1, 1})
	b := mat.NewDense(1, 1, []float64{1})

	_, err := LeastSquares(a, b)
	if err == nil {
		t.Fatal("LeastSquares() with fewer rows than columns should fail")
	}

	var domErr *errors.DomainError
	if !errors.As(err, &domErr) {
		t.Fatalf("error should be a *DomainError, got %T", err)
	}
}

func TestLeastSquaresRowMismatch(t *testing.T) {
	a := mat.NewDense(3, 2, []float64{1, 1, 2, 1, 3, 1})
	b := mat.NewDense(2, 1, []float64{1, 2})

	_, err := LeastSquares(a, b)
	if err == nil {
		t.Fatal("LeastSquares() with mismatched row counts should fail")
	}

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("error should be a *DimensionError, got %T", err)
	}
}

func TestLeastSquaresRankDeficient(t *testing.T) {
	// Two identical columns make the normal equations singular.
	a := mat.NewDense(3, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
	})
	b := mat.NewDense(3, 1, []float64{1, 2, 3})

	_, err := LeastSquares(a, b)
	if err == nil {
		t.Fatal("LeastSquares() with a rank-deficient matrix should fail")
	}
	if !errors.Is(err, errors.ErrSingularMatrix) {
		t.Errorf("error should match ErrSingularMatrix, got %v", err)
	}
}
