package linalg

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

func TestDot(t *testing.T) {
	tests := []struct {
		name      string
		a         mat.Vector
		b         mat.Vector
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "known product",
			a:         mat.NewVecDense(3, []float64{1, 2, 3}),
			b:         mat.NewVecDense(3, []float64{4, 5, 6}),
			want:      32, // 1*4 + 2*5 + 3*6
			tolerance: 1e-12,
		},
		{
			name:      "orthogonal vectors",
			a:         mat.NewVecDense(2, []float64{1, 0}),
			b:         mat.NewVecDense(2, []float64{0, 1}),
			want:      0,
			tolerance: 1e-12,
		},
		{
			name:    "length mismatch",
			a:       mat.NewVecDense(3, []float64{1, 2, 3}),
			b:       mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
		{
			name:    "empty vectors",
			a:       &mat.VecDense{},
			b:       &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dot(tt.a, tt.b)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Dot() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatMul(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(3, 2, []float64{7, 8, 9, 10, 11, 12})

	got, err := MatMul(a, b)
	if err != nil {
		t.Fatalf("MatMul() error = %v", err)
	}

	want := mat.NewDense(2, 2, []float64{58, 64, 139, 154})
	if !mat.EqualApprox(got, want, 1e-12) {
		t.Errorf("MatMul() = %v, want %v", mat.Formatted(got), mat.Formatted(want))
	}
}

func TestMatMulInnerDimensionMismatch(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := MatMul(a, b)
	if err == nil {
		t.Fatal("MatMul() with mismatched inner dimensions should fail")
	}

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("error should be a *DimensionError, got %T", err)
	}
}

func TestMatMulIdentity(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	eye, err := Identity(3)
	if err != nil {
		t.Fatalf("Identity() error = %v", err)
	}

	got, err := MatMul(a, eye)
	if err != nil {
		t.Fatalf("MatMul() error = %v", err)
	}

	// A · I must leave A unchanged.
	if !mat.EqualApprox(got, a, 1e-12) {
		t.Errorf("MatMul(A, I) = %v, want %v", mat.Formatted(got), mat.Formatted(a))
	}
}

func TestMatVec(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	v := mat.NewVecDense(3, []float64{1, 1, 1})

	got, err := MatVec(a, v)
	if err != nil {
		t.Fatalf("MatVec() error = %v", err)
	}

	if got.AtVec(0) != 6 || got.AtVec(1) != 15 {
		t.Errorf("MatVec() = [%v, %v], want [6, 15]", got.AtVec(0), got.AtVec(1))
	}
}

func TestMatVecDimensionMismatch(t *testing.T) {
	a := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	v := mat.NewVecDense(2, []float64{1, 1})

	_, err := MatVec(a, v)
	if err == nil {
		t.Fatal("MatVec() with mismatched dimensions should fail")
	}
}

func TestNorm(t *testing.T) {
	tests := []struct {
		name      string
		v         mat.Vector
		want      float64
		tolerance float64
		wantErr   bool
	}{
		{
			name:      "3-4-5 triangle",
			v:         mat.NewVecDense(2, []float64{3, 4}),
			want:      5,
			tolerance: 1e-12,
		},
		{
			name:      "zero vector",
			v:         mat.NewVecDense(3, []float64{0, 0, 0}),
			want:      0,
			tolerance: 1e-12,
		},
		{
			name:      "negative components",
			v:         mat.NewVecDense(2, []float64{-3, -4}),
			want:      5,
			tolerance: 1e-12,
		},
		{
			name:    "empty vector",
			v:       &mat.VecDense{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Norm(tt.v)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Norm() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got < 0 {
				t.Errorf("Norm() = %v, must be non-negative", got)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Norm() = %v, want %v", got, tt.want)
			}
		})
	}
}
