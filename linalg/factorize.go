package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/numgo/pkg/errors"
)

// LU computes the pivoted LU factorization of a square matrix, returning
// (P, L, U) such that P·A = L·U. L is unit lower triangular, U is upper
// triangular, and P is the row permutation matrix chosen by partial
// pivoting.
func LU(a mat.Matrix) (p, l, u *mat.Dense, err error) {
	defer errors.Recover(&err, "LU")

	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, nil, nil, errors.NewValueError("LU", "empty matrix")
	}
	if r != c {
		return nil, nil, nil, errors.NewDomainError("LU", "matrix must be square")
	}

	var lu mat.LU
	lu.Factorize(a)

	var lTri, uTri mat.TriDense
	lu.LTo(&lTri)
	lu.UTo(&uTri)
	l = mat.DenseCopyOf(&lTri)
	u = mat.DenseCopyOf(&uTri)

	// Scatter the pivot vector into a permutation matrix. piv[i] is the
	// position the factorization moved row i to, so P carries original row i
	// to row piv[i] and P·A = L·U holds.
	p = mat.NewDense(r, r, nil)
	for i, piv := range lu.RowPivots(nil) {
		p.Set(piv, i, 1)
	}

	return p, l, u, nil
}

// QR computes the thin QR factorization a = Q·R. The input must have at
// least as many rows as columns; otherwise a DomainError is returned.
// Q has orthonormal columns and R is upper triangular.
func QR(a mat.Matrix) (q, r *mat.Dense, err error) {
	defer errors.Recover(&err, "QR")

	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return nil, nil, errors.NewValueError("QR", "empty matrix")
	}
	if rows < cols {
		return nil, nil, errors.NewDomainError("QR", "matrix must have at least as many rows as columns")
	}

	var qr mat.QR
	qr.Factorize(a)

	q = &mat.Dense{}
	r = &mat.Dense{}
	qr.QTo(q)
	qr.RTo(r)

	return q, r, nil
}

// Eigen computes the eigendecomposition of a square matrix. Eigenvalues and
// right eigenvectors are complex in general since the input need not be
// symmetric; column i of the vector matrix corresponds to values[i].
func Eigen(a mat.Matrix) (values []complex128, vectors *mat.CDense, err error) {
	defer errors.Recover(&err, "Eigen")

	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, nil, errors.NewValueError("Eigen", "empty matrix")
	}
	if r != c {
		return nil, nil, errors.NewDomainError("Eigen", "matrix must be square")
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenRight); !ok {
		return nil, nil, errors.NewDomainError("Eigen", "eigendecomposition failed to converge")
	}

	values = eig.Values(nil)
	vectors = &mat.CDense{}
	eig.VectorsTo(vectors)

	return values, vectors, nil
}

// SVD computes the thin singular-value decomposition a = U·diag(s)·Vᵀ.
// The singular values are returned in descending order; U and V have
// orthonormal columns.
func SVD(a mat.Matrix) (u *mat.Dense, s []float64, v *mat.Dense, err error) {
	defer errors.Recover(&err, "SVD")

	r, c := a.Dims()
	if r == 0 || c == 0 {
		return nil, nil, nil, errors.NewValueError("SVD", "empty matrix")
	}

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, nil, errors.NewDomainError("SVD", "SVD failed to converge")
	}

	u = &mat.Dense{}
	v = &mat.Dense{}
	svd.UTo(u)
	svd.VTo(v)
	s = svd.Values(nil)

	return u, s, v, nil
}
