// Package linalg is a catalog of linear-algebra operations over gonum
// matrices: elementwise arithmetic, products, structural extraction,
// factorizations, and descriptive statistics.
//
// Every function is pure. Inputs are never mutated and each call returns a
// freshly allocated result, so values can be shared between operations
// without defensive copying. Operands are validated before any work is
// delegated to gonum: incompatible shapes surface as DimensionError,
// operations applied outside their mathematical domain as DomainError, and
// inversion of a non-invertible matrix as SingularMatrixError. Gonum's
// panics never escape the package boundary.
//
// Vectors participate in the elementwise operations as n×1 matrices since
// mat.Vector implements mat.Matrix.
package linalg
