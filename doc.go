// Package numgo provides array-shape transformation utilities and a catalog
// of linear-algebra operations for Go, built on top of Gonum.
//
// NumGo grew out of preparing sequence data for recurrent models: input layers
// expect a (samples, timesteps, features) layout, and getting a flat series or
// a 2-D table into that shape correctly is a constant source of off-by-one
// mistakes. The tensor package makes the transformation explicit and validated.
// The linalg package is the companion cheat sheet: the vector, matrix,
// decomposition, and descriptive-statistics operations used day to day,
// wrapped with fail-fast shape validation and structured errors.
//
// # Quick Start
//
// Reshape a flat series into a single-sample batch:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/numgo/tensor"
//	)
//
//	func main() {
//	    series := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
//
//	    t, err := tensor.FromSlice(series, 1, 10, 1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    s, steps, f := t.Dims()
//	    fmt.Printf("shape: (%d, %d, %d)\n", s, steps, f)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - tensor: (samples, timesteps, features) reshaping and sequence framing
//   - linalg: vector/matrix arithmetic, decompositions, descriptive statistics
//   - pkg/errors: structured error types and warnings
//   - pkg/log: structured logging interface
//   - core/parallel: parallel processing utilities
//
// # Error Handling
//
// Every operation validates its operands before delegating to Gonum and
// returns a typed error on violation: ShapeMismatchError for reshape product
// mismatches, DimensionError for incompatible operand shapes,
// SingularMatrixError for non-invertible matrices, and DomainError when an
// operation is applied outside its mathematical domain. No operation mutates
// its inputs.
//
// # License
//
// NumGo is released under the MIT License.
package numgo
