// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"github.com/densemath/dense/internal/dense"
)

// Matrix is a dense rows×cols grid of float64 values in row-major
// order, with value semantics. See the package documentation for the
// ownership and error-handling contracts.
type Matrix = dense.Matrix

// Error kinds reported by matrix operations. The values are shared with
// package vector, so errors.Is matches regardless of which package the
// caller imports them from.
var (
	ErrInvalidShape      = dense.ErrInvalidShape
	ErrDimensionMismatch = dense.ErrDimensionMismatch
	ErrIndexOutOfBounds  = dense.ErrIndexOutOfBounds
	ErrDivisionByZero    = dense.ErrDivisionByZero
)

// New creates a rows×cols matrix with every element equal to fill.
// Fails with ErrInvalidShape if either dimension is not positive.
//
// Example:
//
//	m, err := matrix.New(2, 3, 1.0)
func New(rows, cols int, fill float64) (*Matrix, error) {
	return dense.NewMatrix(rows, cols, fill)
}

// From creates a rows×cols matrix populated in row-major order from a
// copy of elements. Fails with ErrInvalidShape on a non-positive
// dimension and with ErrDimensionMismatch if len(elements) != rows*cols.
//
// Example:
//
//	m, err := matrix.From(2, 2, []float64{1, 2, 3, 4})
//	// [1 2]
//	// [3 4]
func From(rows, cols int, elements []float64) (*Matrix, error) {
	return dense.MatrixFrom(rows, cols, elements)
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	return dense.Zeros(rows, cols)
}

// ZerosLike creates a zero matrix with the same shape as other.
func ZerosLike(other *Matrix) *Matrix {
	return dense.ZerosLike(other)
}

// Identity creates the n×n identity matrix. Fails with ErrInvalidShape
// if n is not positive.
//
// Example:
//
//	id, err := matrix.Identity(3)
func Identity(n int) (*Matrix, error) {
	return dense.Identity(n)
}

// Random creates a rows×cols matrix of independent uniform draws from
// [0, 1). The source is the shared math/rand generator; draws are not
// reproducible. Fails with ErrInvalidShape if either dimension is not
// positive.
func Random(rows, cols int) (*Matrix, error) {
	return dense.RandomMatrix(rows, cols)
}
