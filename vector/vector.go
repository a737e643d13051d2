// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vector

import (
	"github.com/densemath/dense/internal/dense"
)

// Vector is a fixed-length sequence of float64 values with value
// semantics. See the package documentation for the ownership and
// error-handling contracts.
type Vector = dense.Vector

// Error kinds reported by vector operations. The values are shared with
// package matrix, so errors.Is matches regardless of which package the
// caller imports them from.
var (
	ErrInvalidShape      = dense.ErrInvalidShape
	ErrDimensionMismatch = dense.ErrDimensionMismatch
	ErrIndexOutOfBounds  = dense.ErrIndexOutOfBounds
	ErrDivisionByZero    = dense.ErrDivisionByZero
)

// New creates a vector of length elements, each equal to fill.
// Fails with ErrInvalidShape if length is not positive.
//
// Example:
//
//	v, err := vector.New(3, 1.5)  // [1.5 1.5 1.5]
func New(length int, fill float64) (*Vector, error) {
	return dense.NewVector(length, fill)
}

// From creates a vector holding a copy of elements, so later changes to
// the argument slice never show through. Fails with ErrInvalidShape if
// elements is empty.
//
// Example:
//
//	v, err := vector.From([]float64{1, 2, 3})
func From(elements []float64) (*Vector, error) {
	return dense.VectorFrom(elements)
}

// Random creates a vector of length independent uniform draws from
// [0, 1). The source is the shared math/rand generator; draws are not
// reproducible. Fails with ErrInvalidShape if length is not positive.
//
// Example:
//
//	v, err := vector.Random(5)
func Random(length int) (*Vector, error) {
	return dense.RandomVector(length)
}
