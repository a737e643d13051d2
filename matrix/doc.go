// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides dense row-major float64 matrices with
// elementwise arithmetic, transpose, and reshape.
//
// # Overview
//
// A Matrix is a rows×cols grid stored row-major in a single contiguous
// slice. Like package vector it has value semantics: factories copy
// their input, arithmetic returns new matrices, Clone deep-copies, and
// no two instances ever share storage, so the in-place mutators (Set,
// Transpose, Reshape) affect exactly one value.
//
// # Basic Usage
//
//	m, err := matrix.From(2, 2, []float64{1, 2, 3, 4})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tr := m.Transposed()        // [1 3] / [2 4], m unchanged
//	if err := m.Reshape(1, 4); err != nil {
//	    log.Fatal(err)
//	}
//
//	id, _ := matrix.Identity(3)
//	sum, err := id.Add(id)      // 2 on the diagonal
//
// # Error Handling
//
// Operations report failures as wrapped sentinel errors; classify them
// with errors.Is. In-place mutators validate before touching the
// receiver, so a failed Reshape or Set leaves the matrix unchanged.
// Division by a zero element fails with ErrDivisionByZero rather than
// producing IEEE infinities; all other arithmetic follows IEEE 754.
//
// # Interop
//
// Dims and the read-only Data view expose shape and row-major elements
// to other numeric code; the gonum subpackage builds on them to convert
// to and from gonum.org/v1/gonum/mat types.
//
// # Limits
//
// Operations mix only values of the same kind. Elementwise arithmetic
// between a Vector and a Matrix needs a broadcast rule that has not
// been settled, so no mixed operation is defined yet.
//
// # Concurrency
//
// A Matrix is exclusively owned by its creator. Concurrent mutation of
// one instance requires caller synchronization; there is no internal
// locking because there is no internal sharing.
package matrix
