// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides dense float64 vectors with elementwise
// arithmetic.
//
// # Overview
//
// A Vector is a fixed-length sequence of float64 values with value
// semantics: factories copy their input, arithmetic returns new
// vectors, and Clone deep-copies. Two vectors never share storage.
//
// # Basic Usage
//
//	a, err := vector.From([]float64{1, 2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	b, _ := vector.New(3, 10)  // [10 10 10]
//
//	sum, err := a.Add(b)       // [11 12 13]
//	scaled := a.MulScalar(2)   // [2 4 6]
//
// # Error Handling
//
// Operations report failures as wrapped sentinel errors; classify them
// with errors.Is:
//
//	if _, err := a.Div(b); errors.Is(err, vector.ErrDivisionByZero) {
//	    // a zero divisor element
//	}
//
// Division by a zero element or scalar fails with ErrDivisionByZero
// rather than producing IEEE infinities. All other arithmetic follows
// IEEE 754.
//
// # Limits
//
// Operations mix only vectors. Elementwise arithmetic between a Vector
// and a matrix.Matrix needs a broadcast rule that has not been settled,
// so no mixed operation is defined yet.
//
// # Concurrency
//
// A Vector is exclusively owned by its creator. Instances are safe for
// concurrent reads; sharing one across goroutines with mutation in play
// requires caller synchronization.
package vector
