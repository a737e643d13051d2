// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package gonum converts vectors and matrices to and from their
// gonum.org/v1/gonum/mat counterparts.
//
// Conversions always copy: the returned value owns its storage, so the
// value-semantics contract of package vector and package matrix extends
// across the boundary in both directions.
//
// Example:
//
//	m, _ := matrix.From(2, 2, []float64{1, 2, 3, 4})
//	d := gonum.ToDense(m)
//	var inv mat.Dense
//	if err := inv.Inverse(d); err != nil {
//	    log.Fatal(err)
//	}
//	back, err := gonum.FromDense(&inv)
package gonum

import (
	"gonum.org/v1/gonum/mat"

	"github.com/densemath/dense/matrix"
	"github.com/densemath/dense/vector"
)

// ToDense returns m as a gonum *mat.Dense holding its own copy of the
// elements.
func ToDense(m *matrix.Matrix) *mat.Dense {
	r, c := m.Dims()
	data := make([]float64, r*c)
	copy(data, m.Data())
	return mat.NewDense(r, c, data)
}

// FromDense builds a Matrix from any gonum mat.Matrix. Fails with
// matrix.ErrInvalidShape if src has a zero dimension.
func FromDense(src mat.Matrix) (*matrix.Matrix, error) {
	r, c := src.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, src.At(i, j))
		}
	}
	return matrix.From(r, c, data)
}

// ToVecDense returns v as a gonum *mat.VecDense holding its own copy of
// the elements.
func ToVecDense(v *vector.Vector) *mat.VecDense {
	data := make([]float64, v.Len())
	copy(data, v.Data())
	return mat.NewVecDense(v.Len(), data)
}

// FromVecDense builds a Vector from any gonum mat.Vector. Fails with
// vector.ErrInvalidShape if src has length zero.
func FromVecDense(src mat.Vector) (*vector.Vector, error) {
	data := make([]float64, src.Len())
	for i := range data {
		data[i] = src.AtVec(i)
	}
	return vector.From(data)
}
