// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package gonum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/densemath/dense/gonum"
	"github.com/densemath/dense/matrix"
	"github.com/densemath/dense/vector"
)

func TestMatrixRoundTrip(t *testing.T) {
	m, err := matrix.From(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	d := gonum.ToDense(m)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.InDelta(t, 6.0, d.At(1, 2), 1e-12)

	back, err := gonum.FromDense(d)
	require.NoError(t, err)
	assert.True(t, back.Equal(m), "round trip must preserve shape and elements")
}

func TestToDenseCopies(t *testing.T) {
	m, err := matrix.From(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	d := gonum.ToDense(m)
	d.Set(0, 0, 99)

	x, err := m.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-12, "mutating the Dense must not reach the Matrix")
}

func TestFromDenseTransposeView(t *testing.T) {
	d := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	// mat.Matrix views such as the transpose convert elementwise.
	back, err := gonum.FromDense(d.T())
	require.NoError(t, err)

	want, err := matrix.From(3, 2, []float64{1, 4, 2, 5, 3, 6})
	require.NoError(t, err)
	assert.True(t, back.Equal(want))
}

func TestVectorRoundTrip(t *testing.T) {
	v, err := vector.From([]float64{1.5, 2.5, 3.5})
	require.NoError(t, err)

	vd := gonum.ToVecDense(v)
	require.Equal(t, 3, vd.Len())
	assert.InDelta(t, 2.5, vd.AtVec(1), 1e-12)

	back, err := gonum.FromVecDense(vd)
	require.NoError(t, err)
	assert.True(t, back.Equal(v), "round trip must preserve elements")
}

func TestToVecDenseCopies(t *testing.T) {
	v, err := vector.From([]float64{1, 2, 3})
	require.NoError(t, err)

	vd := gonum.ToVecDense(v)
	vd.SetVec(0, 99)

	x, err := v.At(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-12, "mutating the VecDense must not reach the Vector")
}
