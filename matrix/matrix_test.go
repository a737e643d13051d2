// Copyright 2026 The Dense Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/densemath/dense/matrix"
)

func TestFromRowMajorAccess(t *testing.T) {
	m, err := matrix.From(2, 2, []float64{1, 3, 3, 7})
	require.NoError(t, err)

	tests := []struct {
		r, c int
		want float64
	}{
		{0, 0, 1},
		{0, 1, 3},
		{1, 0, 3},
		{1, 1, 7},
	}

	for _, tt := range tests {
		x, err := m.At(tt.r, tt.c)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, x, 1e-12, "At(%d, %d)", tt.r, tt.c)
	}
}

func TestTransposedSymmetricFixedPoint(t *testing.T) {
	m, err := matrix.From(2, 2, []float64{1, 3, 3, 7})
	require.NoError(t, err)

	// The literal is symmetric, so transposing is a fixed point.
	assert.True(t, m.Transposed().Equal(m))
}

func TestTransposedReordersElements(t *testing.T) {
	m, err := matrix.From(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	want, err := matrix.From(2, 2, []float64{1, 3, 2, 4})
	require.NoError(t, err)

	assert.True(t, m.Transposed().Equal(want))
	// The receiver is unchanged.
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Data())
}

func TestTransposeRoundTrip(t *testing.T) {
	m, err := matrix.From(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	rt := m.Transposed().Transposed()
	assert.True(t, rt.Equal(m), "transposing twice must restore shape and elements")
}

func TestTransposeInPlaceMatchesTransposed(t *testing.T) {
	m, err := matrix.From(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	want := m.Transposed()
	m.Transpose()

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.True(t, m.Equal(want))
}

func TestIdentityDiagonal(t *testing.T) {
	n := 4
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			x, err := id.At(r, c)
			require.NoError(t, err)
			if r == c {
				assert.InDelta(t, 1.0, x, 1e-12, "diagonal at (%d, %d)", r, c)
			} else {
				assert.InDelta(t, 0.0, x, 1e-12, "off-diagonal at (%d, %d)", r, c)
			}
		}
	}
}

func TestZerosLikeShapeAndValues(t *testing.T) {
	src, err := matrix.New(5, 5, 3.0)
	require.NoError(t, err)

	z := matrix.ZerosLike(src)
	r, c := z.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 5, c)
	for i, x := range z.Data() {
		assert.InDelta(t, 0.0, x, 1e-12, "mismatch at index %d", i)
	}
}

func TestReshapePreservesOrder(t *testing.T) {
	m, err := matrix.From(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	require.NoError(t, m.Reshape(3, 2))
	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, m.Data())

	// (1, 1) now reads the fourth stored element.
	x, err := m.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, x, 1e-12)
}

func TestReshapeErrors(t *testing.T) {
	m, err := matrix.From(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.ErrorIs(t, m.Reshape(4, 2), matrix.ErrDimensionMismatch)
	assert.ErrorIs(t, m.Reshape(0, 2), matrix.ErrInvalidShape)

	// A failed reshape leaves the receiver untouched.
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
}

func TestSetThenGet(t *testing.T) {
	m, err := matrix.Zeros(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 42))
	x, err := m.At(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 42.0, x, 1e-12)
}

func TestIndexOutOfBounds(t *testing.T) {
	m, err := matrix.Zeros(2, 3)
	require.NoError(t, err)

	for _, idx := range [][2]int{{2, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		_, err := m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "At(%d, %d)", idx[0], idx[1])

		err = m.Set(idx[0], idx[1], 1)
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "Set(%d, %d)", idx[0], idx[1])
	}
}

func TestElementwiseArithmetic(t *testing.T) {
	a, err := matrix.From(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := matrix.From(2, 2, []float64{5, 6, 7, 8})
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 8, 10, 12}, sum.Data())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 4, 4}, diff.Data())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 12, 21, 32}, prod.Data())

	quot, err := b.Div(a)
	require.NoError(t, err)
	for i := range quot.Data() {
		assert.InDelta(t, b.Data()[i]/a.Data()[i], quot.Data()[i], 1e-12, "Div mismatch at index %d", i)
	}
}

func TestArithmeticRejectsShapeMismatch(t *testing.T) {
	a, err := matrix.Zeros(2, 3)
	require.NoError(t, err)
	// Same element count, different shape.
	b, err := matrix.Zeros(3, 2)
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Div(b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDivReportsZeroDivisor(t *testing.T) {
	a, err := matrix.New(2, 2, 1)
	require.NoError(t, err)
	b, err := matrix.From(2, 2, []float64{1, 2, 0, 4})
	require.NoError(t, err)

	_, err = a.Div(b)
	assert.ErrorIs(t, err, matrix.ErrDivisionByZero)

	_, err = a.DivScalar(0)
	assert.ErrorIs(t, err, matrix.ErrDivisionByZero)
}

func TestScalarAndUnaryOps(t *testing.T) {
	m, err := matrix.From(2, 2, []float64{1, -2, 3, -4})
	require.NoError(t, err)

	assert.Equal(t, []float64{2, -1, 4, -3}, m.AddScalar(1).Data())
	assert.Equal(t, []float64{0, -3, 2, -5}, m.SubScalar(1).Data())
	assert.Equal(t, []float64{2, -4, 6, -8}, m.MulScalar(2).Data())
	assert.Equal(t, []float64{-1, 2, -3, 4}, m.Neg().Data())
	assert.Equal(t, []float64{1, 4, 9, 16}, m.Pow(2).Data())

	half, err := m.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -1, 1.5, -2}, half.Data())
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := matrix.From(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, m.Equal(c))

	require.NoError(t, c.Set(0, 0, 99))
	x, err := m.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x, 1e-12, "original must not see the clone's mutation")

	require.NoError(t, m.Set(1, 1, 77))
	y, err := c.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, y, 1e-12, "clone must not see the original's mutation")
}
