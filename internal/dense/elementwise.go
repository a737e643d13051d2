package dense

import (
	"fmt"
	"math"
)

// Elementwise kernels shared by Vector and Matrix. dst is always a
// fresh slice owned by the caller and the same length as the operands,
// so a kernel that fails leaves no observable partial result.

func addElements(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subElements(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulElements(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divElements(dst, a, b []float64) error {
	for i := range a {
		if b[i] == 0 {
			return fmt.Errorf("divisor element %d is zero: %w", i, ErrDivisionByZero)
		}
		dst[i] = a[i] / b[i]
	}
	return nil
}

func addScalarElements(dst, a []float64, s float64) {
	for i := range a {
		dst[i] = a[i] + s
	}
}

func subScalarElements(dst, a []float64, s float64) {
	for i := range a {
		dst[i] = a[i] - s
	}
}

func mulScalarElements(dst, a []float64, s float64) {
	for i := range a {
		dst[i] = a[i] * s
	}
}

func divScalarElements(dst, a []float64, s float64) {
	for i := range a {
		dst[i] = a[i] / s
	}
}

func negElements(dst, a []float64) {
	for i := range a {
		dst[i] = -a[i]
	}
}

func powElements(dst, a []float64, p float64) {
	for i := range a {
		dst[i] = math.Pow(a[i], p)
	}
}

// Shared operand validation.

func (v *Vector) checkSameLen(op string, other *Vector) error {
	if len(v.data) != len(other.data) {
		return fmt.Errorf("%s: vector lengths %d and %d differ: %w", op, len(v.data), len(other.data), ErrDimensionMismatch)
	}
	return nil
}

func (m *Matrix) checkSameDims(op string, other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("%s: matrix shapes %dx%d and %dx%d differ: %w", op, m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	return nil
}
