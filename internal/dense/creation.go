package dense

import (
	"fmt"
	"math/rand"
)

// Creation factories for Vector and Matrix. Every factory validates its
// shape before allocating and copies any caller-supplied data, so the
// returned value never aliases caller memory.

// NewVector creates a vector of length elements, each equal to fill.
func NewVector(length int, fill float64) (*Vector, error) {
	if length <= 0 {
		return nil, fmt.Errorf("NewVector: length must be positive, got %d: %w", length, ErrInvalidShape)
	}
	data := make([]float64, length)
	for i := range data {
		data[i] = fill
	}
	return &Vector{data: data}, nil
}

// VectorFrom creates a vector holding a copy of elements.
func VectorFrom(elements []float64) (*Vector, error) {
	if len(elements) == 0 {
		return nil, fmt.Errorf("VectorFrom: need at least one element: %w", ErrInvalidShape)
	}
	data := make([]float64, len(elements))
	copy(data, elements)
	return &Vector{data: data}, nil
}

// RandomVector creates a vector of independent uniform draws from [0, 1).
//
// Note: uses math/rand (not crypto/rand) - the draws are statistical
// sample data, not secrets.
func RandomVector(length int) (*Vector, error) {
	if length <= 0 {
		return nil, fmt.Errorf("RandomVector: length must be positive, got %d: %w", length, ErrInvalidShape)
	}
	data := make([]float64, length)
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: statistical sampling, not security
	}
	return &Vector{data: data}, nil
}

// NewMatrix creates a rows×cols matrix with every element equal to fill.
func NewMatrix(rows, cols int, fill float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewMatrix: dimensions must be positive, got %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = fill
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// MatrixFrom creates a rows×cols matrix populated in row-major order
// from a copy of elements.
func MatrixFrom(rows, cols int, elements []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("MatrixFrom: dimensions must be positive, got %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	if len(elements) != rows*cols {
		return nil, fmt.Errorf("MatrixFrom: %dx%d requires %d elements, got %d: %w", rows, cols, rows*cols, len(elements), ErrDimensionMismatch)
	}
	data := make([]float64, len(elements))
	copy(data, elements)
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Zeros creates a rows×cols matrix of zeros.
func Zeros(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("Zeros: dimensions must be positive, got %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// ZerosLike creates a zero matrix with the same shape as other.
func ZerosLike(other *Matrix) *Matrix {
	return &Matrix{rows: other.rows, cols: other.cols, data: make([]float64, len(other.data))}
}

// Identity creates the n×n identity matrix: ones on the main diagonal,
// zeros elsewhere.
func Identity(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity: size must be positive, got %d: %w", n, ErrInvalidShape)
	}
	m := &Matrix{rows: n, cols: n, data: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// RandomMatrix creates a rows×cols matrix of independent uniform draws
// from [0, 1). See RandomVector for the rand source note.
func RandomMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("RandomMatrix: dimensions must be positive, got %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rand.Float64() //nolint:gosec // G404: statistical sampling, not security
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}
