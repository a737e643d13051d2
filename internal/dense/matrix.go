package dense

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a dense rows×cols grid of float64 values in row-major
// order: the element at (r, c) lives at data[r*cols+c].
//
// Like Vector, a Matrix owns its storage outright and no two instances
// ever share a backing slice, so the in-place mutators (Set, Transpose,
// Reshape) affect exactly one value. Not safe for concurrent mutation.
type Matrix struct {
	rows, cols int
	data       []float64
}

// Dims returns the (rows, cols) shape.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// At returns the element at row r, column c (zero-based).
func (m *Matrix) At(r, c int) (float64, error) {
	if err := m.checkIndex("At", r, c); err != nil {
		return 0, err
	}
	return m.data[r*m.cols+c], nil
}

// Set replaces the element at row r, column c.
func (m *Matrix) Set(r, c int, v float64) error {
	if err := m.checkIndex("Set", r, c); err != nil {
		return err
	}
	m.data[r*m.cols+c] = v
	return nil
}

func (m *Matrix) checkIndex(op string, r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return fmt.Errorf("%s: index (%d, %d) out of bounds for %dx%d matrix: %w", op, r, c, m.rows, m.cols, ErrIndexOutOfBounds)
	}
	return nil
}

// Data returns the backing slice in row-major order as a read-only view
// for interop with other numeric code. Callers must not modify the
// returned slice.
func (m *Matrix) Data() []float64 {
	return m.data
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Transposed returns a new (cols, rows) matrix whose element at (i, j)
// equals the receiver's element at (j, i). The receiver is unchanged.
func (m *Matrix) Transposed() *Matrix {
	data := make([]float64, len(m.data))
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			data[c*m.rows+r] = m.data[r*m.cols+c]
		}
	}
	return &Matrix{rows: m.cols, cols: m.rows, data: data}
}

// Transpose transposes the receiver in place, swapping its dimensions
// and reordering the elements to match Transposed.
func (m *Matrix) Transpose() {
	t := m.Transposed()
	m.rows, m.cols, m.data = t.rows, t.cols, t.data
}

// Reshape redeclares the shape as (rows, cols), leaving the row-major
// element order untouched. The receiver is unchanged on error.
func (m *Matrix) Reshape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("Reshape: dimensions must be positive, got %dx%d: %w", rows, cols, ErrInvalidShape)
	}
	if rows*cols != len(m.data) {
		return fmt.Errorf("Reshape: cannot reshape %d elements to %dx%d: %w", len(m.data), rows, cols, ErrDimensionMismatch)
	}
	m.rows, m.cols = rows, cols
	return nil
}

// Equal reports whether other has the same shape and exactly equal
// elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox is like Equal but tolerates an absolute difference of up
// to tol per element.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if math.Abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the matrix with one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for r := 0; r < m.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%v", m.data[r*m.cols:(r+1)*m.cols])
	}
	return b.String()
}
