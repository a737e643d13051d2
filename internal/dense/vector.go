package dense

import (
	"fmt"
	"math"
)

// Vector is a fixed-length sequence of float64 values.
//
// A Vector owns its storage outright: factories copy the data they are
// given, arithmetic returns fresh values, and Clone deep-copies. Two
// Vectors never share a backing slice, so mutation of one value is never
// observable through another.
//
// A Vector is not safe for concurrent mutation; callers sharing an
// instance across goroutines must synchronize.
type Vector struct {
	data []float64
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return len(v.data)
}

// At returns the element at index i (zero-based).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("At: index %d out of bounds for length %d: %w", i, len(v.data), ErrIndexOutOfBounds)
	}
	return v.data[i], nil
}

// Data returns the backing slice as a read-only view for interop with
// other numeric code. Callers must not modify the returned slice.
func (v *Vector) Data() []float64 {
	return v.data
}

// Clone returns an independent deep copy.
func (v *Vector) Clone() *Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)
	return &Vector{data: data}
}

// Equal reports whether other has the same length and exactly equal
// elements.
func (v *Vector) Equal(other *Vector) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox is like Equal but tolerates an absolute difference of up
// to tol per element.
func (v *Vector) EqualApprox(other *Vector, tol float64) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if math.Abs(v.data[i]-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the vector as "[e0 e1 ... en]".
func (v *Vector) String() string {
	return fmt.Sprintf("%v", v.data)
}
