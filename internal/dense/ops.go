package dense

import "fmt"

// Arithmetic over vectors and matrices. Every operation validates its
// operands, then allocates a fresh result; operands are never mutated
// and a failed operation produces no usable value.
//
// Division by a zero element reports ErrDivisionByZero rather than
// producing IEEE infinities; all other operations follow IEEE 754
// semantics (Pow of a negative base with a fractional exponent yields
// NaN, which propagates silently).

// Add returns the elementwise sum with other.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := v.checkSameLen("Add", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(v.data))
	addElements(data, v.data, other.data)
	return &Vector{data: data}, nil
}

// Sub returns the elementwise difference with other.
func (v *Vector) Sub(other *Vector) (*Vector, error) {
	if err := v.checkSameLen("Sub", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(v.data))
	subElements(data, v.data, other.data)
	return &Vector{data: data}, nil
}

// Mul returns the elementwise product with other.
func (v *Vector) Mul(other *Vector) (*Vector, error) {
	if err := v.checkSameLen("Mul", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(v.data))
	mulElements(data, v.data, other.data)
	return &Vector{data: data}, nil
}

// Div returns the elementwise quotient with other. A zero element in
// other fails the whole operation.
func (v *Vector) Div(other *Vector) (*Vector, error) {
	if err := v.checkSameLen("Div", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(v.data))
	if err := divElements(data, v.data, other.data); err != nil {
		return nil, fmt.Errorf("Div: %w", err)
	}
	return &Vector{data: data}, nil
}

// AddScalar returns a copy with s added to every element.
func (v *Vector) AddScalar(s float64) *Vector {
	data := make([]float64, len(v.data))
	addScalarElements(data, v.data, s)
	return &Vector{data: data}
}

// SubScalar returns a copy with s subtracted from every element.
func (v *Vector) SubScalar(s float64) *Vector {
	data := make([]float64, len(v.data))
	subScalarElements(data, v.data, s)
	return &Vector{data: data}
}

// MulScalar returns a copy with every element multiplied by s.
func (v *Vector) MulScalar(s float64) *Vector {
	data := make([]float64, len(v.data))
	mulScalarElements(data, v.data, s)
	return &Vector{data: data}
}

// DivScalar returns a copy with every element divided by s.
func (v *Vector) DivScalar(s float64) (*Vector, error) {
	if s == 0 {
		return nil, fmt.Errorf("DivScalar: %w", ErrDivisionByZero)
	}
	data := make([]float64, len(v.data))
	divScalarElements(data, v.data, s)
	return &Vector{data: data}, nil
}

// Neg returns a copy with every element negated.
func (v *Vector) Neg() *Vector {
	data := make([]float64, len(v.data))
	negElements(data, v.data)
	return &Vector{data: data}
}

// Pow returns a copy with every element raised to the power p.
func (v *Vector) Pow(p float64) *Vector {
	data := make([]float64, len(v.data))
	powElements(data, v.data, p)
	return &Vector{data: data}
}

// Add returns the elementwise sum with other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.checkSameDims("Add", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(m.data))
	addElements(data, m.data, other.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// Sub returns the elementwise difference with other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := m.checkSameDims("Sub", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(m.data))
	subElements(data, m.data, other.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// Mul returns the elementwise product with other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if err := m.checkSameDims("Mul", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(m.data))
	mulElements(data, m.data, other.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// Div returns the elementwise quotient with other. A zero element in
// other fails the whole operation.
func (m *Matrix) Div(other *Matrix) (*Matrix, error) {
	if err := m.checkSameDims("Div", other); err != nil {
		return nil, err
	}
	data := make([]float64, len(m.data))
	if err := divElements(data, m.data, other.data); err != nil {
		return nil, fmt.Errorf("Div: %w", err)
	}
	return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// AddScalar returns a copy with s added to every element.
func (m *Matrix) AddScalar(s float64) *Matrix {
	data := make([]float64, len(m.data))
	addScalarElements(data, m.data, s)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// SubScalar returns a copy with s subtracted from every element.
func (m *Matrix) SubScalar(s float64) *Matrix {
	data := make([]float64, len(m.data))
	subScalarElements(data, m.data, s)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// MulScalar returns a copy with every element multiplied by s.
func (m *Matrix) MulScalar(s float64) *Matrix {
	data := make([]float64, len(m.data))
	mulScalarElements(data, m.data, s)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// DivScalar returns a copy with every element divided by s.
func (m *Matrix) DivScalar(s float64) (*Matrix, error) {
	if s == 0 {
		return nil, fmt.Errorf("DivScalar: %w", ErrDivisionByZero)
	}
	data := make([]float64, len(m.data))
	divScalarElements(data, m.data, s)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}, nil
}

// Neg returns a copy with every element negated.
func (m *Matrix) Neg() *Matrix {
	data := make([]float64, len(m.data))
	negElements(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// Pow returns a copy with every element raised to the power p.
func (m *Matrix) Pow(p float64) *Matrix {
	data := make([]float64, len(m.data))
	powElements(data, m.data, p)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}
