package dense

import "errors"

// Error kinds shared by all vector and matrix operations. Failure sites
// wrap these with an operation prefix and the offending values, so
// callers classify with errors.Is and read the message for detail.
var (
	ErrInvalidShape      = errors.New("invalid shape")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrIndexOutOfBounds  = errors.New("index out of bounds")
	ErrDivisionByZero    = errors.New("division by zero")
)
