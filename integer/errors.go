package integer

import "github.com/zeebo/errs"

var (
	// Error is the error class for this package.
	Error = errs.Class("integer")

	// DivisionByZero is the class of errors returned by Quo, Rem and
	// QuoRem when the divisor is zero.
	DivisionByZero = errs.Class("division by zero")

	// InvalidFormat is the class of errors returned when text or binary
	// input is not a valid integer.
	InvalidFormat = errs.Class("invalid format")
)
