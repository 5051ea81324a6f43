package ers

import "fmt"

// Invariant panics with an error rooted in ErrInvariantViolation when
// the condition is false. The arguments annotate the error in the
// same way as fmt.Sprint. Invariant is for structural corruption that
// callers cannot recover from; it is never a substitute for returning
// an error.
func Invariant(cond bool, args ...any) {
	if cond {
		return
	}

	if len(args) == 0 {
		panic(ErrInvariantViolation)
	}

	panic(fmt.Errorf("%s: %w", fmt.Sprint(args...), ErrInvariantViolation))
}

// ParsePanic converts a panic to an error, if it is not, and attaching
// the ErrRecoveredPanic error to that error. If no panic is
// detected, ParsePanic returns nil.
func ParsePanic(r any) error {
	if r == nil {
		return nil
	}

	switch err := r.(type) {
	case error:
		return fmt.Errorf("%w: %w", err, ErrRecoveredPanic)
	case string:
		return fmt.Errorf("%w: %w", New(err), ErrRecoveredPanic)
	default:
		return fmt.Errorf("[%T]: %v: %w", err, err, ErrRecoveredPanic)
	}
}

// WithRecoverCall runs a function without arguments that does not
// produce an error and, if the function panics, converts it into an
// error.
func WithRecoverCall(fn func()) (err error) {
	defer func() { err = ParsePanic(recover()) }()
	fn()
	return
}
