package errors

import "strings"

type multi []error

func (m multi) Error() string {
	parts := make([]string, 0, len(m))
	for _, err := range m {
		parts = append(parts, err.Error())
	}
	return strings.Join(parts, "\n")
}

// Slice returns the underlying (non-nil) errors.
func (m multi) Slice() []error {
	return append([]error(nil), m...)
}

// Combine merges errors e and f into a single error. A nil argument is
// ignored; if both are nil the result is nil.
func Combine(e, f error) error {
	switch {
	case e == nil:
		return f
	case f == nil:
		return e
	}

	var out multi
	for _, err := range []error{e, f} {
		if m, ok := err.(multi); ok {
			out = append(out, m...)
		} else {
			out = append(out, err)
		}
	}
	return out
}

// Defer combines the result of f into *err; intended for deferring
// error-returning cleanup such as Close.
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
