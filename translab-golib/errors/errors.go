package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errorf is re-exported from fmt
var Errorf = fmt.Errorf

// New is an alias to Errorf
var New = Errorf

// WithStack is re-exported from github.com/pkg/errors
var WithStack = errors.WithStack

// Cause is re-exported from github.com/pkg/errors
var Cause = errors.Cause

// Wrapf annotates err with a formatted message; if err is nil it behaves
// like Errorf, so it never returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return Errorf(format, args...)
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}

// WrapfOrNil is like Wrapf but passes a nil err through unchanged.
func WrapfOrNil(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}
