package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New returns an error carrying a stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg. Returns nil when err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so errors.Is(err, markErr) holds while the
// original message and stack stay intact. A nil err yields markErr.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
