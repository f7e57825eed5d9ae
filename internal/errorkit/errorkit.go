package errorkit

import (
	"errors"
	"fmt"
	"strings"
)

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	const ErrSomething errorkit.Error = "something is an error"
type Error string

func (err Error) Error() string { return string(err) }

// F returns a new error that wraps the constant error with additional details.
func (err Error) F(format string, a ...any) error {
	return wrapped{E: err, D: fmt.Sprintf(format, a...)}
}

// Finish is a helper function that can be used from a deferred context.
//
// Usage:
//
//	defer errorkit.Finish(&returnError, tx.Rollback)
func Finish(returnErr *error, blk func() error) {
	*returnErr = Merge(*returnErr, blk())
}

// Merge combines the given non nil error values into a single error value.
// Without any non nil input, nil is returned.
// A single non nil input is returned as is.
func Merge(errs ...error) error {
	var merged MultiError
	for _, err := range errs {
		if err != nil {
			merged = append(merged, err)
		}
	}
	switch len(merged) {
	case 0:
		return nil
	case 1:
		return merged[0]
	default:
		return merged
	}
}

// MultiError holds multiple errors as one.
// errors.Is and errors.As find every member.
type MultiError []error

func (errs MultiError) Error() string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

func (errs MultiError) As(target any) bool {
	for _, err := range errs {
		if errors.As(err, target) {
			return true
		}
	}
	return false
}

func (errs MultiError) Is(target error) bool {
	for _, err := range errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type wrapped struct {
	E Error
	D string
}

func (w wrapped) Error() string { return fmt.Sprintf("%s: %s", string(w.E), w.D) }

func (w wrapped) Is(target error) bool { return errors.Is(w.E, target) }

func (w wrapped) Unwrap() error { return w.E }
