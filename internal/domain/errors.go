package domain

import (
	"errors"
	"fmt"
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindOpen          ErrorKind = "open"
	KindCreate        ErrorKind = "create"
	KindRead          ErrorKind = "read"
	KindWrite         ErrorKind = "write"
	KindInvalidConfig ErrorKind = "invalid_config"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: file the operation was working on
	Err  error
}

// Error renders "<path>: <cause>" when a path is known, so a failed open of
// the input reads exactly like the OS error for that name. Without a path
// it falls back to "<op>: <cause>".
func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	prefix := e.Path
	if prefix == "" {
		prefix = e.Op
	}
	if prefix == "" {
		prefix = string(e.Kind)
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", prefix, e.Kind)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
