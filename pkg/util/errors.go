package util

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed console operation. Callers branch on the
// kind instead of inspecting the client library's error chain.
type ErrorKind int

const (
	// ConnectionFailed means the client could not be set up against the
	// emulator endpoint. The only fatal kind.
	ConnectionFailed ErrorKind = iota
	// DatasetNotFound means the addressed dataset does not exist, usually
	// because the data-loading step never ran.
	DatasetNotFound
	// QueryFailed covers query execution and result iteration errors.
	QueryFailed
	// MalformedResult means the client returned rows inconsistent with
	// the result schema.
	MalformedResult
)

func (k ErrorKind) String() string {
	switch k {
	case ConnectionFailed:
		return "connection failed"
	case DatasetNotFound:
		return "dataset not found"
	case QueryFailed:
		return "query failed"
	case MalformedResult:
		return "malformed result"
	}
	return "unknown"
}

// Error wraps an underlying client error with the operation that hit it
// and its kind.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds an *Error.
func E(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf reports the kind of err, or QueryFailed when err carries no kind.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return QueryFailed
}
