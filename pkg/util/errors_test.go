package util

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	err := E(QueryFailed, "query", errors.New("syntax error"))
	if got, want := err.Error(), "query: syntax error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &Error{Kind: DatasetNotFound, Op: "list tables"}
	if got, want := bare.Error(), "list tables: dataset not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := E(ConnectionFailed, "connect", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is() = false, want the cause to be reachable")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want ErrorKind
	}{
		{E(ConnectionFailed, "connect", errors.New("refused")), ConnectionFailed},
		{E(DatasetNotFound, "list tables", errors.New("404")), DatasetNotFound},
		{fmt.Errorf("wrapped: %w", E(MalformedResult, "read row", errors.New("short row"))), MalformedResult},
		{errors.New("anything else"), QueryFailed},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		ConnectionFailed: "connection failed",
		DatasetNotFound:  "dataset not found",
		QueryFailed:      "query failed",
		MalformedResult:  "malformed result",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
