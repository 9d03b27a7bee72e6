// Package errors defines the error taxonomy shared across the sync engine.
// Reconciliation never errors on duplicate or out-of-order input; only
// malformed data and transport failures surface here.
package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrEmptyContent       = fmt.Errorf("message content is empty")
	ErrSelfConversation   = fmt.Errorf("sender and receiver are the same user")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrStaleSelection     = fmt.Errorf("result belongs to a stale peer selection")
	ErrNotLoggedIn        = fmt.Errorf("no active session")
)

// Validation marks a row or a command as malformed. It is raised at the
// boundary so partial objects never reach the projections.
type Validation struct {
	Field  string
	Reason string
}

func NewValidation(field, reason string) *Validation {
	return &Validation{Field: field, Reason: reason}
}

func (v *Validation) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", v.Field, v.Reason)
}

// IsValidation reports whether err carries a Validation anywhere in its chain.
func IsValidation(err error) bool {
	var v *Validation
	return errors.As(err, &v) ||
		errors.Is(err, ErrEmptyContent) ||
		errors.Is(err, ErrSelfConversation) ||
		errors.Is(err, ErrInvalidPassword)
}

// Transport wraps a feed or fetch failure. The feed recovers from these by
// reconnecting; they reach the session layer only once retries are exhausted.
type Transport struct {
	Op  string
	Err error
}

func NewTransport(op string, err error) *Transport {
	return &Transport{Op: op, Err: err}
}

func (t *Transport) Error() string {
	return fmt.Sprintf("transport failure during %s: %v", t.Op, t.Err)
}

func (t *Transport) Unwrap() error { return t.Err }

// MapToGRPCError converts domain errors into gRPC status codes at the
// server boundary.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
