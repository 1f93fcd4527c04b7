package sharing

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed sharing operation. Every failure from
// this package carries exactly one kind; the transport maps kinds to
// HTTP statuses deterministically. None of these are retryable except
// StorageUnavailable.
type ErrorKind int

const (
	// KindNotFound means the entity does not exist.
	KindNotFound ErrorKind = iota
	// KindForbidden means the caller is authenticated but is not the
	// owner of the entity being acted on.
	KindForbidden
	// KindInvalidOperation means the request violates a business rule:
	// self-request, requesting a public resource, re-deciding a decided
	// request.
	KindInvalidOperation
	// KindConflict means a duplicate pending request already exists.
	KindConflict
	// KindStorageUnavailable means the persistence layer failed
	// transiently. The cause is preserved via Unwrap.
	KindStorageUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindForbidden:
		return "forbidden"
	case KindInvalidOperation:
		return "invalid_operation"
	case KindConflict:
		return "conflict"
	case KindStorageUnavailable:
		return "storage_unavailable"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a kind-tagged sharing failure.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NotFound reports a missing entity.
func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden reports an ownership violation.
func Forbidden(format string, args ...interface{}) error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

// InvalidOperation reports a business rule violation.
func InvalidOperation(format string, args ...interface{}) error {
	return &Error{Kind: KindInvalidOperation, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a duplicate pending request.
func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// StorageUnavailable wraps a persistence failure.
func StorageUnavailable(cause error) error {
	return &Error{Kind: KindStorageUnavailable, Message: "storage unavailable", cause: cause}
}

// KindOf reports the kind of a sharing error. ok is false when err was
// not produced by this package.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
