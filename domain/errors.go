package domain

import "errors"

// Error kinds shared by every service. Package level sentinels wrap one of
// these so callers can match either the precise error or its kind.
var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidation       = errors.New("validation error")
	ErrConflict         = errors.New("conflict")
)

const (
	ErrorKindNotFound         = "not_found"
	ErrorKindPermissionDenied = "permission_denied"
	ErrorKindValidation       = "validation"
	ErrorKindConflict         = "conflict"
	ErrorKindInternal         = "internal"
)

// ErrorKind returns the kind of err for callers mapping errors to transport
// specific status codes.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return ErrorKindNotFound
	case errors.Is(err, ErrPermissionDenied):
		return ErrorKindPermissionDenied
	case errors.Is(err, ErrValidation):
		return ErrorKindValidation
	case errors.Is(err, ErrConflict):
		return ErrorKindConflict
	default:
		return ErrorKindInternal
	}
}
