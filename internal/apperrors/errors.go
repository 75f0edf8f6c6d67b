package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInternal            = errors.New("internal error")
)

func InvalidArgument(format string, args ...interface{}) error {
	return wrap(ErrInvalidArgument, format, args...)
}

func UpstreamUnavailable(format string, args ...interface{}) error {
	return wrap(ErrUpstreamUnavailable, format, args...)
}

func Unauthorized(format string, args ...interface{}) error {
	return wrap(ErrUnauthorized, format, args...)
}

func Internal(format string, args ...interface{}) error {
	return wrap(ErrInternal, format, args...)
}

func wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// HTTPStatus maps an error to the status code returned to API callers.
// Anything that is not one of the known kinds is treated as internal.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage hides internal details from API callers.
func PublicMessage(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
