package ovhapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// TransportError is an I/O failure: the exchange did not complete.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ResponseError is a completed exchange with a status the caller did not accept.
type ResponseError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("response error: %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match 401 and 403 to domain.ErrNotAuthenticated and
// 404 to domain.ErrNotFound.
func (e *ResponseError) Is(target error) bool {
	switch target {
	case domain.ErrNotAuthenticated:
		return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
	case domain.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// DecodeError is a successful response whose body did not match the expected type.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("deserialize error: %v, string is %s", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a transport failure.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is a decode failure.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthenticated reports whether err is a 401 or 403 response.
func IsUnauthenticated(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
