package tmdb

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig indicates invalid client configuration
	ErrInvalidConfig = errors.New("invalid tmdb configuration")
	// ErrTransport indicates the request never produced an HTTP response
	ErrTransport = errors.New("tmdb transport failure")
	// ErrEmptyBody indicates a 2xx response that carried no body
	ErrEmptyBody = errors.New("tmdb returned an empty body")
	// ErrNoPosterPath indicates the movie has no poster to fetch
	ErrNoPosterPath = errors.New("movie has no poster path")
)

// ErrorKind classifies a failure into the client's error taxonomy.
type ErrorKind int

const (
	// KindUnknown is any error outside the taxonomy
	KindUnknown ErrorKind = iota
	// KindTransport is a connection, DNS or timeout failure
	KindTransport
	// KindHTTPStatus is a non-2xx HTTP status
	KindHTTPStatus
	// KindEmptyBody is a response without a body
	KindEmptyBody
	// KindDecode is a body that could not be parsed or had the wrong shape
	KindDecode
	// KindRemoteAPI is a service-level failure carried in status_code
	KindRemoteAPI
)

// String returns the string representation of an ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "TRANSPORT"
	case KindHTTPStatus:
		return "HTTP_STATUS"
	case KindEmptyBody:
		return "EMPTY_BODY"
	case KindDecode:
		return "DECODE"
	case KindRemoteAPI:
		return "REMOTE_API"
	default:
		return "UNKNOWN"
	}
}

// Kind reports which taxonomy bucket err belongs to.
func Kind(err error) ErrorKind {
	var (
		transportErr *TransportError
		statusErr    *HTTPStatusError
		decodeErr    *DecodeError
		remoteErr    *RemoteAPIError
	)

	switch {
	case err == nil:
		return KindUnknown
	case errors.As(err, &transportErr), errors.Is(err, ErrTransport):
		return KindTransport
	case errors.As(err, &statusErr):
		return KindHTTPStatus
	case errors.Is(err, ErrEmptyBody):
		return KindEmptyBody
	case errors.As(err, &decodeErr):
		return KindDecode
	case errors.As(err, &remoteErr):
		return KindRemoteAPI
	default:
		return KindUnknown
	}
}

// TransportError wraps a failure of the underlying HTTP round trip
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("tmdb %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes the transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrTransport) match any TransportError.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// HTTPStatusError represents a response outside the 2xx range
type HTTPStatusError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d", e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *HTTPStatusError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *HTTPStatusError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// DecodeError indicates a body that is not valid JSON or lacks expected keys
type DecodeError struct {
	Reason string
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("tmdb decode error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("tmdb decode error: %s", e.Reason)
}

// Unwrap exposes the parser error, if any.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RemoteAPIError is a service-level failure reported through status_code
type RemoteAPIError struct {
	StatusCode    int
	StatusMessage string
}

// Error implements the error interface
func (e *RemoteAPIError) Error() string {
	if e.StatusMessage == "" {
		return fmt.Sprintf("tmdb returned status_code %d", e.StatusCode)
	}
	return fmt.Sprintf("tmdb returned status_code %d: %s", e.StatusCode, e.StatusMessage)
}
