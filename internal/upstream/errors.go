package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an upstream call failure.
type Kind int

const (
	// Unauthorized means the credential itself was rejected (401 upstream).
	Unauthorized Kind = iota
	// Forbidden means the credential lacks permission (403 upstream).
	Forbidden
	// NotFound means the target id is unknown to the upstream (404).
	NotFound
	// UpstreamError covers any other non-2xx response, including 5xx.
	UpstreamError
	// TransportError means no response was obtained (network failure, timeout).
	TransportError
)

func (k Kind) String() string {
	switch k {
	case Unauthorized:
		return "unauthorized"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	case UpstreamError:
		return "upstream_error"
	default:
		return "transport_error"
	}
}

// Error is the normalized failure returned by every gateway client.
type Error struct {
	Kind    Kind
	Service string // "discord", "mcsrvstat", "mojang"
	Message string
	Status  int // upstream HTTP status, 0 for transport failures
	Cause   error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Service, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Service, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus maps the failure onto the status this service should answer with.
// Only the misconfiguration statuses pass through verbatim; everything else
// is the caller's problem to retry on the next poll cycle, reported as 500.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Classify builds an Error from an upstream HTTP status code.
func Classify(service string, status int, message string) *Error {
	var kind Kind
	switch status {
	case http.StatusUnauthorized:
		kind = Unauthorized
	case http.StatusForbidden:
		kind = Forbidden
	case http.StatusNotFound:
		kind = NotFound
	default:
		kind = UpstreamError
	}
	return &Error{Kind: kind, Service: service, Message: message, Status: status}
}

// Transport wraps a pre-response failure (dial error, timeout, bad body).
func Transport(service string, err error) *Error {
	return &Error{
		Kind:    TransportError,
		Service: service,
		Message: err.Error(),
		Cause:   err,
	}
}

// As extracts an *Error from an error chain.
func As(err error) (*Error, bool) {
	var ue *Error
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
