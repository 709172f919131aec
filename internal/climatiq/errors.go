package climatiq

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed call
type Kind int

const (
	// KindNetwork the server could not be reached, status is 0
	KindNetwork Kind = iota + 1
	// KindClientRejected the server answered 4xx
	KindClientRejected
	// KindServerFailure the server answered 5xx or another non-2xx status
	KindServerFailure
	// KindMalformedResponse the server answered 2xx with an undecodable body
	KindMalformedResponse
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network_failure"
	case KindClientRejected:
		return "client_rejected"
	case KindServerFailure:
		return "server_failure"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

const (
	msgNetwork         = "cannot reach server, check your connection"
	msgBadRequest      = "invalid request, check the parameters"
	msgUnauthorized    = "invalid or expired api key"
	msgForbidden       = "access denied"
	msgNotFound        = "resource not found"
	msgTooManyRequests = "too many requests, retry later"
	msgServer          = "server error, retry later"
	msgMalformed       = "unexpected response from server"
)

// Error is the single error shape returned by every endpoint
type Error struct {
	Kind    Kind
	Status  int
	Message string
	// Detail server supplied detail, or the raw body of a malformed response
	Detail string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("climatiq: %s (status %d)", e.Message, e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Status: 0, Message: msgNetwork, Err: err}
}

func statusError(status int, detail string) *Error {
	kind := KindServerFailure
	if status >= 400 && status < 500 {
		kind = KindClientRejected
	}
	return &Error{Kind: kind, Status: status, Message: statusMessage(status), Detail: detail}
}

func malformedError(status int, raw string, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Status: status, Message: msgMalformed, Detail: raw, Err: err}
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return msgBadRequest
	case http.StatusUnauthorized:
		return msgUnauthorized
	case http.StatusForbidden:
		return msgForbidden
	case http.StatusNotFound:
		return msgNotFound
	case http.StatusTooManyRequests:
		return msgTooManyRequests
	default:
		return msgServer
	}
}

// StatusOf returns the status carried by a climatiq error
func StatusOf(err error) (int, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Status, true
}

// IsKind reports whether err is a climatiq error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
