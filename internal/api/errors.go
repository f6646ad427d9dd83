package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// NetworkErrMessage is the fixed user-facing text for transport failures,
// shown instead of raw connection errors.
const NetworkErrMessage = "Network error. Please check your connection or try again later."

type ErrorKind int

const (
	// KindNetwork covers timeouts and connectivity failures: no HTTP
	// status was ever received.
	KindNetwork ErrorKind = iota
	// KindStatus covers non-2xx responses.
	KindStatus
)

// Error is the single error shape produced by the client. Every failed call
// is normalized into it exactly once; flows never inspect raw transport
// errors or response bodies themselves.
type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether err wraps a transport-level failure.
func IsNetwork(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindNetwork
}

// Message resolves the text to show the user for a failed call: the fixed
// network message for transport failures, the server-extracted message for
// status errors, and the caller's fallback otherwise.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Kind == KindNetwork {
			return NetworkErrMessage
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return fallback
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: NetworkErrMessage, Err: err}
}

func statusError(status int, body []byte) *Error {
	return &Error{Kind: KindStatus, Status: status, Message: extractMessage(status, body)}
}

// extractMessage walks the server error envelope in priority order:
// top-level "message", nested "error.message", a bare "error" string, then
// the HTTP status text.
func extractMessage(status int, body []byte) string {
	var envelope struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if len(envelope.Error) > 0 {
			var nested struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(envelope.Error, &nested); err == nil && nested.Message != "" {
				return nested.Message
			}
			var plain string
			if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
				return plain
			}
		}
	}
	return http.StatusText(status)
}
