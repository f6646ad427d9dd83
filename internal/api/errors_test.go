package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage_PriorityChain(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "top-level message wins",
			body:     `{"message":"Email already registered","error":{"message":"ignored"}}`,
			expected: "Email already registered",
		},
		{
			name:     "nested error message",
			body:     `{"error":{"message":"Current password is incorrect"}}`,
			expected: "Current password is incorrect",
		},
		{
			name:     "bare error string",
			body:     `{"error":"forbidden"}`,
			expected: "forbidden",
		},
		{
			name:     "unrecognized shape falls back to status text",
			body:     `{"detail":"something"}`,
			expected: http.StatusText(http.StatusBadRequest),
		},
		{
			name:     "non-json body falls back to status text",
			body:     `<html>gateway error</html>`,
			expected: http.StatusText(http.StatusBadRequest),
		},
		{
			name:     "empty body falls back to status text",
			body:     ``,
			expected: http.StatusText(http.StatusBadRequest),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractMessage(http.StatusBadRequest, []byte(tt.body)))
		})
	}
}

func TestMessage(t *testing.T) {
	netErr := networkError(errors.New("dial tcp: connection refused"))
	assert.Equal(t, NetworkErrMessage, Message(netErr, "fallback"))

	statusErr := statusError(http.StatusConflict, []byte(`{"message":"taken"}`))
	assert.Equal(t, "taken", Message(statusErr, "fallback"))

	assert.Equal(t, "fallback", Message(errors.New("plain"), "fallback"))
}

func TestIsNetwork(t *testing.T) {
	assert.True(t, IsNetwork(networkError(errors.New("timeout"))))
	assert.False(t, IsNetwork(statusError(http.StatusBadRequest, nil)))
	assert.False(t, IsNetwork(errors.New("other")))
	assert.False(t, IsNetwork(nil))
}

func TestErrorString(t *testing.T) {
	e := &Error{Kind: KindStatus, Status: http.StatusBadGateway}
	assert.Equal(t, "request failed with status 502", e.Error())

	e = &Error{Kind: KindStatus, Status: http.StatusBadRequest, Message: "bad input"}
	assert.Equal(t, "bad input", e.Error())
}
