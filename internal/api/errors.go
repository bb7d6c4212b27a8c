package api

import (
	"encoding/json"
	"strings"
)

// ErrorKind classifies normalized API failures
type ErrorKind string

const (
	// KindAuth means bad credentials or an expired/invalid token
	KindAuth ErrorKind = "auth"

	// KindValidation means the server rejected the input (duplicate username,
	// malformed payload, unknown resource)
	KindValidation ErrorKind = "validation"

	// KindNetwork means the server was unreachable, timed out, or returned an
	// unparseable body
	KindNetwork ErrorKind = "network"
)

// Error is the single normalized error shape for every API failure.
// Message prefers the server-provided detail; Status is the HTTP status code
// when one was received, 0 otherwise.
type Error struct {
	Kind    ErrorKind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// errorBody matches the backend error envelope. Detail is either a plain
// string or a list of field errors, so it is decoded lazily.
type errorBody struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

type detailItem struct {
	Msg  string `json:"msg"`
	Type string `json:"type"`
}

// kindForStatus maps an HTTP status to an error kind
func kindForStatus(status int) ErrorKind {
	switch status {
	case 401, 403:
		return KindAuth
	case 400, 404, 409, 422:
		return KindValidation
	}
	return KindNetwork
}

// normalizeError builds an *Error from a non-2xx response body. The body is
// expected to be JSON but is reported as text when it is not.
func normalizeError(status int, body []byte, fallback string) *Error {
	msg := fallback

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if m := detailMessage(eb.Detail); m != "" {
			msg = m
		} else if eb.Message != "" {
			msg = eb.Message
		}
	} else if text := strings.TrimSpace(string(body)); text != "" {
		msg = text
	}

	return &Error{Kind: kindForStatus(status), Message: msg, Status: status}
}

// detailMessage flattens the server detail field into one message
func detailMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var items []detailItem
	if err := json.Unmarshal(raw, &items); err == nil && len(items) > 0 {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if it.Msg != "" {
				msgs = append(msgs, it.Msg)
			}
		}
		return strings.Join(msgs, ", ")
	}

	return ""
}

// IsAuthError reports whether err is a normalized auth failure
func IsAuthError(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == KindAuth
}

// IsValidationError reports whether err is a normalized validation failure
func IsValidationError(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == KindValidation
}
