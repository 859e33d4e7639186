package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// RequestError describes a failed API call: a non-2xx response or a
// transport failure. Status is the HTTP status code, or 0 when the
// request never produced a response.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Body)
	}
	if msg := e.Message(); msg != "" {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Message extracts the server-provided message from a JSON error body,
// falling back to the raw body text.
func (e *RequestError) Message() string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(e.Body), &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(e.Body)
}

// IsTransport reports whether err is a RequestError caused by a
// transport failure rather than a server response.
func IsTransport(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == 0
}
