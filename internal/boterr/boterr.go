package boterr

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ConfigError reports a required setting that is absent or empty.
type ConfigError struct {
	Name string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("environment variable '%s' is not set", e.Name)
}

// FetchError reports that the pull-request diff could not be downloaded.
type FetchError struct {
	PR  int
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch pull request #%d diff: %v", e.PR, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx answer from an API. Body holds the raw error body.
type HTTPError struct {
	StatusCode int
	Reason     string
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error %d - %s: %s", e.StatusCode, e.Reason, e.Body)
}

// TransportError is a DNS, connection or read failure before a status was seen.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: connection error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse JSON response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ShapeError reports a parsed response missing a required field.
type ShapeError struct {
	Path string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response structure: missing %s", e.Path)
}

// Context returns the label used when reporting err at the top level.
func Context(err error) string {
	var (
		cfgErr   *ConfigError
		fetchErr *FetchError
		httpErr  *HTTPError
		tErr     *TransportError
		decErr   *DecodeError
		shapeErr *ShapeError
	)
	switch {
	case errors.As(err, &cfgErr):
		return "configuration"
	case errors.As(err, &fetchErr):
		return "fetching pull request diff"
	case errors.As(err, &shapeErr):
		return "review response"
	case errors.As(err, &httpErr), errors.As(err, &tErr), errors.As(err, &decErr):
		return "API request"
	default:
		return "unexpected error"
	}
}

// NewHTTPError builds an *HTTPError from a response status line and body.
func NewHTTPError(statusCode int, status string, body []byte) *HTTPError {
	reason := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
	if reason == "" {
		reason = http.StatusText(statusCode)
	}
	return &HTTPError{StatusCode: statusCode, Reason: reason, Body: string(body)}
}
