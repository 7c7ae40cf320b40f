package openai

import "errors"

// SDKError is the base type embedded in every error this package returns.
// It carries a human-readable message and, where applicable, the underlying
// cause for errors.Unwrap chains.
type SDKError struct {
	Message string
	Cause   error
}

func (e *SDKError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SDKError) Unwrap() error { return e.Cause }

// ConfigurationError indicates the client was constructed without the
// configuration it needs (typically a missing API key).
type ConfigurationError struct {
	SDKError
}

// InvalidRequestError indicates a request descriptor is missing a required
// field and was rejected before anything was sent.
type InvalidRequestError struct {
	SDKError
	Field string
}

// FileError indicates a file referenced by a request could not be read.
type FileError struct {
	SDKError
	Path string
}

// DecodeError indicates malformed base64 input.
type DecodeError struct {
	SDKError
}

// FormatError indicates a string that does not follow the data URL format.
type FormatError struct {
	SDKError
}

// TransportError indicates the HTTP exchange itself failed (connection,
// timeout, unreadable response) before any API-level result was obtained.
type TransportError struct {
	SDKError
}

// APIError is returned when the API answers with a non-2xx status. Type and
// Code are taken from the error envelope when the body carries one.
// RetryAfter reflects a Retry-After response header, in seconds, when
// present; this package never retries on its own.
type APIError struct {
	SDKError
	StatusCode int
	Type       string
	Code       string
	RetryAfter *float64
}

// RemoteError is the API's own error envelope found inside an otherwise
// successful response body. Navigation helpers surface it before looking at
// any output items.
type RemoteError struct {
	SDKError
	Type string
}

// Sentinel errors reported by response navigation when the parsed document
// does not have the shape an extractor needs. All are wrapped with context,
// so match with errors.Is.
var (
	ErrNoMessageBlock  = errors.New("no message item in output")
	ErrNoContent       = errors.New("message item has no content")
	ErrNoTextField     = errors.New("content entry has no text field")
	ErrNoToolCall      = errors.New("no matching tool call in output")
	ErrMissingResult   = errors.New("tool call has no result field")
	ErrMalformedResult = errors.New("tool call result has unexpected shape")
)
