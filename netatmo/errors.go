package netatmo

import (
	"errors"
	"fmt"
)

// Sentinel errors marking which stage of the request pipeline failed. The
// pipeline chains them in front of the underlying cause, so errors.Is
// identifies the stage while errors.As and Unwrap still reach the cause.
var (
	// ErrAuthenticationFailed wraps any error arising during the token exchange.
	ErrAuthenticationFailed = errors.New("netatmo: authentication failed")

	// ErrFailedToSendRequest indicates a transport-level failure before any
	// response was received.
	ErrFailedToSendRequest = errors.New("netatmo: failed to send request")

	// ErrFailedToReadResponse indicates a response was received but its body
	// could not be read.
	ErrFailedToReadResponse = errors.New("netatmo: failed to read response")

	// ErrDecodeResponse indicates the body did not parse as the expected
	// payload type.
	ErrDecodeResponse = errors.New("netatmo: failed to decode response")
)

// Error codes the Netatmo API reports inside its error envelope.
const (
	CodeAccessTokenMissing = 1
	CodeInvalidAccessToken = 2
	CodeAccessTokenExpired = 3
	CodeDeviceNotFound     = 9
	CodeMissingArguments   = 10
	CodeOperationForbidden = 13
	CodeInvalidClient      = 21
)

// APIError is a logical failure the Netatmo API reported itself, carrying
// the vendor's own error code and message.
type APIError struct {
	Name    string // logical call name, e.g. "get_station_data"
	Code    int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("netatmo: %s failed: %s (code %d)", e.Name, e.Message, e.Code)
}

// IsAuthError reports whether the vendor code indicates a missing, invalid
// or expired access token.
func (e *APIError) IsAuthError() bool {
	switch e.Code {
	case CodeAccessTokenMissing, CodeInvalidAccessToken, CodeAccessTokenExpired:
		return true
	}
	return false
}

// IsNotFound reports whether the vendor code indicates an unknown device.
func (e *APIError) IsNotFound() bool {
	return e.Code == CodeDeviceNotFound
}

// UnknownAPIError is returned when a response status was unexpected and
// either not eligible for envelope decoding or the envelope itself failed
// to decode.
type UnknownAPIError struct {
	Name       string
	StatusCode int
	cause      error
}

// Error implements the error interface.
func (e *UnknownAPIError) Error() string {
	return fmt.Sprintf("netatmo: %s failed with unexpected status %d", e.Name, e.StatusCode)
}

// Unwrap returns the body read or envelope decode error, if any.
func (e *UnknownAPIError) Unwrap() error {
	return e.cause
}
