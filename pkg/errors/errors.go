// Package errors provides standardized error definitions for the albumfied API.
package errors

import (
	"fmt"
	"net/http"
)

// Error represents a structured application error.
type Error struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	HTTPStatus int         `json:"-"`
	Details    interface{} `json:"details,omitempty"`
	Err        error       `json:"-"` // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetails returns a copy of the error with details attached.
func (e *Error) WithDetails(details interface{}) *Error {
	clone := *e
	clone.Details = details
	return &clone
}

// WithError returns a copy of the error wrapping another error.
func (e *Error) WithError(err error) *Error {
	clone := *e
	clone.Err = err
	return &clone
}

// New creates a new Error.
func New(code, message string, httpStatus int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Error codes
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeUnauthorized = "UNAUTHORIZED"

	ErrCodePlaylistNotFound = "PLAYLIST_NOT_FOUND"
	ErrCodePlaylistExists   = "PLAYLIST_NAME_TAKEN"
	ErrCodeAlbumNotFound    = "ALBUM_NOT_FOUND"
	ErrCodeAlbumExists      = "ALBUM_ALREADY_IN_PLAYLIST"
	ErrCodeNoMatches        = "NO_MATCHES"

	ErrCodeUpstream = "UPSTREAM_ERROR"
)

// Predefined errors
var (
	ErrInternal     = New(ErrCodeInternal, "Internal server error", http.StatusInternalServerError)
	ErrInvalidInput = New(ErrCodeInvalidInput, "Invalid input", http.StatusBadRequest)
	ErrNotFound     = New(ErrCodeNotFound, "Resource not found", http.StatusNotFound)
	ErrConflict     = New(ErrCodeConflict, "Resource conflict", http.StatusConflict)
	ErrForbidden    = New(ErrCodeForbidden, "Access forbidden", http.StatusForbidden)
	ErrUnauthorized = New(ErrCodeUnauthorized, "Unauthorized", http.StatusUnauthorized)

	ErrPlaylistNotFound = New(ErrCodePlaylistNotFound, "Playlist not found", http.StatusNotFound)
	ErrPlaylistExists   = New(ErrCodePlaylistExists, "A playlist with that name already exists", http.StatusConflict)
	ErrAlbumNotFound    = New(ErrCodeAlbumNotFound, "Album not found in playlist", http.StatusNotFound)
	ErrAlbumExists      = New(ErrCodeAlbumExists, "Album is already in the playlist", http.StatusConflict)
	ErrNoMatches        = New(ErrCodeNoMatches, "Album/Artist not found", http.StatusNotFound)

	ErrUpstream = New(ErrCodeUpstream, "Upstream service error", http.StatusBadGateway)
)

// IsError checks if an error is a specific application error.
func IsError(err error, target *Error) bool {
	if err == nil {
		return false
	}
	appErr, ok := err.(*Error)
	if !ok {
		return false
	}
	return appErr.Code == target.Code
}

// GetHTTPStatus returns the HTTP status code for an error.
// If the error is not an *Error, returns 500.
func GetHTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	appErr, ok := err.(*Error)
	if !ok {
		return http.StatusInternalServerError
	}
	return appErr.HTTPStatus
}
