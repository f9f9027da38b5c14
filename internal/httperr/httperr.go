// internal/httperr/httperr.go

// Package httperr carries an intended HTTP status across component
// boundaries. Business logic returns an *Error instead of deciding wire
// details itself; the HTTP layer performs the single translation to a
// response via Write.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Error is an error value classified with the HTTP status the caller should
// receive. Cause, when set, is the underlying failure and is preserved in the
// response body and through errors.Unwrap.
type Error struct {
	Status  int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New returns a classified error with no underlying cause.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Internal classifies a dependency failure as a 500 with the cause attached.
func Internal(message string, cause error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Cause: cause}
}

// errBody is the wire shape of a failed request. Inner is omitted entirely
// when there is no underlying cause.
type errBody struct {
	Message string `json:"message"`
	Inner   string `json:"inner,omitempty"`
}

// Write translates err into an HTTP response. A classified error keeps its
// status and message; anything else is logged server-side and reduced to an
// opaque 500 so internal detail never reaches the caller. If encoding the
// body fails the already-written status stands and the failure is logged.
func Write(w http.ResponseWriter, logger *logrus.Logger, err error) {
	var classified *Error
	if !errors.As(err, &classified) {
		logger.WithError(err).Error("unhandled error")
		classified = New(http.StatusInternalServerError, "internal server error")
	}

	body := errBody{Message: classified.Message}
	if classified.Cause != nil {
		body.Inner = classified.Cause.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(classified.Status)
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		logger.WithError(encErr).Error("failed to encode error response")
	}
}
