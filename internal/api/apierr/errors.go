package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mtrunkat/namedrill/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeEmptyDirectory = "EMPTY_DIRECTORY"
	CodeNoActiveGame   = "NO_ACTIVE_GAME"
	CodeGameComplete   = "GAME_COMPLETE"
	CodeNoCurrentCard  = "NO_CURRENT_CARD"
	CodeAnswerLocked   = "ANSWER_LOCKED"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrEmptyDirectory):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeEmptyDirectory, "No usable people found in the directory"}}
	case errors.Is(err, model.ErrNoActiveGame):
		return &httpError{http.StatusNotFound, APIError{CodeNoActiveGame, "No active game; start one first"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrNoCurrentCard):
		return &httpError{http.StatusConflict, APIError{CodeNoCurrentCard, "No card is being shown; request the next card"}}
	case errors.Is(err, model.ErrAnswerLocked):
		return &httpError{http.StatusConflict, APIError{CodeAnswerLocked, "Answer already submitted; wait for the next card"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
