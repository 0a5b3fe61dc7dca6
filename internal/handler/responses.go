package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/ClanWarsBot_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers already sent; nothing to do but log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	ErrMsgTeamNotFoundError    = "Team not found"
	ErrMsgTeamExistsError      = "A team with that name already exists"
	ErrMsgInvalidTeamNameError = "Invalid team name"
	ErrMsgUserNotFoundError    = "User is not on any team"
	ErrMsgAlreadyOnTeamError   = "User is already on a team"
	ErrMsgUsernameTooLongError = "Username is too long"

	ErrMsgUnknownBuildingError  = "Unknown building"
	ErrMsgAlreadyMaxedError     = "Building is already at max level"
	ErrMsgAlreadyAtMinimumError = "Building is already at its starting level"
	ErrMsgNotEnoughError        = "Not enough resources"
	ErrMsgNoCostDefinedError    = "No upgrade cost configured for that level"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses so callers never see SQLSTATEs or internal wording.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound, ErrMsgTeamNotFoundError
	case errors.Is(err, domain.ErrTeamExists):
		return http.StatusConflict, ErrMsgTeamExistsError
	case errors.Is(err, domain.ErrInvalidTeamName):
		return http.StatusBadRequest, ErrMsgInvalidTeamNameError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUserAlreadyOnTeam):
		return http.StatusConflict, ErrMsgAlreadyOnTeamError
	case errors.Is(err, domain.ErrUsernameTooLong), errors.Is(err, domain.ErrNoUser):
		return http.StatusBadRequest, ErrMsgUsernameTooLongError
	case errors.Is(err, domain.ErrUnknownBuilding):
		return http.StatusBadRequest, ErrMsgUnknownBuildingError
	case errors.Is(err, domain.ErrAlreadyMaxed):
		return http.StatusBadRequest, ErrMsgAlreadyMaxedError
	case errors.Is(err, domain.ErrAlreadyAtMinimum):
		return http.StatusBadRequest, ErrMsgAlreadyAtMinimumError
	case errors.Is(err, domain.ErrInsufficientResources):
		return http.StatusBadRequest, ErrMsgNotEnoughError
	case errors.Is(err, domain.ErrNoCostDefined):
		return http.StatusBadRequest, ErrMsgNoCostDefinedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
