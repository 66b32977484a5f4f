package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/auxilium-app/auxilium/internal/errors"
	"github.com/go-chi/chi/v5"
)

// Error codes for standardized API error responses
const (
	ErrCodeBadRequest     = "BAD_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeValidation     = "VALIDATION_ERROR"
	ErrCodeInternalServer = "INTERNAL_SERVER_ERROR"
)

// Envelope is the uniform response body for every endpoint
type Envelope struct {
	Status  string      `json:"status"`
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// APIError represents an error with an HTTP status code and error code
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new API error with custom message and code
func NewAPIError(status int, code, message string) *APIError {
	return &APIError{Status: status, Code: code, Message: message}
}

// BadRequest creates a 400 error with custom message
func BadRequest(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: message}
}

// Unauthorized creates a 401 error with custom message
func Unauthorized(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Code: ErrCodeUnauthorized, Message: message}
}

// NotFound creates a 404 error with custom message
func NotFound(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Code: ErrCodeNotFound, Message: message}
}

// Conflict creates a 409 error with custom message
func Conflict(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Code: ErrCodeConflict, Message: message}
}

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// respondData writes a success envelope with a message and payload
func respondData(w http.ResponseWriter, status int, message string, data interface{}) {
	respondJSON(w, status, Envelope{Status: "success", Message: message, Data: data})
}

// respondOK writes a 200 OK success envelope
func respondOK(w http.ResponseWriter, message string, data interface{}) {
	respondData(w, http.StatusOK, message, data)
}

// respondCreated writes a 201 Created success envelope
func respondCreated(w http.ResponseWriter, message string, data interface{}) {
	respondData(w, http.StatusCreated, message, data)
}

// respondError writes an error envelope
func (h *Handlers) respondError(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*APIError)
	if !ok {
		apiErr = h.toAPIError(err)
	}
	respondJSON(w, apiErr.Status, Envelope{Status: "error", Code: apiErr.Code, Message: apiErr.Message})
}

// errEmptyBody is returned by decodeJSON for requests with no body so
// handlers with optional payloads can treat it as "all defaults"
var errEmptyBody = BadRequest("request body is empty")

// decodeJSON decodes JSON from request body into the target
func decodeJSON(r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		if err == io.EOF {
			return errEmptyBody
		}
		return BadRequest("invalid JSON: " + err.Error())
	}
	return nil
}

// requireParam extracts a URL parameter or fails with a 400
func requireParam(r *http.Request, name string) (string, error) {
	param := chi.URLParam(r, name)
	if param == "" {
		return "", BadRequest("missing " + name + " parameter")
	}
	return param, nil
}

// toAPIError converts service errors to appropriate API errors
func (h *Handlers) toAPIError(err error) *APIError {
	var appErr *errors.Error
	if stderrors.As(err, &appErr) {
		switch appErr.Kind {
		case errors.ErrNotFound:
			return NotFound(appErr.Message)
		case errors.ErrValidation, errors.ErrInvalidInput, errors.ErrMalformedRow:
			return &APIError{Status: http.StatusBadRequest, Code: ErrCodeValidation, Message: appErr.Message}
		case errors.ErrConflict:
			return Conflict(appErr.Message)
		case errors.ErrUnauthorized:
			return Unauthorized(appErr.Message)
		}
	}

	h.Log.Error("internal error", "error", err)
	return &APIError{Status: http.StatusInternalServerError, Code: ErrCodeInternalServer, Message: "internal server error"}
}
