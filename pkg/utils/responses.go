package utils

import (
	"encoding/json"
	"net/http"
)

const (
	MsgUnauthorized = "unauthorize access"
	MsgForbidden    = "forbidden access"
	MsgInternal     = "Internal server error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes body as JSON with the given status code. Store results are
// passed through as-is, so there is no success envelope.
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Message: message, Errors: errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusUnauthorized, ErrorResponse{Message: MsgUnauthorized})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusForbidden, ErrorResponse{Message: MsgForbidden})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Message: MsgInternal})
}
