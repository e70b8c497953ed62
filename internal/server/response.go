package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/navagraha/jyotish/pkg/errors"
)

// errorResponse is the JSON body sent for every failed request.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		// The status code is already out; nothing useful to do on failure.
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, logger *log.Logger, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)

	logCtx := logger.With(
		"method", r.Method,
		"path", r.URL.Path,
		"error_code", string(code),
		"status_code", status,
	)
	if status >= http.StatusInternalServerError {
		logCtx.Error("request failed", "error", err)
	} else {
		logCtx.Debug("request rejected", "error", err)
	}

	writeJSON(w, status, errorResponse{
		Error:   string(code),
		Message: errors.UserMessage(err),
		Code:    status,
	})
}

func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidBody,
		errors.ErrCodeInvalidSign, errors.ErrCodeInvalidHouse,
		errors.ErrCodeInvalidMode, errors.ErrCodeInvalidAyanamsa,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeEphemeris:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
