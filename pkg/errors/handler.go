package errors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error response. Error carries the
// human readable message the browser client shows.
type ErrorResponse struct {
	Error     string                 `json:"error"`
	Type      string                 `json:"type"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// ErrorHandler handles errors and sends appropriate HTTP responses
type ErrorHandler struct {
	logger *zap.Logger
	debug  bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger, debug bool) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		debug:  debug,
	}
}

// Handle processes an error and sends an HTTP response
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}

	requestID := middleware.GetReqID(r.Context())

	if appErr := GetAppError(err); appErr != nil {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}

		h.logError(r, appErr, status)

		message := appErr.Message
		if h.debug && appErr.Cause != nil {
			message = appErr.Error()
		}
		h.sendJSON(w, status, ErrorResponse{
			Error:     message,
			Type:      string(appErr.Type),
			Details:   appErr.Details,
			RequestID: requestID,
		})
		return
	}

	h.logger.Error("Unhandled error",
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", requestID),
	)

	message := "An internal error occurred"
	if h.debug {
		message = err.Error()
	}
	h.sendJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:     message,
		Type:      string(ErrorTypeInternal),
		RequestID: requestID,
	})
}

// HandleStatus sends an error response with a specific status code
func (h *ErrorHandler) HandleStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.logger.Warn("HTTP error",
		zap.Int("status", status),
		zap.String("message", message),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)

	h.sendJSON(w, status, ErrorResponse{
		Error:     message,
		Type:      statusToErrorType(status),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// logError logs client errors at warn level and server errors at error level
func (h *ErrorHandler) logError(r *http.Request, appErr *AppError, status int) {
	fields := []zap.Field{
		zap.String("type", string(appErr.Type)),
		zap.String("message", appErr.Message),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	}
	if appErr.Cause != nil {
		fields = append(fields, zap.Error(appErr.Cause))
	}

	if status >= 500 {
		h.logger.Error("Request failed", fields...)
	} else {
		h.logger.Warn("Request rejected", fields...)
	}
}

func (h *ErrorHandler) sendJSON(w http.ResponseWriter, status int, body ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to encode error response", zap.Error(err))
	}
}

func statusToErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return string(ErrorTypeValidation)
	case http.StatusForbidden, http.StatusUnauthorized:
		return string(ErrorTypeForbidden)
	case http.StatusNotFound:
		return string(ErrorTypeNotFound)
	case http.StatusTooManyRequests:
		return string(ErrorTypeRateLimit)
	default:
		return string(ErrorTypeInternal)
	}
}
