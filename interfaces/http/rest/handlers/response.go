package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}

// list makes empty results render as [] rather than null
func list[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
