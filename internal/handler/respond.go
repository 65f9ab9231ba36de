package handler

import (
	"encoding/json"
	"net/http"

	"github.com/todoism/todoism-go/internal/middleware"
	"go.uber.org/zap"
)

const (
	msgNotFound        = "The requested URL was not found on the server."
	msgInvalidItemBody = "The item body was empty or invalid."
	msgTooLarge        = "The request body was too large."
)

const maxBodyBytes = 1 << 20 // 1MB

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(status int, message string) map[string]any {
	return map[string]any{"code": status, "message": message}
}

// internalError logs err against the request and answers 500.
func internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	middleware.Log(r.Context()).Error(op, zap.Error(err))
	middleware.InternalError(w, r)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	middleware.Fallback(w, r, http.StatusNotFound, msgNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	middleware.Fallback(w, r, http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.")
}
