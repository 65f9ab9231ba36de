package middleware

import (
	"net/http"
	"runtime/debug"

	"go.uber.org/zap"
)

// Recoverer turns a panic in a handler into a 500 response and logs it with
// its stack.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			Log(r.Context()).Error("panic serving request",
				zap.Any("panic", rec),
				zap.ByteString("stack", debug.Stack()),
			)
			InternalError(w, r)
		}()

		next.ServeHTTP(w, r)
	})
}

// InternalError is the 500 fallback response.
func InternalError(w http.ResponseWriter, r *http.Request) {
	Fallback(w, r, http.StatusInternalServerError, "An internal server error occurred.")
}
