package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/todoism/todoism-go/internal/model"
	"github.com/todoism/todoism-go/internal/service"
	"go.uber.org/zap"
)

type contextKey string

const userKey contextKey = "user"

// Authenticator resolves a bearer token to the user it was issued for. A
// token that cannot be honoured fails with service.ErrInvalidToken; any other
// error is a server fault.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate returns middleware that requires a valid bearer token and
// binds the resolved user to the request context. OPTIONS requests pass
// through so CORS preflights work.
func Authenticate(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				tokenMissing(w)
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, service.ErrInvalidToken) {
					Log(r.Context()).Debug("token rejected", zap.Error(err))
					invalidToken(w)
					return
				}
				Log(r.Context()).Error("resolve token", zap.Error(err))
				InternalError(w, r)
				return
			}

			ctx := WithUser(r.Context(), user)
			ctx = context.WithValue(ctx, loggerKey, Log(ctx).With(zap.Int64("user_id", user.ID)))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	token = strings.TrimSpace(token)
	if !found || token == "" || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	return token, true
}

func tokenMissing(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), nil)
}

func invalidToken(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), map[string]string{
		"error":             "invalid_token",
		"error_description": "Either the token was expired or invalid.",
	})
}

// WithUser returns a copy of ctx carrying user.
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user bound by Authenticate.
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
