package handler

import (
	"errors"
	"net/http"

	"github.com/todoism/todoism-go/internal/middleware"
	"github.com/todoism/todoism-go/internal/model"
	"github.com/todoism/todoism-go/internal/service"
)

// AuthHandler serves the token endpoint and the current user resource.
type AuthHandler struct {
	service *service.AuthService
	baseURL string
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, baseURL string) *AuthHandler {
	return &AuthHandler{service: svc, baseURL: baseURL}
}

// HandleToken handles POST /oauth/token password grants.
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(http.StatusRequestEntityTooLarge, msgTooLarge))
			return
		}
		// An unreadable form carries no grant type.
		writeJSON(w, http.StatusBadRequest, errorResponse(http.StatusBadRequest, "The grant type must be password."))
		return
	}

	resp, err := h.service.Token(r.Context(), model.TokenRequest{
		GrantType: r.PostForm.Get("grant_type"),
		Username:  r.PostForm.Get("username"),
		Password:  r.PostForm.Get("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedGrant):
			writeJSON(w, http.StatusBadRequest, errorResponse(http.StatusBadRequest, "The grant type must be password."))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusBadRequest, errorResponse(http.StatusBadRequest, "Either the username or password was invalid."))
		default:
			internalError(w, r, "issue token", err)
		}
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	writeJSON(w, http.StatusOK, resp)
}

// HandleCurrentUser handles GET /user requests.
func (h *AuthHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		internalError(w, r, "current user", errNoUser)
		return
	}

	writeJSON(w, http.StatusOK, userSchema(newLinks(h.baseURL, r), user))
}
