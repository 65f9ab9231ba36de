package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/todoism/todoism-go/internal/middleware"
	"github.com/todoism/todoism-go/internal/model"
	"github.com/todoism/todoism-go/internal/service"
)

var errNoUser = errors.New("no authenticated user in request context")

// ItemHandler serves the current user's items.
type ItemHandler struct {
	service *service.ItemService
	baseURL string
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(svc *service.ItemService, baseURL string) *ItemHandler {
	return &ItemHandler{service: svc, baseURL: baseURL}
}

// HandleList returns a handler for GET on the listing bound to filter.
func (h *ItemHandler) HandleList(filter model.ItemFilter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			internalError(w, r, "list items", errNoUser)
			return
		}

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			page = 1
		}

		result, err := h.service.List(r.Context(), user.ID, filter, page)
		if err != nil {
			h.fail(w, r, "list items", err)
			return
		}

		writeJSON(w, http.StatusOK, collectionSchema(newLinks(h.baseURL, r), filterPath(filter), result, user))
	}
}

// HandleCreate handles POST /user/items requests.
func (h *ItemHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		internalError(w, r, "create item", errNoUser)
		return
	}

	req, err := decodeItem(w, r)
	if err != nil {
		h.fail(w, r, "create item", err)
		return
	}

	item, err := h.service.Create(r.Context(), user.ID, req)
	if err != nil {
		h.fail(w, r, "create item", err)
		return
	}

	l := newLinks(h.baseURL, r)
	w.Header().Set("Location", l.item(item.ID))
	writeJSON(w, http.StatusCreated, itemSchema(l, item, user))
}

// HandleGet handles GET /user/items/{item_id} requests.
func (h *ItemHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, itemID, ok := h.target(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(r.Context(), user.ID, itemID)
	if err != nil {
		h.fail(w, r, "get item", err)
		return
	}

	writeJSON(w, http.StatusOK, itemSchema(newLinks(h.baseURL, r), item, user))
}

// HandleReplace handles PUT /user/items/{item_id} requests. The body is only
// looked at once the item is known to belong to the caller.
func (h *ItemHandler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	user, itemID, ok := h.target(w, r)
	if !ok {
		return
	}

	req, decodeErr := decodeItem(w, r)
	if decodeErr != nil {
		if _, err := h.service.Get(r.Context(), user.ID, itemID); err != nil {
			h.fail(w, r, "replace item", err)
			return
		}
		h.fail(w, r, "replace item", decodeErr)
		return
	}

	if err := h.service.Replace(r.Context(), user.ID, itemID, req); err != nil {
		h.fail(w, r, "replace item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleToggle handles PATCH /user/items/{item_id} requests.
func (h *ItemHandler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	user, itemID, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.service.Toggle(r.Context(), user.ID, itemID); err != nil {
		h.fail(w, r, "toggle item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /user/items/{item_id} requests.
func (h *ItemHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, itemID, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), user.ID, itemID); err != nil {
		h.fail(w, r, "delete item", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleClearCompleted handles DELETE /user/items/completed requests.
func (h *ItemHandler) HandleClearCompleted(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		internalError(w, r, "clear completed", errNoUser)
		return
	}

	if _, err := h.service.ClearCompleted(r.Context(), user.ID); err != nil {
		internalError(w, r, "clear completed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// target resolves the caller and the item id in the path. It answers the
// request itself when either is unusable.
func (h *ItemHandler) target(w http.ResponseWriter, r *http.Request) (model.User, int64, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		internalError(w, r, "resolve item", errNoUser)
		return model.User{}, 0, false
	}

	itemID, err := strconv.ParseInt(chi.URLParam(r, "item_id"), 10, 64)
	if err != nil {
		notFound(w, r)
		return model.User{}, 0, false
	}

	return user, itemID, true
}

func (h *ItemHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse(http.StatusRequestEntityTooLarge, msgTooLarge))
	case errors.Is(err, service.ErrItemNotFound), errors.Is(err, service.ErrPageNotFound):
		notFound(w, r)
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse(http.StatusForbidden, http.StatusText(http.StatusForbidden)))
	case errors.Is(err, service.ErrInvalidItemBody):
		writeJSON(w, http.StatusBadRequest, errorResponse(http.StatusBadRequest, msgInvalidItemBody))
	default:
		internalError(w, r, op, err)
	}
}

// decodeItem reads {"body": "..."}. Anything that does not decode, including a
// non-string body, is an invalid item body.
func decodeItem(w http.ResponseWriter, r *http.Request) (model.ItemRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req model.ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return model.ItemRequest{}, err
		}
		return model.ItemRequest{}, service.ErrInvalidItemBody
	}
	return req, nil
}
