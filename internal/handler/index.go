package handler

import "net/http"

const apiVersion = "1.0"

// IndexHandler serves the unauthenticated entry points.
type IndexHandler struct {
	baseURL string
}

// NewIndexHandler creates a new IndexHandler.
func NewIndexHandler(baseURL string) *IndexHandler {
	return &IndexHandler{baseURL: baseURL}
}

// HandleIndex handles GET / with a map of the API's URLs.
func (h *IndexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	l := newLinks(h.baseURL, r)
	writeJSON(w, http.StatusOK, map[string]string{
		"api_version":                      apiVersion,
		"api_base_url":                     l.url(""),
		"current_user_url":                 l.url(pathUser),
		"authentication_url":               l.url(pathToken),
		"item_url":                         l.url(pathItems + "/{item_id}"),
		"current_user_items_url":           l.url(pathItems + "{?page}"),
		"current_user_active_items_url":    l.url(pathActiveItems + "{?page}"),
		"current_user_completed_items_url": l.url(pathCompletedItems + "{?page}"),
	})
}

// HandleHealth handles GET /health liveness probes.
func (h *IndexHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
