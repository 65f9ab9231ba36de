package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/todoism/todoism-go/internal/model"
)

const (
	pathToken          = "/oauth/token"
	pathUser           = "/user"
	pathItems          = "/user/items"
	pathActiveItems    = "/user/items/active"
	pathCompletedItems = "/user/items/completed"
)

// links builds absolute URLs for one request. A configured base URL wins over
// the scheme and host the request arrived with.
type links struct {
	base string
}

func newLinks(baseURL string, r *http.Request) links {
	if baseURL != "" {
		return links{base: strings.TrimRight(baseURL, "/")}
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	proto, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	switch proto = strings.ToLower(strings.TrimSpace(proto)); proto {
	case "http", "https":
		scheme = proto
	}
	return links{base: scheme + "://" + r.Host}
}

func (l links) url(path string) string {
	return l.base + path
}

func (l links) item(id int64) string {
	return l.base + pathItems + "/" + strconv.FormatInt(id, 10)
}

func (l links) page(path string, page int) string {
	return l.base + path + "?page=" + strconv.Itoa(page)
}

func filterPath(f model.ItemFilter) string {
	switch f {
	case model.FilterActive:
		return pathActiveItems
	case model.FilterCompleted:
		return pathCompletedItems
	default:
		return pathItems
	}
}
