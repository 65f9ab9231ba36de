package middleware

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"
)

// writeError writes the uniform error body {code, message, ...extra}.
func writeError(w http.ResponseWriter, status int, message string, extra map[string]string) {
	body := map[string]any{"code": status, "message": message}
	for k, v := range extra {
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// WantsJSON reports whether the Accept header takes JSON but not HTML. Only
// such clients get JSON bodies for router-level 404/405/500 responses.
func WantsJSON(r *http.Request) bool {
	var jsonOK, htmlOK bool
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil || params["q"] == "0" {
			continue
		}
		switch mediaType {
		case "application/json", "application/*":
			jsonOK = true
		case "text/html", "text/*":
			htmlOK = true
		case "*/*":
			jsonOK, htmlOK = true, true
		}
	}
	return jsonOK && !htmlOK
}

// Fallback answers with JSON for clients that asked for it and a plain text
// body otherwise.
func Fallback(w http.ResponseWriter, r *http.Request, status int, message string) {
	if WantsJSON(r) {
		writeError(w, status, message, nil)
		return
	}
	http.Error(w, message, status)
}
