package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// wantsHTML reports whether the client is a browser expecting a rendered
// page. Form routes use it to choose between the error view and a JSON body;
// API routes always answer JSON.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// respondError applies the content-negotiation policy for failures on
// form/page routes.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if wantsHTML(r) {
		renderStatus(w, r, status, "error.html", map[string]string{"Message": message})
		return
	}
	writeError(w, status, message)
}

// decodePayload reads the request body as JSON when the content type says
// so, and as an HTML form otherwise. The API write routes accept both.
func decodePayload(r *http.Request, dst *profilePayload) error {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(dst)
	}

	if err := r.ParseForm(); err != nil {
		return err
	}
	dst.Username = r.PostFormValue("username")
	dst.Email = r.PostFormValue("email")
	dst.PhoneNumber = r.PostFormValue("phoneNumber")
	dst.Photo = r.PostFormValue("photo")
	return nil
}

type profilePayload struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Photo       string `json:"photo"`
}
