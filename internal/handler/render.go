package handler

import (
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/you/login-tut/internal/observability"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// render writes the named view with status 200.
func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	renderStatus(w, r, http.StatusOK, name, data)
}

func renderStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		observability.GetLogger(r.Context()).Error("template render failed",
			zap.String("template", name), zap.Error(err))
	}
}

// renderError shows the generic error view. Underlying causes are logged by
// the caller, never shown to the client.
func renderError(w http.ResponseWriter, r *http.Request, message string) {
	renderStatus(w, r, http.StatusInternalServerError, "error.html", map[string]string{"Message": message})
}
