package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/you/login-tut/internal/middleware"
	"github.com/you/login-tut/internal/observability"
	"github.com/you/login-tut/internal/service"
	"github.com/you/login-tut/internal/storage"
)

// NewRouter builds the HTTP router with all account, profile and upload
// routes. One canonical handler per path.
func NewRouter(accounts *service.AccountService, profiles *service.ProfileService, uploads *storage.UploadStore, serviceName string) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(observability.MetricsMiddleware(serviceName))

	ah := NewAccountHandler(accounts)
	ph := NewProfileHandler(profiles, uploads)
	uh := NewUploadHandler(uploads)

	// Account routes
	r.Get("/", ah.LoginPage)
	r.Get("/signup", ah.SignupPage)
	r.Post("/signup", ah.Signup)
	r.Post("/login", ah.Login)

	// Profile routes
	r.Get("/profile", ph.View)
	r.Get("/profile/edit", ph.EditPage)
	r.Post("/profile", ph.SaveForm)
	r.Post("/profile/data", ph.SaveData)
	r.Post("/profile/save", ph.UpdateProfile)
	r.Post("/saveProfile", ph.SaveProfile)

	// Uploads
	r.Post("/upload", uh.Upload)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploads.Dir))))

	return r
}
