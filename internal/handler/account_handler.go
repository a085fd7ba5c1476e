package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/you/login-tut/internal/model"
	"github.com/you/login-tut/internal/observability"
	"github.com/you/login-tut/internal/service"
)

// AccountHandler exposes the signup and login pages and their form posts.
type AccountHandler struct {
	svc *service.AccountService
}

func NewAccountHandler(s *service.AccountService) *AccountHandler {
	return &AccountHandler{svc: s}
}

type loginView struct{ Error string }

type signupView struct{ Error, Uname string }

// LoginPage renders the login view.
func (h *AccountHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", loginView{})
}

// SignupPage renders the signup view.
func (h *AccountHandler) SignupPage(w http.ResponseWriter, r *http.Request) {
	render(w, r, "signup.html", signupView{})
}

// Signup creates a credential record and redirects to the login page. A
// taken username re-renders the signup view with the entered name preserved.
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	uname := r.PostFormValue("uname")
	password := r.PostFormValue("password")
	if uname == "" || password == "" {
		renderStatus(w, r, http.StatusBadRequest, "signup.html", signupView{
			Error: "Username and password are required.",
			Uname: uname,
		})
		return
	}

	err := h.svc.Signup(r.Context(), uname, password)
	switch {
	case errors.Is(err, model.ErrUserExists):
		render(w, r, "signup.html", signupView{
			Error: "User already exists. Please choose a different username.",
			Uname: uname,
		})
	case err != nil:
		observability.GetLogger(r.Context()).Error("signup failed", zap.Error(err))
		renderError(w, r, "An error occurred during registration. Please try again later.")
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Login verifies the password and renders the home view on a match. Unknown
// users and wrong passwords re-render the login view with a message.
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	err := h.svc.Login(r.Context(), username, password)
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		render(w, r, "login.html", loginView{Error: "User not found."})
	case errors.Is(err, model.ErrWrongPassword):
		render(w, r, "login.html", loginView{Error: "Wrong password"})
	case err != nil:
		observability.GetLogger(r.Context()).Error("login failed", zap.Error(err))
		renderError(w, r, "An error occurred during login.")
	default:
		render(w, r, "home.html", nil)
	}
}
