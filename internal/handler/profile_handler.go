package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/you/login-tut/internal/model"
	"github.com/you/login-tut/internal/observability"
	"github.com/you/login-tut/internal/service"
	"github.com/you/login-tut/internal/storage"
)

// maxUploadSize bounds multipart request bodies (10 MiB).
const maxUploadSize = 10 << 20

// ProfileHandler exposes the profile pages and the three write pathways:
// upsert (form), strict create and update-existing-only (API).
type ProfileHandler struct {
	svc     *service.ProfileService
	uploads *storage.UploadStore
}

func NewProfileHandler(s *service.ProfileService, u *storage.UploadStore) *ProfileHandler {
	return &ProfileHandler{svc: s, uploads: u}
}

type profileView struct {
	Profile  *model.Profile
	Username string
}

// View renders the profile page. A username with no record gets an empty
// profile view, never an error.
func (h *ProfileHandler) View(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	p, err := h.svc.Get(r.Context(), username)
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		render(w, r, "profile.html", profileView{Username: username})
	case err != nil:
		observability.GetLogger(r.Context()).Error("profile fetch failed", zap.Error(err))
		renderError(w, r, "An error occurred while fetching profile.")
	default:
		render(w, r, "profile.html", profileView{Profile: p, Username: username})
	}
}

// EditPage renders the edit view for an existing profile.
func (h *ProfileHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	p, err := h.svc.Get(r.Context(), username)
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		renderStatus(w, r, http.StatusNotFound, "error.html", map[string]string{"Message": "Profile not found."})
	case err != nil:
		observability.GetLogger(r.Context()).Error("profile fetch failed", zap.Error(err))
		renderError(w, r, "An error occurred while fetching profile for editing.")
	default:
		render(w, r, "edit-profile.html", profileView{Profile: p})
	}
}

// SaveData upserts contact fields from a plain form post, leaving any stored
// photo untouched, then redirects to the profile view.
func (h *ProfileHandler) SaveData(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	username := r.PostFormValue("username")
	if username == "" {
		respondError(w, r, http.StatusBadRequest, "Username is required.")
		return
	}

	err := h.svc.Upsert(r.Context(), username, r.PostFormValue("email"), r.PostFormValue("phoneNumber"), "")
	if err != nil {
		observability.GetLogger(r.Context()).Error("profile upsert failed", zap.Error(err))
		respondError(w, r, http.StatusInternalServerError, "An error occurred while saving or updating the profile data.")
		return
	}

	redirectToProfile(w, r, username)
}

// SaveForm upserts a profile from a multipart form with an optional photo
// file. Absence of the file is not an error; the stored photo survives.
func (h *ProfileHandler) SaveForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	username := r.PostFormValue("username")
	if username == "" {
		respondError(w, r, http.StatusBadRequest, "Username is required.")
		return
	}

	var photo string
	file, header, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()
		photo, err = h.uploads.Save(header.Filename, file)
		if err != nil {
			observability.GetLogger(r.Context()).Error("photo save failed", zap.Error(err))
			respondError(w, r, http.StatusInternalServerError, "An error occurred while saving or updating the profile.")
			return
		}
	case errors.Is(err, http.ErrMissingFile):
		// no photo attached, keep whatever is stored
	default:
		respondError(w, r, http.StatusBadRequest, "Invalid file upload.")
		return
	}

	err = h.svc.Upsert(r.Context(), username, r.PostFormValue("email"), r.PostFormValue("phoneNumber"), photo)
	if err != nil {
		observability.GetLogger(r.Context()).Error("profile upsert failed", zap.Error(err))
		respondError(w, r, http.StatusInternalServerError, "An error occurred while saving or updating the profile.")
		return
	}

	redirectToProfile(w, r, username)
}

// SaveProfile is the strict-create API route: the first call for a username
// answers 201, every later one 409, regardless of field values.
func (h *ProfileHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req profilePayload
	if err := decodePayload(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		writeError(w, http.StatusBadRequest, "Username is required and cannot be empty.")
		return
	}

	err := h.svc.Create(r.Context(), &model.Profile{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Photo:       req.Photo,
	})
	switch {
	case errors.Is(err, model.ErrProfileExists):
		writeError(w, http.StatusConflict, "Username already exists. Please choose a different username.")
	case err != nil:
		observability.GetLogger(r.Context()).Error("profile create failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while saving the profile.")
	default:
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Profile saved successfully."})
	}
}

// UpdateProfile is the update-existing-only API route backing the edit view.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profilePayload
	if err := decodePayload(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if req.Username == "" {
		writeError(w, http.StatusBadRequest, "Username is required.")
		return
	}

	err := h.svc.Update(r.Context(), req.Username, req.Email, req.PhoneNumber, req.Photo)
	switch {
	case errors.Is(err, model.ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "Profile not found.")
	case err != nil:
		observability.GetLogger(r.Context()).Error("profile update failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while saving updated profile.")
	default:
		redirectToProfile(w, r, req.Username)
	}
}

func redirectToProfile(w http.ResponseWriter, r *http.Request, username string) {
	http.Redirect(w, r, "/profile?username="+url.QueryEscape(username), http.StatusSeeOther)
}
