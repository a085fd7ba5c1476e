package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/you/login-tut/internal/observability"
	"github.com/you/login-tut/internal/storage"
)

// UploadHandler exposes the standalone file-upload route.
type UploadHandler struct {
	uploads *storage.UploadStore
}

func NewUploadHandler(u *storage.UploadStore) *UploadHandler {
	return &UploadHandler{uploads: u}
}

// Upload stores a single file from the "myFile" field. On this route a
// missing file is a client error, unlike the profile form.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("myFile")
	if errors.Is(err, http.ErrMissingFile) {
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "No file uploaded.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	path, err := h.uploads.Save(header.Filename, file)
	if err != nil {
		observability.GetLogger(r.Context()).Error("upload save failed", zap.Error(err))
		http.Error(w, "An error occurred while saving the file.", http.StatusInternalServerError)
		return
	}

	observability.GetLogger(r.Context()).Info("file_uploaded",
		zap.String("original", header.Filename), zap.String("stored", path))

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("File uploaded successfully!"))
}
