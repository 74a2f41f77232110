package handler

import (
	"errors"
	"net/http"

	"github.com/grishaff/LuminaShare/internal/services"
	"github.com/grishaff/LuminaShare/internal/utils"
)

const multipartOverhead = 64 << 10

// UploadImage reçoit une image (champ "image") et la pousse vers le stockage objet
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.MethodNotAllowed(w, http.MethodPost)
		return
	}

	// Marge pour les en-têtes multipart, la taille du fichier est vérifiée plus bas
	r.Body = http.MaxBytesReader(w, r.Body, h.UploadMaxBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.UploadMaxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			utils.Error(w, http.StatusRequestEntityTooLarge, "image is too large")
			return
		}
		utils.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "No image field provided")
		return
	}
	defer file.Close()

	if header.Size > h.UploadMaxBytes {
		utils.Error(w, http.StatusRequestEntityTooLarge, "image is too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	if !services.IsAllowedImage(contentType) {
		utils.Error(w, http.StatusBadRequest, "only JPEG, PNG, WebP and GIF images are allowed")
		return
	}

	url, err := h.Images.UploadImage(r.Context(), file, contentType)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"ok": true, "url": url})
}
