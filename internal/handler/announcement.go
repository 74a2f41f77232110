package handler

import (
	"net/http"
	"strings"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/utils"
)

type createAnnouncementRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ImageURL        string  `json:"imageUrl"`
	RecipientWallet string  `json:"recipientWallet"`
	RecipientID     *string `json:"recipientId"`
}

// Announcements gère GET (liste) et POST (création) sur /announcements
func (h *Handler) Announcements(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listAnnouncements(w, r)
	case http.MethodPost:
		h.createAnnouncement(w, r)
	default:
		utils.MethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (h *Handler) listAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.Store.ListAnnouncements(r.Context())
	if err != nil {
		storeError(w, "could not list announcements", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"announcements": announcements})
}

func (h *Handler) createAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.RecipientWallet = strings.TrimSpace(req.RecipientWallet)
	if req.Title == "" || req.ImageURL == "" || req.RecipientWallet == "" {
		utils.Error(w, http.StatusBadRequest, "title, imageUrl and recipientWallet are required")
		return
	}

	announcement, err := h.Store.CreateAnnouncement(r.Context(), &model.Announcement{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		RecipientWallet: req.RecipientWallet,
		RecipientID:     req.RecipientID,
	})
	if err != nil {
		storeError(w, "could not create announcement", err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{"announcement": announcement})
}
