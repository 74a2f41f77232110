package handler

import (
	"errors"
	"net/http"

	"github.com/grishaff/LuminaShare/internal/config"
	"github.com/grishaff/LuminaShare/internal/ranking"
	"github.com/grishaff/LuminaShare/internal/services"
	"github.com/grishaff/LuminaShare/internal/store"
	"github.com/grishaff/LuminaShare/internal/utils"
)

// Handler regroupe les dépendances des routes HTTP
type Handler struct {
	Store          store.Store
	Images         services.ImageStorage
	Ranking        ranking.Aggregator
	RankingLimit   int
	UploadMaxBytes int64
}

func New(st store.Store, images services.ImageStorage, cfg *config.Config) *Handler {
	return &Handler{
		Store:          st,
		Images:         images,
		Ranking:        ranking.Aggregator{AnonymousName: cfg.RankingAnonymousName},
		RankingLimit:   cfg.RankingLimit,
		UploadMaxBytes: cfg.UploadMaxBytes,
	}
}

// HealthCheck vérifie que le store répond
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Ping(r.Context()); err != nil {
		utils.Error(w, http.StatusServiceUnavailable, "database unavailable", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// storeError traduit une erreur du store en statut HTTP
func storeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		utils.Error(w, http.StatusNotFound, msg, err)
	case errors.Is(err, store.ErrInvalidInput):
		utils.Error(w, http.StatusBadRequest, msg, err)
	default:
		utils.Error(w, http.StatusInternalServerError, msg, err)
	}
}
