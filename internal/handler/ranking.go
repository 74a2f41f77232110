package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/ranking"
	"github.com/grishaff/LuminaShare/internal/utils"
	"golang.org/x/sync/errgroup"
)

// GetRanking récupère le classement général des donateurs
func (h *Handler) GetRanking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.MethodNotAllowed(w, http.MethodGet)
		return
	}

	// Les deux lectures sont indépendantes: un léger décalage entre elles est acceptable
	var donations []model.DonationRecord
	var users []model.UserRecord
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		donations, err = h.Store.ListDonations(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = h.Store.ListUsers(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load ranking data", err)
		return
	}

	entries, err := h.Ranking.Compute(donations, users, h.RankingLimit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute ranking", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"ranking": entries})
}

// GetAnnouncementRanking récupère le classement des donateurs d'une annonce
func (h *Handler) GetAnnouncementRanking(w http.ResponseWriter, r *http.Request) {
	announcementID := mux.Vars(r)["id"]

	limit, err := utils.QueryInt(r, "limit", h.RankingLimit)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	donations, err := h.Store.ListDonationsByAnnouncement(ctx, announcementID)
	if err != nil {
		storeError(w, "could not load donations", err)
		return
	}

	users, err := h.Store.ListUsersByTgIDs(ctx, utils.DonorTgIDs(donations))
	if err != nil {
		storeError(w, "could not load donors", err)
		return
	}

	entries, err := h.Ranking.Compute(donations, users, limit)
	if errors.Is(err, ranking.ErrInvalidArgument) {
		utils.Error(w, http.StatusBadRequest, "limit must be non-negative")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute ranking", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"announcementId": announcementID,
		"ranking":        entries,
	})
}
