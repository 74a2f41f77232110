package handler

import (
	"net/http"
	"strconv"
	"strings"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/ranking"
	"github.com/grishaff/LuminaShare/internal/utils"
)

const profileAnnouncementsLimit = 10

type upsertUserRequest struct {
	TgID          utils.FlexibleString `json:"tgId"`
	Role          string               `json:"role"`
	DisplayName   string               `json:"displayName"`
	AvatarURL     string               `json:"avatarUrl"`
	Bio           string               `json:"bio"`
	WalletAddress string               `json:"walletAddress"`
}

type updateUserRequest struct {
	TgID          utils.FlexibleString `json:"tgId"`
	DisplayName   *string              `json:"displayName"`
	Bio           *string              `json:"bio"`
	WalletAddress *string              `json:"walletAddress"`
}

// Users gère GET (profil), POST (création/upsert) et PUT (mise à jour) sur /users
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getUser(w, r)
	case http.MethodPost:
		h.upsertUser(w, r)
	case http.MethodPut:
		h.updateUser(w, r)
	default:
		utils.MethodNotAllowed(w, http.MethodGet, http.MethodPost, http.MethodPut)
	}
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("tgId")
	if raw == "" {
		utils.Error(w, http.StatusBadRequest, "tgId query param required")
		return
	}
	tgID, err := utils.ParseTgID(raw)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.GetUserByTgID(r.Context(), tgID)
	if err != nil {
		storeError(w, "user not found", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"profile": user})
}

func (h *Handler) upsertUser(w http.ResponseWriter, r *http.Request) {
	var req upsertUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.DisplayName = strings.TrimSpace(req.DisplayName)
	if req.TgID == "" || req.DisplayName == "" {
		utils.Error(w, http.StatusBadRequest, "tgId and displayName are required")
		return
	}
	tgID, err := utils.ParseTgID(string(req.TgID))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = "user"
	}

	user, err := h.Store.UpsertUser(r.Context(), &model.User{
		TgID:          tgID,
		Role:          role,
		DisplayName:   req.DisplayName,
		AvatarURL:     req.AvatarURL,
		Bio:           req.Bio,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		storeError(w, "could not save user", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TgID == "" {
		utils.Error(w, http.StatusBadRequest, "tgId is required")
		return
	}
	tgID, err := utils.ParseTgID(string(req.TgID))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	upd := model.UserUpdate{Bio: req.Bio, WalletAddress: req.WalletAddress}
	// Un nom vide n'efface pas le nom existant
	if req.DisplayName != nil && strings.TrimSpace(*req.DisplayName) != "" {
		name := strings.TrimSpace(*req.DisplayName)
		upd.DisplayName = &name
	}
	if upd.Empty() {
		utils.Error(w, http.StatusBadRequest, "No fields to update")
		return
	}

	user, err := h.Store.UpdateUser(r.Context(), tgID, upd)
	if err != nil {
		storeError(w, "could not update user", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// GetUserByUsername récupère un profil avec son total de Stars et son rang
func (h *Handler) GetUserByUsername(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.MethodNotAllowed(w, http.MethodGet)
		return
	}

	username := strings.TrimPrefix(strings.TrimSpace(r.URL.Query().Get("username")), "@")
	if username == "" {
		utils.Error(w, http.StatusBadRequest, "username query parameter is required")
		return
	}

	ctx := r.Context()
	user, err := h.Store.GetUserByUsername(ctx, username)
	if err != nil {
		storeError(w, "user not found", err)
		return
	}

	donations, err := h.Store.ListDonations(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load donations", err)
		return
	}
	users, err := h.Store.ListUsers(ctx)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load users", err)
		return
	}

	// Classement complet: chaque donateur a au moins un don
	entries, err := h.Ranking.Compute(donations, users, len(donations))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute ranking", err)
		return
	}

	profile := model.UserProfileWithRank{User: *user}
	donorID := strconv.FormatInt(user.TgID, 10)
	if rank, ok := ranking.RankOf(entries, donorID); ok {
		profile.Rank = rank
		profile.TotalAmountStars = entries[rank-1].TotalSecondary.InexactFloat64()
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// GetProfile récupère un profil par id et ses dernières annonces
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.MethodNotAllowed(w, http.MethodGet)
		return
	}

	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		utils.Error(w, http.StatusBadRequest, "id query parameter is required")
		return
	}

	ctx := r.Context()
	user, err := h.Store.GetUserByID(ctx, id)
	if err != nil {
		storeError(w, "user not found", err)
		return
	}

	announcements, err := h.Store.ListAnnouncementsByRecipient(ctx, user.ID, profileAnnouncementsLimit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load announcements", err)
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"profile":       user,
		"announcements": announcements,
	})
}
