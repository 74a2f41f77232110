package handler

import (
	"net/http"
	"strings"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/utils"
	"github.com/shopspring/decimal"
)

type donateRequest struct {
	AnnouncementID string               `json:"announcementId"`
	DonorTgID      utils.FlexibleString `json:"donorTgId"`
	AmountTon      utils.FlexibleString `json:"amountTon"`
	AmountStars    utils.FlexibleString `json:"amountStars"`
	TxHash         string               `json:"txHash"`
}

// Donate enregistre un don en Stars ou en TON.
// Si les deux montants sont fournis, seuls les Stars sont retenus.
func (h *Handler) Donate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.MethodNotAllowed(w, http.MethodPost)
		return
	}

	var req donateRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.AnnouncementID = strings.TrimSpace(req.AnnouncementID)
	req.TxHash = strings.TrimSpace(req.TxHash)
	if req.AnnouncementID == "" || req.DonorTgID == "" || (req.AmountStars == "" && req.AmountTon == "") || req.TxHash == "" {
		utils.Error(w, http.StatusBadRequest, "announcementId, donorTgId, amount (TON or Stars), txHash are required")
		return
	}

	donorTgID, err := utils.ParseTgID(string(req.DonorTgID))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	donation := &model.Donation{
		AnnouncementID: req.AnnouncementID,
		DonorTgID:      donorTgID,
		TxHash:         req.TxHash,
	}
	if req.AmountStars != "" {
		amount, ok := positiveAmount(req.AmountStars)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "amountStars must be a positive number")
			return
		}
		donation.AmountStars = decimal.NewNullDecimal(amount)
	} else {
		amount, ok := positiveAmount(req.AmountTon)
		if !ok {
			utils.Error(w, http.StatusBadRequest, "amountTon must be a positive number")
			return
		}
		donation.AmountTon = decimal.NewNullDecimal(amount)
	}

	ctx := r.Context()

	// Le donateur doit exister dans users pour apparaître avec un nom dans le classement
	if err := h.Store.EnsureDonor(ctx, donorTgID); err != nil {
		storeError(w, "could not register donor", err)
		return
	}

	created, err := h.Store.CreateDonation(ctx, donation)
	if err != nil {
		storeError(w, "could not record donation", err)
		return
	}

	utils.JSON(w, http.StatusCreated, map[string]interface{}{"donation": created})
}

func positiveAmount(raw utils.FlexibleString) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(string(raw))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
