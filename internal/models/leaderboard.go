package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LeaderboardEntry est une ligne du classement des donateurs
type LeaderboardEntry struct {
	DonorID        string          `json:"donorId"`
	DisplayName    string          `json:"displayName"`
	Username       string          `json:"username"`
	TotalPrimary   decimal.Decimal `json:"totalPrimary"`   // TON
	TotalSecondary decimal.Decimal `json:"totalSecondary"` // Stars
	DonationCount  int             `json:"donationCount"`
}

// MarshalJSON émet les totaux comme des nombres JSON et non des chaînes
func (e LeaderboardEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		DonorID        string      `json:"donorId"`
		DisplayName    string      `json:"displayName"`
		Username       string      `json:"username"`
		TotalPrimary   json.Number `json:"totalPrimary"`
		TotalSecondary json.Number `json:"totalSecondary"`
		DonationCount  int         `json:"donationCount"`
	}{
		DonorID:        e.DonorID,
		DisplayName:    e.DisplayName,
		Username:       e.Username,
		TotalPrimary:   json.Number(e.TotalPrimary.String()),
		TotalSecondary: json.Number(e.TotalSecondary.String()),
		DonationCount:  e.DonationCount,
	})
}
