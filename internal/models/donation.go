package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation est un don enregistré, en TON ou en Stars
type Donation struct {
	ID             string              `json:"id" db:"id"`
	AnnouncementID string              `json:"announcement_id" db:"announcement_id"`
	DonorTgID      int64               `json:"donor_tg_id" db:"donor_tg_id"`
	AmountTon      decimal.NullDecimal `json:"amount_ton" db:"amount_ton"`
	AmountStars    decimal.NullDecimal `json:"amount_stars" db:"amount_stars"`
	TxHash         string              `json:"tx_hash" db:"tx_hash"`
	CreatedAt      time.Time           `json:"created_at" db:"created_at"`
}

// DonationRecord est une ligne de don brute, telle que lue dans le store.
// Les montants restent textuels: ils sont normalisés par le classement.
type DonationRecord struct {
	DonorID         string
	AmountPrimary   *string
	AmountSecondary *string
}
