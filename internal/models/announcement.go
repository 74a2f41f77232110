package model

import (
	"time"
)

// Announcement est une demande d'aide publiée par un utilisateur
type Announcement struct {
	ID              string    `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description,omitempty" db:"description"`
	ImageURL        string    `json:"image_url" db:"image_url"`
	RecipientWallet string    `json:"recipient_wallet" db:"recipient_wallet"`
	RecipientID     *string   `json:"recipient_id,omitempty" db:"recipient_id"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
