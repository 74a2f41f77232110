package model

import (
	"time"
)

// User est un utilisateur Telegram (demandeur ou donateur)
type User struct {
	ID            string    `json:"id" db:"id"`
	TgID          int64     `json:"tg_id" db:"tg_id"`
	Role          string    `json:"role" db:"role"` // user, donor
	DisplayName   string    `json:"display_name" db:"display_name"`
	Username      string    `json:"username,omitempty" db:"username"`
	AvatarURL     string    `json:"avatar_url,omitempty" db:"avatar_url"`
	Bio           string    `json:"bio,omitempty" db:"bio"`
	WalletAddress string    `json:"wallet_address,omitempty" db:"wallet_address"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// UserUpdate contient uniquement les champs modifiables d'un profil
type UserUpdate struct {
	DisplayName   *string
	Bio           *string
	WalletAddress *string
}

// Empty indique qu'aucun champ n'est à mettre à jour
func (u UserUpdate) Empty() bool {
	return u.DisplayName == nil && u.Bio == nil && u.WalletAddress == nil
}

// UserRecord est la vue minimale d'un utilisateur utilisée par le classement
type UserRecord struct {
	DonorID     string
	DisplayName string
	Username    string
}

// UserProfileWithRank enrichit un profil avec ses statistiques de dons
type UserProfileWithRank struct {
	User
	TotalAmountStars float64 `json:"total_amount_stars"`
	Rank             int     `json:"rank"`
}
