// Package store is the record store backing the API: users, announcements
// and donations in PostgreSQL.
package store

import (
	"context"
	"errors"

	model "github.com/grishaff/LuminaShare/internal/models"
)

var (
	// ErrUnavailable wraps every failure of the database itself.
	ErrUnavailable = errors.New("record store unavailable")
	// ErrNotFound is returned when a single-row lookup matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidInput covers rows rejected by the database: unknown
	// references, malformed ids, missing required columns.
	ErrInvalidInput = errors.New("invalid record")
)

type DonationStore interface {
	ListDonations(ctx context.Context) ([]model.DonationRecord, error)
	ListDonationsByAnnouncement(ctx context.Context, announcementID string) ([]model.DonationRecord, error)
	CreateDonation(ctx context.Context, d *model.Donation) (*model.Donation, error)
}

type UserStore interface {
	ListUsers(ctx context.Context) ([]model.UserRecord, error)
	ListUsersByTgIDs(ctx context.Context, tgIDs []int64) ([]model.UserRecord, error)
	GetUserByTgID(ctx context.Context, tgID int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	UpsertUser(ctx context.Context, u *model.User) (*model.User, error)
	EnsureDonor(ctx context.Context, tgID int64) error
	UpdateUser(ctx context.Context, tgID int64, upd model.UserUpdate) (*model.User, error)
}

type AnnouncementStore interface {
	ListAnnouncements(ctx context.Context) ([]model.Announcement, error)
	ListAnnouncementsByRecipient(ctx context.Context, recipientID string, limit int) ([]model.Announcement, error)
	CreateAnnouncement(ctx context.Context, a *model.Announcement) (*model.Announcement, error)
}

type Store interface {
	DonationStore
	UserStore
	AnnouncementStore
	Ping(ctx context.Context) error
}
