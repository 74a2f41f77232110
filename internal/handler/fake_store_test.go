package handler

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/store"
)

// fakeStore garde tout en mémoire; les champs err* forcent une erreur
type fakeStore struct {
	mu            sync.Mutex
	donations     []model.Donation
	records       []model.DonationRecord
	users         []model.User
	announcements []model.Announcement

	errDonations error
	errUsers     error
	errCreate    error
	errPing      error
}

var _ store.Store = (*fakeStore)(nil)

func (f *fakeStore) Ping(context.Context) error { return f.errPing }

func (f *fakeStore) ListDonations(context.Context) ([]model.DonationRecord, error) {
	if f.errDonations != nil {
		return nil, f.errDonations
	}
	return f.records, nil
}

func (f *fakeStore) ListDonationsByAnnouncement(_ context.Context, announcementID string) ([]model.DonationRecord, error) {
	if f.errDonations != nil {
		return nil, f.errDonations
	}
	out := []model.DonationRecord{}
	for _, d := range f.donations {
		if d.AnnouncementID != announcementID {
			continue
		}
		r := model.DonationRecord{DonorID: strconv.FormatInt(d.DonorTgID, 10)}
		if d.AmountTon.Valid {
			s := d.AmountTon.Decimal.String()
			r.AmountPrimary = &s
		}
		if d.AmountStars.Valid {
			s := d.AmountStars.Decimal.String()
			r.AmountSecondary = &s
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeStore) CreateDonation(_ context.Context, d *model.Donation) (*model.Donation, error) {
	if f.errCreate != nil {
		return nil, f.errCreate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	saved := *d
	saved.ID = fmt.Sprintf("d-%d", len(f.donations)+1)
	saved.CreatedAt = time.Now()
	f.donations = append(f.donations, saved)
	return &saved, nil
}

func (f *fakeStore) ListUsers(context.Context) ([]model.UserRecord, error) {
	if f.errUsers != nil {
		return nil, f.errUsers
	}
	return f.userRecords(nil), nil
}

func (f *fakeStore) ListUsersByTgIDs(_ context.Context, tgIDs []int64) ([]model.UserRecord, error) {
	if f.errUsers != nil {
		return nil, f.errUsers
	}
	want := map[int64]bool{}
	for _, id := range tgIDs {
		want[id] = true
	}
	return f.userRecords(want), nil
}

func (f *fakeStore) userRecords(want map[int64]bool) []model.UserRecord {
	out := []model.UserRecord{}
	for _, u := range f.users {
		if want != nil && !want[u.TgID] {
			continue
		}
		out = append(out, model.UserRecord{
			DonorID:     strconv.FormatInt(u.TgID, 10),
			DisplayName: u.DisplayName,
			Username:    u.Username,
		})
	}
	return out
}

func (f *fakeStore) findUser(match func(model.User) bool) (*model.User, error) {
	if f.errUsers != nil {
		return nil, f.errUsers
	}
	for _, u := range f.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user: %w", store.ErrNotFound)
}

func (f *fakeStore) GetUserByTgID(_ context.Context, tgID int64) (*model.User, error) {
	return f.findUser(func(u model.User) bool { return u.TgID == tgID })
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return f.findUser(func(u model.User) bool { return u.Username == username })
}

func (f *fakeStore) GetUserByID(_ context.Context, id string) (*model.User, error) {
	return f.findUser(func(u model.User) bool { return u.ID == id })
}

func (f *fakeStore) UpsertUser(_ context.Context, u *model.User) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].TgID == u.TgID {
			f.users[i].Role = u.Role
			f.users[i].DisplayName = u.DisplayName
			saved := f.users[i]
			return &saved, nil
		}
	}
	saved := *u
	saved.ID = fmt.Sprintf("u-%d", len(f.users)+1)
	f.users = append(f.users, saved)
	return &saved, nil
}

func (f *fakeStore) EnsureDonor(_ context.Context, tgID int64) error {
	if f.errUsers != nil {
		return f.errUsers
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.TgID == tgID {
			return nil
		}
	}
	f.users = append(f.users, model.User{
		ID:          fmt.Sprintf("u-%d", len(f.users)+1),
		TgID:        tgID,
		Role:        "donor",
		DisplayName: fmt.Sprintf("tg%d", tgID),
	})
	return nil
}

func (f *fakeStore) UpdateUser(_ context.Context, tgID int64, upd model.UserUpdate) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].TgID != tgID {
			continue
		}
		if upd.DisplayName != nil {
			f.users[i].DisplayName = *upd.DisplayName
		}
		if upd.Bio != nil {
			f.users[i].Bio = *upd.Bio
		}
		if upd.WalletAddress != nil {
			f.users[i].WalletAddress = *upd.WalletAddress
		}
		saved := f.users[i]
		return &saved, nil
	}
	return nil, fmt.Errorf("update user: %w", store.ErrNotFound)
}

func (f *fakeStore) ListAnnouncements(context.Context) ([]model.Announcement, error) {
	return f.announcements, nil
}

func (f *fakeStore) ListAnnouncementsByRecipient(_ context.Context, recipientID string, limit int) ([]model.Announcement, error) {
	out := []model.Announcement{}
	for _, a := range f.announcements {
		if a.RecipientID != nil && *a.RecipientID == recipientID && len(out) < limit {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateAnnouncement(_ context.Context, a *model.Announcement) (*model.Announcement, error) {
	if f.errCreate != nil {
		return nil, f.errCreate
	}
	saved := *a
	saved.ID = fmt.Sprintf("a-%d", len(f.announcements)+1)
	saved.CreatedAt = time.Now()
	f.announcements = append(f.announcements, saved)
	return &saved, nil
}

// fakeImages enregistre le dernier upload
type fakeImages struct {
	contentType string
	body        []byte
	err         error
}

func (f *fakeImages) UploadImage(_ context.Context, file io.Reader, contentType string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	b, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.body = b
	f.contentType = contentType
	return "https://cdn.example/announcements/img.png", nil
}
