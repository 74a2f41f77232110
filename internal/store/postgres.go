package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/scanner"
	"github.com/grishaff/LuminaShare/internal/utils"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Postgres implements Store on a sqlx handle.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return wrapErr("ping", err)
	}
	return nil
}

// =============================================================================
// Donations
// =============================================================================

func (p *Postgres) ListDonations(ctx context.Context) ([]model.DonationRecord, error) {
	return p.queryDonationRecords(ctx, "list donations",
		`SELECT `+scanner.DonationRecordColumns+` FROM donations`)
}

func (p *Postgres) ListDonationsByAnnouncement(ctx context.Context, announcementID string) ([]model.DonationRecord, error) {
	return p.queryDonationRecords(ctx, "list announcement donations",
		`SELECT `+scanner.DonationRecordColumns+` FROM donations WHERE announcement_id = $1`,
		announcementID)
}

func (p *Postgres) queryDonationRecords(ctx context.Context, op, query string, args ...interface{}) ([]model.DonationRecord, error) {
	rows, err := p.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	records := []model.DonationRecord{}
	for rows.Next() {
		r, err := scanner.ScanDonationRecord(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return records, nil
}

// CreateDonation inserts d with a fresh id when d.ID is empty.
func (p *Postgres) CreateDonation(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	id := d.ID
	if id == "" {
		id = uuid.NewString()
	}

	row := p.db.QueryRowxContext(ctx,
		`INSERT INTO donations (id, announcement_id, donor_tg_id, amount_ton, amount_stars, tx_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+scanner.DonationColumns,
		id, d.AnnouncementID, d.DonorTgID, d.AmountTon, d.AmountStars, d.TxHash,
	)
	created, err := scanner.ScanDonation(row)
	if err != nil {
		return nil, wrapErr("create donation", err)
	}
	return created, nil
}

// =============================================================================
// Users
// =============================================================================

func (p *Postgres) ListUsers(ctx context.Context) ([]model.UserRecord, error) {
	return p.queryUserRecords(ctx, "list users",
		`SELECT `+scanner.UserRecordColumns+` FROM users`)
}

func (p *Postgres) ListUsersByTgIDs(ctx context.Context, tgIDs []int64) ([]model.UserRecord, error) {
	if len(tgIDs) == 0 {
		return []model.UserRecord{}, nil
	}
	return p.queryUserRecords(ctx, "list users by tg id",
		`SELECT `+scanner.UserRecordColumns+` FROM users WHERE tg_id = ANY($1::bigint[])`,
		pq.Array(tgIDs))
}

func (p *Postgres) queryUserRecords(ctx context.Context, op, query string, args ...interface{}) ([]model.UserRecord, error) {
	rows, err := p.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	records := []model.UserRecord{}
	for rows.Next() {
		r, err := scanner.ScanUserRecord(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return records, nil
}

func (p *Postgres) GetUserByTgID(ctx context.Context, tgID int64) (*model.User, error) {
	return p.getUser(ctx, "get user by tg id", `tg_id = $1`, tgID)
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return p.getUser(ctx, "get user by username", `username = $1`, username)
}

func (p *Postgres) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	return p.getUser(ctx, "get user by id", `id = $1`, id)
}

func (p *Postgres) getUser(ctx context.Context, op, where string, arg interface{}) (*model.User, error) {
	row := p.db.QueryRowxContext(ctx,
		`SELECT `+scanner.UserColumns+` FROM users WHERE `+where+` LIMIT 1`, arg)
	u, err := scanner.ScanUser(row)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return u, nil
}

// UpsertUser creates the user or updates it in place, keyed on tg_id.
// Optional fields left empty keep their stored value.
func (p *Postgres) UpsertUser(ctx context.Context, u *model.User) (*model.User, error) {
	row := p.db.QueryRowxContext(ctx,
		`INSERT INTO users (tg_id, role, display_name, avatar_url, bio, wallet_address)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (tg_id) DO UPDATE SET
			role = EXCLUDED.role,
			display_name = EXCLUDED.display_name,
			avatar_url = COALESCE(EXCLUDED.avatar_url, users.avatar_url),
			bio = COALESCE(EXCLUDED.bio, users.bio),
			wallet_address = COALESCE(EXCLUDED.wallet_address, users.wallet_address)
		 RETURNING `+scanner.UserColumns,
		u.TgID, u.Role, u.DisplayName,
		utils.StringToNull(u.AvatarURL), utils.StringToNull(u.Bio), utils.StringToNull(u.WalletAddress),
	)
	saved, err := scanner.ScanUser(row)
	if err != nil {
		return nil, wrapErr("upsert user", err)
	}
	return saved, nil
}

// EnsureDonor creates a placeholder donor profile; an existing user is left untouched.
func (p *Postgres) EnsureDonor(ctx context.Context, tgID int64) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO users (tg_id, role, display_name) VALUES ($1, 'donor', $2)
		 ON CONFLICT (tg_id) DO NOTHING`,
		tgID, fmt.Sprintf("tg%d", tgID),
	)
	if err != nil {
		return wrapErr("ensure donor", err)
	}
	return nil
}

func (p *Postgres) UpdateUser(ctx context.Context, tgID int64, upd model.UserUpdate) (*model.User, error) {
	if upd.Empty() {
		return nil, fmt.Errorf("update user: %w: no fields to update", ErrInvalidInput)
	}

	var sets []string
	var args []interface{}
	add := func(column string, v *string) {
		if v == nil {
			return
		}
		args = append(args, utils.PointerToNull(v))
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("display_name", upd.DisplayName)
	add("bio", upd.Bio)
	add("wallet_address", upd.WalletAddress)
	args = append(args, tgID)

	row := p.db.QueryRowxContext(ctx,
		fmt.Sprintf(`UPDATE users SET %s WHERE tg_id = $%d RETURNING %s`,
			strings.Join(sets, ", "), len(args), scanner.UserColumns),
		args...,
	)
	u, err := scanner.ScanUser(row)
	if err != nil {
		return nil, wrapErr("update user", err)
	}
	return u, nil
}

// =============================================================================
// Announcements
// =============================================================================

func (p *Postgres) ListAnnouncements(ctx context.Context) ([]model.Announcement, error) {
	return p.queryAnnouncements(ctx, "list announcements",
		`SELECT `+scanner.AnnouncementColumns+` FROM announcements ORDER BY created_at DESC`)
}

func (p *Postgres) ListAnnouncementsByRecipient(ctx context.Context, recipientID string, limit int) ([]model.Announcement, error) {
	return p.queryAnnouncements(ctx, "list recipient announcements",
		`SELECT `+scanner.AnnouncementColumns+` FROM announcements
		 WHERE recipient_id = $1 ORDER BY created_at DESC LIMIT $2`,
		recipientID, limit)
}

func (p *Postgres) queryAnnouncements(ctx context.Context, op, query string, args ...interface{}) ([]model.Announcement, error) {
	rows, err := p.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	defer rows.Close()

	announcements := []model.Announcement{}
	for rows.Next() {
		a, err := scanner.ScanAnnouncement(rows)
		if err != nil {
			return nil, wrapErr(op, err)
		}
		announcements = append(announcements, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	return announcements, nil
}

func (p *Postgres) CreateAnnouncement(ctx context.Context, a *model.Announcement) (*model.Announcement, error) {
	row := p.db.QueryRowxContext(ctx,
		`INSERT INTO announcements (title, description, image_url, recipient_wallet, recipient_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+scanner.AnnouncementColumns,
		a.Title, utils.StringToNull(a.Description), a.ImageURL, a.RecipientWallet, utils.PointerToNull(a.RecipientID),
	)
	created, err := scanner.ScanAnnouncement(row)
	if err != nil {
		return nil, wrapErr("create announcement", err)
	}
	return created, nil
}
