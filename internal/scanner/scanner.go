package scanner

import (
	"database/sql"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/utils"
)

// Row est tout ce qui sait scanner une ligne SQL (*sql.Row, *sql.Rows, *sqlx.Row...)
type Row interface {
	Scan(dest ...interface{}) error
}

// UserColumns doit rester aligné avec ScanUser
const UserColumns = `id, tg_id, role, display_name, username, avatar_url, bio, wallet_address, created_at`

// ScanUser scanne une ligne SQL vers un User
// Utilise les types sql.Null* et les convertit automatiquement
func ScanUser(row Row) (*model.User, error) {
	var u model.User
	var displayName, username, avatar, bio, wallet sql.NullString

	err := row.Scan(
		&u.ID, &u.TgID, &u.Role, &displayName, &username,
		&avatar, &bio, &wallet, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.DisplayName = utils.NullStringToString(displayName)
	u.Username = utils.NullStringToString(username)
	u.AvatarURL = utils.NullStringToString(avatar)
	u.Bio = utils.NullStringToString(bio)
	u.WalletAddress = utils.NullStringToString(wallet)

	return &u, nil
}

// UserRecordColumns doit rester aligné avec ScanUserRecord
const UserRecordColumns = `tg_id::text, display_name, username`

// ScanUserRecord scanne la vue minimale utilisée par le classement
func ScanUserRecord(row Row) (model.UserRecord, error) {
	var r model.UserRecord
	var displayName, username sql.NullString

	if err := row.Scan(&r.DonorID, &displayName, &username); err != nil {
		return r, err
	}

	r.DisplayName = utils.NullStringToString(displayName)
	r.Username = utils.NullStringToString(username)
	return r, nil
}

// DonationRecordColumns doit rester aligné avec ScanDonationRecord.
// Les montants sont lus en texte, la normalisation se fait dans le classement.
const DonationRecordColumns = `donor_tg_id::text, amount_ton::text, amount_stars::text`

// ScanDonationRecord scanne une ligne de don brute
func ScanDonationRecord(row Row) (model.DonationRecord, error) {
	var r model.DonationRecord
	var ton, stars sql.NullString

	if err := row.Scan(&r.DonorID, &ton, &stars); err != nil {
		return r, err
	}

	r.AmountPrimary = utils.NullStringToPointer(ton)
	r.AmountSecondary = utils.NullStringToPointer(stars)
	return r, nil
}

// DonationColumns doit rester aligné avec ScanDonation
const DonationColumns = `id, announcement_id, donor_tg_id, amount_ton, amount_stars, tx_hash, created_at`

// ScanDonation scanne une ligne SQL vers un Donation
func ScanDonation(row Row) (*model.Donation, error) {
	var d model.Donation

	err := row.Scan(
		&d.ID, &d.AnnouncementID, &d.DonorTgID,
		&d.AmountTon, &d.AmountStars, &d.TxHash, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &d, nil
}

// AnnouncementColumns doit rester aligné avec ScanAnnouncement
const AnnouncementColumns = `id, title, description, image_url, recipient_wallet, recipient_id, created_at`

// ScanAnnouncement scanne une ligne SQL vers un Announcement
func ScanAnnouncement(row Row) (*model.Announcement, error) {
	var a model.Announcement
	var description, recipientID sql.NullString

	err := row.Scan(
		&a.ID, &a.Title, &description, &a.ImageURL,
		&a.RecipientWallet, &recipientID, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Description = utils.NullStringToString(description)
	a.RecipientID = utils.NullStringToPointer(recipientID)

	return &a, nil
}
