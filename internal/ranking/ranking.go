// Package ranking builds the donor leaderboard from raw donation and user
// records. It performs no I/O: callers fetch both record sets and pass them in.
package ranking

import (
	"errors"
	"fmt"
	"sort"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultAnonymousName is shown for donors without a usable user profile.
const DefaultAnonymousName = "Anonymous"

// ErrInvalidArgument is returned for malformed calls, such as a negative limit.
var ErrInvalidArgument = errors.New("invalid argument")

// Aggregator computes leaderboards. The zero value uses DefaultAnonymousName.
type Aggregator struct {
	AnonymousName string
}

// ComputeLeaderboard is Aggregator{}.Compute.
func ComputeLeaderboard(donations []model.DonationRecord, users []model.UserRecord, limit int) ([]model.LeaderboardEntry, error) {
	return Aggregator{}.Compute(donations, users, limit)
}

// Compute groups donations by donor, sums both currencies, resolves display
// names and returns at most limit entries ordered by total Stars, then total
// TON, then donor id.
//
// Duplicate user ids resolve to the last record in users.
func (a Aggregator) Compute(donations []model.DonationRecord, users []model.UserRecord, limit int) ([]model.LeaderboardEntry, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit must be non-negative, got %d", ErrInvalidArgument, limit)
	}

	profiles := make(map[string]model.UserRecord, len(users))
	for _, u := range users {
		profiles[NormalizeDonorID(u.DonorID)] = u
	}

	totals := make(map[string]*model.LeaderboardEntry)
	for _, d := range donations {
		id := NormalizeDonorID(d.DonorID)
		entry, ok := totals[id]
		if !ok {
			entry = &model.LeaderboardEntry{
				DonorID:        id,
				TotalPrimary:   decimal.Zero,
				TotalSecondary: decimal.Zero,
			}
			totals[id] = entry
		}
		entry.TotalPrimary = entry.TotalPrimary.Add(ParseAmount(d.AmountPrimary))
		entry.TotalSecondary = entry.TotalSecondary.Add(ParseAmount(d.AmountSecondary))
		entry.DonationCount++
	}

	entries := make([]model.LeaderboardEntry, 0, len(totals))
	for id, entry := range totals {
		u, found := profiles[id]
		entry.DisplayName = a.displayName(u, found)
		if found {
			entry.Username = u.Username
		}
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// RankOf returns the 1-based position of donorID in entries.
func RankOf(entries []model.LeaderboardEntry, donorID string) (int, bool) {
	id := NormalizeDonorID(donorID)
	for i, e := range entries {
		if e.DonorID == id {
			return i + 1, true
		}
	}
	return 0, false
}

func (a Aggregator) displayName(u model.UserRecord, found bool) string {
	if found {
		if u.DisplayName != "" {
			return u.DisplayName
		}
		if u.Username != "" {
			return u.Username
		}
	}
	if a.AnonymousName != "" {
		return a.AnonymousName
	}
	return DefaultAnonymousName
}

func less(a, b model.LeaderboardEntry) bool {
	if c := a.TotalSecondary.Cmp(b.TotalSecondary); c != 0 {
		return c > 0
	}
	if c := a.TotalPrimary.Cmp(b.TotalPrimary); c != 0 {
		return c > 0
	}
	return compareDonorIDs(a.DonorID, b.DonorID) < 0
}
