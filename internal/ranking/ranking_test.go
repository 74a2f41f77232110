package ranking

import (
	"encoding/json"
	"fmt"
	"testing"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func stars(donor, amount string) model.DonationRecord {
	return model.DonationRecord{DonorID: donor, AmountSecondary: str(amount)}
}

func ton(donor, amount string) model.DonationRecord {
	return model.DonationRecord{DonorID: donor, AmountPrimary: str(amount)}
}

func TestComputeLeaderboard_StarsScenario(t *testing.T) {
	donations := []model.DonationRecord{
		stars("1", "100"),
		stars("1", "50"),
		stars("2", "200"),
	}
	users := []model.UserRecord{{DonorID: "1", Username: "alice"}}

	got, err := ComputeLeaderboard(donations, users, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2", got[0].DonorID)
	assert.Equal(t, "Anonymous", got[0].DisplayName)
	assert.Equal(t, "", got[0].Username)
	assert.Equal(t, "200", got[0].TotalSecondary.String())
	assert.Equal(t, 1, got[0].DonationCount)

	assert.Equal(t, "1", got[1].DonorID)
	assert.Equal(t, "alice", got[1].DisplayName)
	assert.Equal(t, "alice", got[1].Username)
	assert.Equal(t, "150", got[1].TotalSecondary.String())
	assert.Equal(t, 2, got[1].DonationCount)

	top, err := ComputeLeaderboard(donations, users, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "2", top[0].DonorID)
}

func TestComputeLeaderboard_MalformedAmountKeepsDonor(t *testing.T) {
	got, err := ComputeLeaderboard([]model.DonationRecord{ton("3", "abc")}, nil, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "3", got[0].DonorID)
	assert.True(t, got[0].TotalPrimary.IsZero())
	assert.True(t, got[0].TotalSecondary.IsZero())
	assert.Equal(t, 1, got[0].DonationCount)
}

func TestComputeLeaderboard_SumsAndCounts(t *testing.T) {
	donations := []model.DonationRecord{
		{DonorID: "7", AmountPrimary: str("1.25"), AmountSecondary: str("10")},
		ton("7", "0.75"),
		ton("7", "-3"),
		stars("7", "NaN"),
		{DonorID: "7"},
		ton("8", "0.1"),
		ton("8", "0.2"),
	}

	got, err := ComputeLeaderboard(donations, nil, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[string]model.LeaderboardEntry{}
	for _, e := range got {
		byID[e.DonorID] = e
	}
	assert.Equal(t, "2", byID["7"].TotalPrimary.String())
	assert.Equal(t, "10", byID["7"].TotalSecondary.String())
	assert.Equal(t, 5, byID["7"].DonationCount)

	assert.Equal(t, "0.3", byID["8"].TotalPrimary.String())
	assert.Equal(t, 2, byID["8"].DonationCount)
}

func TestComputeLeaderboard_OutOfRangeAmountsCountAsZero(t *testing.T) {
	donations := []model.DonationRecord{
		ton("1", "1e-300000000"),
		ton("1", "1"),
		stars("1", "1e300000000"),
		stars("1", "4"),
	}

	got, err := ComputeLeaderboard(donations, nil, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].TotalPrimary.String())
	assert.Equal(t, "4", got[0].TotalSecondary.String())
	assert.Equal(t, 4, got[0].DonationCount)
}

func TestComputeLeaderboard_DuplicateRowsAreSummed(t *testing.T) {
	row := stars("5", "30")
	got, err := ComputeLeaderboard([]model.DonationRecord{row, row}, nil, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "60", got[0].TotalSecondary.String())
	assert.Equal(t, 2, got[0].DonationCount)
}

func TestComputeLeaderboard_OnlyDonorsAppear(t *testing.T) {
	donations := []model.DonationRecord{ton("1", "1"), stars("2", "3"), ton("1", "2")}
	users := []model.UserRecord{
		{DonorID: "1", DisplayName: "Ann"},
		{DonorID: "99", DisplayName: "Never donated"},
	}

	got, err := ComputeLeaderboard(donations, users, 100)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.DonorID)
	}
	assert.ElementsMatch(t, []string{"1", "2"}, ids)
}

func TestComputeLeaderboard_Ordering(t *testing.T) {
	donations := []model.DonationRecord{
		ton("30", "5"),
		ton("4", "5"),
		{DonorID: "10", AmountPrimary: str("1"), AmountSecondary: str("50")},
		{DonorID: "11", AmountPrimary: str("2"), AmountSecondary: str("50")},
		ton("200", "9"),
		ton("abc", "5"),
	}

	got, err := ComputeLeaderboard(donations, nil, 100)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, e := range got {
		ids = append(ids, e.DonorID)
	}
	assert.Equal(t, []string{"11", "10", "200", "4", "30", "abc"}, ids)

	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		c := a.TotalSecondary.Cmp(b.TotalSecondary)
		assert.True(t, c > 0 || (c == 0 && a.TotalPrimary.Cmp(b.TotalPrimary) >= 0),
			"entry %d out of order", i)
	}
}

func TestComputeLeaderboard_DisplayNameResolution(t *testing.T) {
	donations := []model.DonationRecord{ton("1", "4"), ton("2", "3"), ton("3", "2"), ton("4", "1")}
	users := []model.UserRecord{
		{DonorID: "1", DisplayName: "Boris", Username: "boris"},
		{DonorID: "2", Username: "vera"},
		{DonorID: "3"},
	}

	got, err := Aggregator{AnonymousName: "Аноним"}.Compute(donations, users, 10)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, "Boris", got[0].DisplayName)
	assert.Equal(t, "boris", got[0].Username)
	assert.Equal(t, "vera", got[1].DisplayName)
	assert.Equal(t, "vera", got[1].Username)
	assert.Equal(t, "Аноним", got[2].DisplayName)
	assert.Equal(t, "", got[2].Username)
	assert.Equal(t, "Аноним", got[3].DisplayName)
}

func TestComputeLeaderboard_LastUserRecordWins(t *testing.T) {
	users := []model.UserRecord{
		{DonorID: "1", DisplayName: "old"},
		{DonorID: "01", DisplayName: "new"},
	}
	got, err := ComputeLeaderboard([]model.DonationRecord{ton("1", "1")}, users, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].DisplayName)
}

func TestComputeLeaderboard_Limit(t *testing.T) {
	var donations []model.DonationRecord
	for i := 0; i < 5; i++ {
		donations = append(donations, ton(fmt.Sprint(i), fmt.Sprint(i)))
	}

	tests := []struct {
		limit int
		want  int
	}{
		{limit: 0, want: 0},
		{limit: 3, want: 3},
		{limit: 5, want: 5},
		{limit: 50, want: 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("limit=%d", tt.limit), func(t *testing.T) {
			got, err := ComputeLeaderboard(donations, nil, tt.limit)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestComputeLeaderboard_NegativeLimit(t *testing.T) {
	_, err := ComputeLeaderboard(nil, nil, -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestComputeLeaderboard_EmptyInput(t *testing.T) {
	got, err := ComputeLeaderboard(nil, []model.UserRecord{{DonorID: "1"}}, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComputeLeaderboard_Deterministic(t *testing.T) {
	var donations []model.DonationRecord
	for i := 0; i < 40; i++ {
		donations = append(donations, stars(fmt.Sprint(i%13), "5"))
	}

	first, err := ComputeLeaderboard(donations, nil, 100)
	require.NoError(t, err)
	want, err := json.Marshal(first)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ComputeLeaderboard(donations, nil, 100)
		require.NoError(t, err)
		got, err := json.Marshal(again)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestLeaderboardEntry_JSONNumbers(t *testing.T) {
	got, err := ComputeLeaderboard([]model.DonationRecord{
		{DonorID: "9", AmountPrimary: str("1.5"), AmountSecondary: str("20")},
	}, nil, 10)
	require.NoError(t, err)

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"donorId":"9","displayName":"Anonymous","username":"","totalPrimary":1.5,"totalSecondary":20,"donationCount":1}]`,
		string(raw))
}

func TestRankOf(t *testing.T) {
	entries, err := ComputeLeaderboard([]model.DonationRecord{
		stars("1", "10"), stars("2", "30"), stars("3", "20"),
	}, nil, 100)
	require.NoError(t, err)

	rank, ok := RankOf(entries, "3")
	assert.True(t, ok)
	assert.Equal(t, 2, rank)

	rank, ok = RankOf(entries, "42")
	assert.False(t, ok)
	assert.Zero(t, rank)
}
