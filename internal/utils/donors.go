package utils

import (
	"strconv"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/ranking"
)

// DonorTgIDs retourne les identifiants Telegram distincts des donateurs,
// dans l'ordre de première apparition. Les ids non numériques sont ignorés.
func DonorTgIDs(donations []model.DonationRecord) []int64 {
	seen := make(map[int64]struct{}, len(donations))
	ids := make([]int64, 0, len(donations))
	for _, d := range donations {
		id, err := strconv.ParseInt(ranking.NormalizeDonorID(d.DonorID), 10, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
