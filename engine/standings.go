package engine

import (
	"sort"

	"github.com/Dosada05/pairing-system/models"
)

// Ключи сортировки таблицы результатов.
const (
	SortByScore  = "score"
	SortByRating = "rating"
	SortByName   = "name"
)

// Standings строит таблицу результатов: копии игроков с проставленными
// местами, без мутации хранимого состояния. Сортировка стабильная,
// ничьи за пределами ключа сохраняют порядок регистрации.
// Неизвестный ключ трактуется как сортировка по очкам.
func (t *Tournament) Standings(sortKey string) []models.PlayerStanding {
	standings := make([]models.PlayerStanding, 0, len(t.order))
	for _, p := range t.Players() {
		standings = append(standings, models.PlayerStanding{
			ID:          p.ID,
			Rating:      p.Rating,
			Score:       p.Score(),
			Wins:        p.Wins,
			Losses:      p.Losses,
			Draws:       p.Draws,
			GamesPlayed: p.GamesPlayed(),
			Bye:         p.Bye,
			Eliminated:  p.Eliminated,
		})
	}

	switch sortKey {
	case SortByRating:
		sort.SliceStable(standings, func(i, j int) bool {
			return standings[i].Rating > standings[j].Rating
		})
	case SortByName:
		sort.SliceStable(standings, func(i, j int) bool {
			return standings[i].ID < standings[j].ID
		})
	default:
		sort.SliceStable(standings, func(i, j int) bool {
			if standings[i].Score != standings[j].Score {
				return standings[i].Score > standings[j].Score
			}
			return standings[i].Rating > standings[j].Rating
		})
	}

	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}
