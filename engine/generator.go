package engine

import (
	"sort"

	"github.com/Dosada05/pairing-system/models"
)

// PairingGenerator строит пары очередного тура по одной из систем.
// Генератор читает реестр игроков и журнал туров; побочные эффекты
// ограничены пометкой бая у игрока и, для нокаута, авторазрешением
// баев предыдущего тура.
type PairingGenerator interface {
	GeneratePairings(t *Tournament, round int) ([]*models.Pairing, error)

	GetName() string
}

// sortedByRating возвращает копию среза, отсортированную по рейтингу
// по убыванию. Сортировка стабильная: при равном рейтинге сохраняется
// исходный (регистрационный) порядок.
func sortedByRating(players []*models.Player) []*models.Player {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	return sorted
}

// pairAdjacent соединяет соседей отсортированного среза: 1-й со 2-м,
// 3-й с 4-м и так далее. Длина среза должна быть чётной.
func pairAdjacent(players []*models.Player, round int) []*models.Pairing {
	pairings := make([]*models.Pairing, 0, len(players)/2)
	for i := 0; i+1 < len(players); i += 2 {
		p2ID := players[i+1].ID
		pairings = append(pairings, &models.Pairing{
			Player1ID: players[i].ID,
			Player2ID: &p2ID,
			Round:     round,
		})
	}
	return pairings
}

// byePairing строит пару-бай и помечает получателя.
func byePairing(p *models.Player, round int) *models.Pairing {
	p.Bye = true
	return &models.Pairing{
		Player1ID: p.ID,
		Round:     round,
		Bye:       true,
	}
}
