package engine

import (
	"sort"

	"github.com/Dosada05/pairing-system/models"
)

// SwissGenerator реализует швейцарскую систему: игроки с равными или
// близкими очками встречаются между собой, никто не выбывает.
type SwissGenerator struct{}

func NewSwissGenerator() PairingGenerator {
	return &SwissGenerator{}
}

func (g *SwissGenerator) GetName() string {
	return "Swiss"
}

func (g *SwissGenerator) GeneratePairings(t *Tournament, round int) ([]*models.Pairing, error) {
	if round == 1 {
		return g.firstRound(t, round), nil
	}
	return g.scoreGroupRound(t, round), nil
}

// firstRound сортирует всех по рейтингу по убыванию и соединяет соседей:
// 1-й со 2-м, 3-й с 4-м и так далее — стандартная стартовая жеребьёвка
// близких по силе игроков. При нечётном числе бай получает слабейший.
func (g *SwissGenerator) firstRound(t *Tournament, round int) []*models.Pairing {
	sorted := sortedByRating(t.Players())

	var byeRecipient *models.Player
	if len(sorted)%2 == 1 {
		byeRecipient = sorted[len(sorted)-1]
		sorted = sorted[:len(sorted)-1]
	}

	pairings := pairAdjacent(sorted, round)
	if byeRecipient != nil {
		pairings = append(pairings, byePairing(byeRecipient, round))
	}
	return pairings
}

// scoreGroupRound — туры со второго и далее: сортировка по очкам
// (рейтинг как тай-брейк), выбор получателя бая, разбиение на очковые
// группы и спаривание внутри групп со спуском лишнего игрока ниже.
func (g *SwissGenerator) scoreGroupRound(t *Tournament, round int) []*models.Pairing {
	sorted := t.Players()
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ScoreHalf != sorted[j].ScoreHalf {
			return sorted[i].ScoreHalf > sorted[j].ScoreHalf
		}
		return sorted[i].Rating > sorted[j].Rating
	})

	var byeRecipient *models.Player
	if len(sorted)%2 == 1 {
		idx := g.pickByeIndex(sorted)
		byeRecipient = sorted[idx]
		sorted = append(sorted[:idx], sorted[idx+1:]...)
	}

	pairings := make([]*models.Pairing, 0, len(sorted)/2+1)
	var float *models.Player
	for _, group := range scoreGroups(sorted) {
		if float != nil {
			group = append(group, float)
			float = nil
		}
		group = sortedByRating(group)
		if len(group)%2 == 1 {
			float = group[len(group)-1]
			group = group[:len(group)-1]
		}
		if len(group) == 0 {
			continue
		}
		pairings = append(pairings, pairAdjacent(group, round)...)
	}

	if byeRecipient != nil {
		pairings = append(pairings, byePairing(byeRecipient, round))
	}
	return pairings
}

// pickByeIndex ищет с конца сортировки первого игрока без бая.
// Если бай был у всех, бай повторно получает последний в порядке
// сортировки — осознанный крайний случай, а не ошибка.
func (g *SwissGenerator) pickByeIndex(sorted []*models.Player) int {
	for i := len(sorted) - 1; i >= 0; i-- {
		if !sorted[i].Bye {
			return i
		}
	}
	return len(sorted) - 1
}

// scoreGroups режет срез, отсортированный по очкам по убыванию,
// на группы с одинаковым счётом.
func scoreGroups(sorted []*models.Player) [][]*models.Player {
	var groups [][]*models.Player
	for _, p := range sorted {
		last := len(groups) - 1
		if last < 0 || groups[last][0].ScoreHalf != p.ScoreHalf {
			groups = append(groups, []*models.Player{p})
			continue
		}
		groups[last] = append(groups[last], p)
	}
	return groups
}
