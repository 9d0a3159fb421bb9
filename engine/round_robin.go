package engine

import (
	"github.com/Dosada05/pairing-system/models"
)

// RoundRobinGenerator реализует круговой турнир методом кругового
// вращения (circle method): один слот фиксируется, остальные
// вращаются на номер тура, пары снимаются с концов к середине.
// За полный цикл каждая неупорядоченная пара встречается ровно один раз.
type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() PairingGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// TotalRounds — длина полного расписания: n туров при нечётном n
// (каждый ровно один раз пропускает тур), n-1 при чётном.
func (g *RoundRobinGenerator) TotalRounds(n int) int {
	if n%2 == 1 {
		return n
	}
	return n - 1
}

func (g *RoundRobinGenerator) GeneratePairings(t *Tournament, round int) ([]*models.Pairing, error) {
	players := t.Players() // порядок регистрации, вращение детерминировано
	n := len(players)
	if round > g.TotalRounds(n) {
		return nil, ErrTournamentComplete
	}
	r := round - 1

	// При чётном n якорем служит первый игрок, вращаются остальные n-1.
	// При нечётном n якорный слот занимает фиктивный игрок: тот, кто
	// выпадает против него, получает бай.
	var anchor *models.Player
	rotation := players
	if n%2 == 0 {
		anchor = players[0]
		rotation = players[1:]
	}

	m := len(rotation)
	rotated := make([]*models.Player, m)
	for i := range rotation {
		rotated[i] = rotation[((i-r)%m+m)%m]
	}

	pairings := make([]*models.Pairing, 0, n/2+1)
	var byeRecipient *models.Player
	if anchor != nil {
		p2ID := rotated[0].ID
		pairings = append(pairings, &models.Pairing{
			Player1ID: anchor.ID,
			Player2ID: &p2ID,
			Round:     round,
		})
	} else {
		byeRecipient = rotated[0]
	}

	for i, j := 1, m-1; i < j; i, j = i+1, j-1 {
		p2ID := rotated[j].ID
		pairings = append(pairings, &models.Pairing{
			Player1ID: rotated[i].ID,
			Player2ID: &p2ID,
			Round:     round,
		})
	}

	if byeRecipient != nil {
		pairings = append(pairings, byePairing(byeRecipient, round))
	}
	return pairings, nil
}
