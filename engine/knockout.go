package engine

import (
	"fmt"

	"github.com/Dosada05/pairing-system/models"
)

// KnockoutGenerator реализует олимпийскую систему: проигравший выбывает.
// Каждый тур активные игроки заново сеются по текущему рейтингу,
// а не по позиции в сетке — сознательный выбор ради честных пересевов.
type KnockoutGenerator struct{}

func NewKnockoutGenerator() PairingGenerator {
	return &KnockoutGenerator{}
}

func (g *KnockoutGenerator) GetName() string {
	return "Knockout"
}

func (g *KnockoutGenerator) GeneratePairings(t *Tournament, round int) ([]*models.Pairing, error) {
	if round == 1 {
		// Первый тур: в сетке все зарегистрированные.
		t.active = append([]string(nil), t.order...)
		t.eliminated = nil
	} else {
		prev := t.rounds[len(t.rounds)-1]
		for _, p := range prev.Pairings {
			if !p.ResultRecorded && !p.Bye {
				return nil, fmt.Errorf("%w: round %d", ErrIncompleteRound, prev.Round)
			}
		}
		t.processByeMatches(prev)

		// Активные — ровно победители предыдущего тура.
		winners := make([]string, 0, len(prev.Pairings))
		for _, p := range prev.Pairings {
			if p.WinnerID != nil {
				winners = append(winners, *p.WinnerID)
			}
		}
		t.active = winners
	}

	switch len(t.active) {
	case 0:
		return nil, ErrEmptyBracket
	case 1:
		return nil, &ChampionDecidedError{WinnerID: t.active[0]}
	}

	sorted := sortedByRating(t.playersByID(t.active))
	var byeRecipient *models.Player
	if len(sorted)%2 == 1 {
		byeRecipient = sorted[len(sorted)-1]
		sorted = sorted[:len(sorted)-1]
	}

	pairings := pairAdjacent(sorted, round)
	if byeRecipient != nil {
		pairings = append(pairings, byePairing(byeRecipient, round))
	}
	return pairings, nil
}

// processByeMatches авторазрешает незакрытые баи тура: получатель
// засчитывается победителем с полным очком.
func (t *Tournament) processByeMatches(round *models.Round) {
	for _, p := range round.Pairings {
		if !p.Bye || p.ResultRecorded {
			continue
		}
		if recipient, ok := t.players[p.Player1ID]; ok {
			t.creditBye(recipient)
		}
		winnerID := p.Player1ID
		p.WinnerID = &winnerID
		p.ResultRecorded = true
	}
}
