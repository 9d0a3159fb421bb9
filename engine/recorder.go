package engine

import (
	"math"
	"strconv"
	"strings"

	"github.com/Dosada05/pairing-system/models"
)

// Возможные значения Player.LastResult. Поле справочное,
// алгоритмы жеребьёвки его не используют.
const (
	lastResultWin  = "win"
	lastResultLoss = "loss"
	lastResultDraw = "draw"
	lastResultBye  = "bye"
)

// RecordRoundResult записывает результат пары швейцарки или кругового
// турнира. Возвращает false, если тур или пара не найдены, пара уже
// закрыта либо строка результата не разбирается, — состояние при этом
// не меняется.
func (t *Tournament) RecordRoundResult(round int, player1ID, player2ID, result string) bool {
	pairing := t.findPairing(round, player1ID, player2ID)
	if pairing == nil {
		return false
	}

	p1, ok := t.players[pairing.Player1ID]
	if !ok {
		return false
	}

	if pairing.Bye {
		// Бай: полное очко и победа без учёта соперника.
		t.creditBye(p1)
		pairing.Result = &result
		pairing.ResultRecorded = true
		return true
	}

	h1, h2, ok := parseResultHalves(result)
	if !ok {
		return false
	}
	p2, ok := t.players[*pairing.Player2ID]
	if !ok {
		return false
	}

	p1.ScoreHalf += h1
	p2.ScoreHalf += h2
	switch {
	case h1 > h2:
		p1.Wins++
		p2.Losses++
		p1.LastResult = lastResultWin
		p2.LastResult = lastResultLoss
	case h1 < h2:
		p1.Losses++
		p2.Wins++
		p1.LastResult = lastResultLoss
		p2.LastResult = lastResultWin
	default:
		p1.Draws++
		p2.Draws++
		p1.LastResult = lastResultDraw
		p2.LastResult = lastResultDraw
	}
	p1.AddOpponent(p2.ID)
	p2.AddOpponent(p1.ID)

	pairing.Result = &result
	pairing.ResultRecorded = true
	return true
}

// RecordKnockoutResult записывает исход пары нокаута: победитель
// получает очко и победу, проигравший помечается выбывшим и переносится
// из активных. Пара-бай разрешается в пользу получателя независимо от
// заявленного победителя.
func (t *Tournament) RecordKnockoutResult(round int, player1ID, player2ID, winnerID string) bool {
	pairing := t.findPairing(round, player1ID, player2ID)
	if pairing == nil {
		return false
	}

	if pairing.Bye {
		if recipient, ok := t.players[pairing.Player1ID]; ok {
			t.creditBye(recipient)
		}
		id := pairing.Player1ID
		pairing.WinnerID = &id
		pairing.ResultRecorded = true
		return true
	}

	var loserID string
	switch winnerID {
	case pairing.Player1ID:
		loserID = *pairing.Player2ID
	case *pairing.Player2ID:
		loserID = pairing.Player1ID
	default:
		return false
	}

	winner, ok := t.players[winnerID]
	if !ok {
		return false
	}
	loser, ok := t.players[loserID]
	if !ok {
		return false
	}

	winner.ScoreHalf += 2
	winner.Wins++
	winner.LastResult = lastResultWin
	loser.Losses++
	loser.LastResult = lastResultLoss
	winner.AddOpponent(loserID)
	loser.AddOpponent(winnerID)

	loser.Eliminated = true
	t.eliminate(loserID)

	pairing.WinnerID = &winnerID
	pairing.ResultRecorded = true
	return true
}

// findPairing ищет в туре незакрытую пару с указанными игроками.
// У пары-бая отсутствующий второй id сопоставляется пустой строке.
func (t *Tournament) findPairing(round int, player1ID, player2ID string) *models.Pairing {
	r := t.Round(round)
	if r == nil {
		return nil
	}
	for _, p := range r.Pairings {
		if p.ResultRecorded || p.Player1ID != player1ID {
			continue
		}
		if p.Player2ID == nil {
			if player2ID == "" {
				return p
			}
			continue
		}
		if *p.Player2ID == player2ID {
			return p
		}
	}
	return nil
}

// creditBye начисляет получателю бая полное очко и победу.
func (t *Tournament) creditBye(p *models.Player) {
	p.ScoreHalf += 2
	p.Wins++
	p.LastResult = lastResultBye
}

// parseResultHalves разбирает строку результата вида "1-0" или
// "0.5-0.5" в половинки очка обоих игроков.
func parseResultHalves(result string) (int, int, bool) {
	parts := strings.SplitN(strings.TrimSpace(result), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	b, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || a < 0 || b < 0 {
		return 0, 0, false
	}
	return int(math.Round(a * 2)), int(math.Round(b * 2)), true
}
