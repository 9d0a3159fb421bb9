package models

import "strings"

// DefaultRating присваивается игрокам, зарегистрированным без рейтинга.
const DefaultRating = 1500

// Player представляет участника турнира и его накопленное состояние.
// Счёт хранится в половинках очка (целое число), чтобы сравнение
// счетов при разбиении на очковые группы было точным.
type Player struct {
	ID         string `json:"id"`
	Rating     int    `json:"rating"`
	ScoreHalf  int    `json:"score_half"`
	Wins       int    `json:"wins"`
	Losses     int    `json:"losses"`
	Draws      int    `json:"draws"`
	Bye        bool   `json:"bye"`
	Eliminated bool   `json:"eliminated"`
	LastResult string `json:"last_result,omitempty"`

	// Opponents — множество id уже сыгранных соперников (симметричное).
	Opponents map[string]bool `json:"-"`
}

// Score возвращает счёт игрока в очках для отображения.
func (p *Player) Score() float64 {
	return float64(p.ScoreHalf) / 2
}

func (p *Player) GamesPlayed() int {
	return p.Wins + p.Losses + p.Draws
}

func (p *Player) HasPlayed(id string) bool {
	return p.Opponents[id]
}

// AddOpponent добавляет соперника в множество (идемпотентно).
func (p *Player) AddOpponent(id string) {
	if p.Opponents == nil {
		p.Opponents = make(map[string]bool)
	}
	p.Opponents[id] = true
}

// PlayerCandidate — заявка на регистрацию: либо только идентификатор
// (Rating == nil), либо идентификатор с рейтингом.
type PlayerCandidate struct {
	ID     string `json:"id"`
	Rating *int   `json:"rating,omitempty"`
}

// Normalize приводит заявку к каноничной записи игрока: идентификатор
// обрезается по краям, отрицательный или отсутствующий рейтинг
// заменяется на DefaultRating. Пустой идентификатор даёт nil.
func (c PlayerCandidate) Normalize() *Player {
	id := strings.TrimSpace(c.ID)
	if id == "" {
		return nil
	}
	rating := DefaultRating
	if c.Rating != nil && *c.Rating >= 0 {
		rating = *c.Rating
	}
	return &Player{
		ID:        id,
		Rating:    rating,
		Opponents: make(map[string]bool),
	}
}
