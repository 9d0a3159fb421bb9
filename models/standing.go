package models

// PlayerStanding — строка таблицы результатов: копия состояния игрока
// с проставленным местом. Никогда не ссылается на живой объект Player.
type PlayerStanding struct {
	Rank        int     `json:"rank"`
	ID          string  `json:"id"`
	Rating      int     `json:"rating"`
	Score       float64 `json:"score"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Draws       int     `json:"draws"`
	GamesPlayed int     `json:"games_played"`
	Bye         bool    `json:"bye"`
	Eliminated  bool    `json:"eliminated"`
}
