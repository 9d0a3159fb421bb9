package models

// Pairing — одна пара очередного тура. Player2ID == nil означает бай
// (свободный тур без соперника). После записи результата
// (ResultRecorded == true) поля исхода неизменяемы.
type Pairing struct {
	Player1ID      string  `json:"player1_id"`
	Player2ID      *string `json:"player2_id,omitempty"`
	Round          int     `json:"round"`
	Bye            bool    `json:"bye"`
	ResultRecorded bool    `json:"result_recorded"`

	// Result хранит строку результата ("1-0", "0.5-0.5") для швейцарки
	// и кругового турнира; WinnerID — для нокаута.
	Result   *string `json:"result,omitempty"`
	WinnerID *string `json:"winner_id,omitempty"`
}

// Round — запись тура в журнале: номер (1-based, совпадает с позицией)
// и упорядоченный список пар. Журнал только пополняется; после создания
// тура меняются лишь поля исхода его пар.
type Round struct {
	Round    int        `json:"round"`
	Pairings []*Pairing `json:"pairings"`
}
