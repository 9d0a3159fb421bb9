package engine

import (
	"errors"
	"fmt"
)

// Ошибки движка жеребьёвки. Все условия локальны и восстановимы:
// операция, обнаружившая ошибку, не меняет состояние турнира
// (исключение — авторазрешение баев перед проверками нокаута, см. knockout.go).
var (
	ErrInsufficientPlayers = errors.New("at least two registered players are required")
	ErrIncompleteRound     = errors.New("previous knockout round has unresolved pairings")
	ErrTournamentComplete  = errors.New("round-robin schedule is already complete")
	ErrChampionDecided     = errors.New("knockout champion decided")
	ErrEmptyBracket        = errors.New("no active players remain in the bracket")
	ErrUnknownStrategy     = errors.New("unknown pairing strategy")
)

// ChampionDecidedError сигнализирует о завершении нокаута и несёт id победителя.
type ChampionDecidedError struct {
	WinnerID string
}

func (e *ChampionDecidedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrChampionDecided, e.WinnerID)
}

func (e *ChampionDecidedError) Unwrap() error {
	return ErrChampionDecided
}
