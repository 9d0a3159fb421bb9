package services

import "errors"

// Общие ошибки сервисного слоя, используемые в маппинге HTTP.
var (
	// Невалидный ввод
	ErrInvalidStrategy = errors.New("unknown pairing strategy")
	ErrInvalidSortKey  = errors.New("unknown standings sort key")
	ErrNoCandidates    = errors.New("no player candidates provided")

	// Ресурс не найден
	ErrRoundNotFound = errors.New("round not found")

	// Запись результата: пара не найдена либо результат уже записан.
	// Движок различает эти случаи только неуспехом, без деталей.
	ErrResultNotRecorded = errors.New("pairing not found or result already recorded")
)
