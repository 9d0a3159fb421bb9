package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
)

// ExportStandingsCSV выгружает таблицу результатов в CSV:
// id, rating, score, wins, losses, draws, games_played.
func (s *tournamentService) ExportStandingsCSV(ctx context.Context, sortKey string) ([]byte, error) {
	standings, err := s.Standings(ctx, sortKey)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"rank", "id", "rating", "score", "wins", "losses", "draws", "games_played"}); err != nil {
		return nil, err
	}
	for _, st := range standings {
		record := []string{
			strconv.Itoa(st.Rank),
			st.ID,
			strconv.Itoa(st.Rating),
			strconv.FormatFloat(st.Score, 'f', -1, 64),
			strconv.Itoa(st.Wins),
			strconv.Itoa(st.Losses),
			strconv.Itoa(st.Draws),
			strconv.Itoa(st.GamesPlayed),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
