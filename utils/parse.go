package utils

import (
	"strconv"
	"strings"

	"github.com/Dosada05/pairing-system/models"
)

// ParseCandidates разбирает свободный текст со списком игроков в заявки
// на регистрацию. Записи разделяются переводами строк, запятыми или
// точками с запятой. Завершающее неотрицательное целое число в записи
// считается рейтингом; иначе рейтинг не задаётся и позже подставится
// models.DefaultRating.
//
//	"Alice 2100, Bob; Carol 1850" ->
//	  {ID: "Alice", Rating: 2100}, {ID: "Bob"}, {ID: "Carol", Rating: 1850}
func ParseCandidates(text string) []models.PlayerCandidate {
	entries := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == ',' || r == ';'
	})

	candidates := make([]models.PlayerCandidate, 0, len(entries))
	for _, entry := range entries {
		tokens := strings.Fields(entry)
		if len(tokens) == 0 {
			continue
		}
		if len(tokens) >= 2 {
			if rating, err := strconv.Atoi(tokens[len(tokens)-1]); err == nil && rating >= 0 {
				candidates = append(candidates, models.PlayerCandidate{
					ID:     strings.Join(tokens[:len(tokens)-1], " "),
					Rating: &rating,
				})
				continue
			}
		}
		candidates = append(candidates, models.PlayerCandidate{
			ID: strings.Join(tokens, " "),
		})
	}
	return candidates
}
