package engine

import (
	"testing"

	"github.com/Dosada05/pairing-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStandingsFixture(t *testing.T) *Tournament {
	t.Helper()
	tourn := NewTournament()
	tourn.Register([]models.PlayerCandidate{
		rated("carol", 1700), rated("alice", 2000), rated("bob", 1800), rated("dave", 1600),
	})

	_, err := tourn.GeneratePairings(models.StrategySwiss)
	require.NoError(t, err)
	// alice-bob 1-0, carol-dave 0.5-0.5.
	require.True(t, tourn.RecordRoundResult(1, "alice", "bob", "1-0"))
	require.True(t, tourn.RecordRoundResult(1, "carol", "dave", "0.5-0.5"))
	return tourn
}

func TestStandingsDefaultSortScoreThenRating(t *testing.T) {
	tourn := newStandingsFixture(t)

	standings := tourn.Standings(SortByScore)
	require.Len(t, standings, 4)

	ids := make([]string, 0, len(standings))
	for _, s := range standings {
		ids = append(ids, s.ID)
	}
	// alice на 1.0; carol и dave по 0.5, carol выше по рейтингу;
	// bob на нуле замыкает таблицу.
	assert.Equal(t, []string{"alice", "carol", "dave", "bob"}, ids)

	for i, s := range standings {
		assert.Equal(t, i+1, s.Rank)
	}
	assert.Equal(t, 1.0, standings[0].Score)
	assert.Equal(t, 1, standings[0].Wins)
	assert.Equal(t, 1, standings[0].GamesPlayed)
}

func TestStandingsSortByRating(t *testing.T) {
	tourn := newStandingsFixture(t)

	standings := tourn.Standings(SortByRating)
	ids := make([]string, 0, len(standings))
	for _, s := range standings {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, ids)
}

func TestStandingsSortByName(t *testing.T) {
	tourn := newStandingsFixture(t)

	standings := tourn.Standings(SortByName)
	ids := make([]string, 0, len(standings))
	for _, s := range standings {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, ids)
}

func TestStandingsUnknownKeyFallsBackToScore(t *testing.T) {
	tourn := newStandingsFixture(t)

	assert.Equal(t, tourn.Standings(SortByScore), tourn.Standings("elo"))
}

func TestStandingsTiesKeepRegistrationOrder(t *testing.T) {
	tourn := NewTournament()
	// Одинаковые рейтинг и счёт: стабильная сортировка не переставляет.
	tourn.Register([]models.PlayerCandidate{bare("zeta"), bare("alpha"), bare("mid")})

	standings := tourn.Standings(SortByScore)
	require.Len(t, standings, 3)
	assert.Equal(t, "zeta", standings[0].ID)
	assert.Equal(t, "alpha", standings[1].ID)
	assert.Equal(t, "mid", standings[2].ID)
}

func TestStandingsDoNotMutateState(t *testing.T) {
	tourn := newStandingsFixture(t)

	before := tourn.Standings(SortByScore)
	_ = tourn.Standings(SortByName)
	_ = tourn.Standings(SortByRating)
	after := tourn.Standings(SortByScore)

	assert.Equal(t, before, after)
	// Места — перестановка 1..n при любом ключе.
	seen := make(map[int]bool)
	for _, s := range tourn.Standings(SortByName) {
		seen[s.Rank] = true
	}
	for i := 1; i <= len(tourn.Players()); i++ {
		assert.True(t, seen[i], "rank %d missing", i)
	}
}
