package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateNormalize(t *testing.T) {
	rating := 1850
	negative := -10

	p := PlayerCandidate{ID: "  Alice ", Rating: &rating}.Normalize()
	require.NotNil(t, p)
	assert.Equal(t, "Alice", p.ID)
	assert.Equal(t, 1850, p.Rating)
	assert.NotNil(t, p.Opponents)

	p = PlayerCandidate{ID: "Bob"}.Normalize()
	require.NotNil(t, p)
	assert.Equal(t, DefaultRating, p.Rating)

	p = PlayerCandidate{ID: "Eve", Rating: &negative}.Normalize()
	require.NotNil(t, p)
	assert.Equal(t, DefaultRating, p.Rating)

	assert.Nil(t, PlayerCandidate{ID: "   "}.Normalize())
	assert.Nil(t, PlayerCandidate{}.Normalize())
}

func TestPlayerScoreHalves(t *testing.T) {
	p := &Player{ScoreHalf: 3}
	assert.Equal(t, 1.5, p.Score())

	p.ScoreHalf = 0
	assert.Equal(t, 0.0, p.Score())
}

func TestPlayerOpponents(t *testing.T) {
	p := &Player{}
	assert.False(t, p.HasPlayed("x"))

	p.AddOpponent("x")
	p.AddOpponent("x")
	assert.True(t, p.HasPlayed("x"))
	assert.Len(t, p.Opponents, 1)
}

func TestPlayerGamesPlayed(t *testing.T) {
	p := &Player{Wins: 2, Losses: 1, Draws: 3}
	assert.Equal(t, 6, p.GamesPlayed())
}
