package engine

import (
	"testing"

	"github.com/Dosada05/pairing-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwissPair() *Tournament {
	tourn := NewTournament()
	tourn.Register([]models.PlayerCandidate{rated("white", 1900), rated("black", 1700)})
	if _, err := tourn.GeneratePairings(models.StrategySwiss); err != nil {
		panic(err)
	}
	return tourn
}

func TestRecordResultWin(t *testing.T) {
	tourn := newSwissPair()

	require.True(t, tourn.RecordRoundResult(1, "white", "black", "1-0"))

	white, black := tourn.Player("white"), tourn.Player("black")
	assert.Equal(t, 1.0, white.Score())
	assert.Equal(t, 0.0, black.Score())
	assert.Equal(t, 1, white.Wins)
	assert.Equal(t, 1, black.Losses)
	assert.Equal(t, "win", white.LastResult)
	assert.Equal(t, "loss", black.LastResult)
	assert.True(t, white.HasPlayed("black"))
	assert.True(t, black.HasPlayed("white"))

	pairing := tourn.Round(1).Pairings[0]
	assert.True(t, pairing.ResultRecorded)
	require.NotNil(t, pairing.Result)
	assert.Equal(t, "1-0", *pairing.Result)
}

func TestRecordResultDraw(t *testing.T) {
	tourn := newSwissPair()

	require.True(t, tourn.RecordRoundResult(1, "white", "black", "0.5-0.5"))

	white, black := tourn.Player("white"), tourn.Player("black")
	assert.Equal(t, 0.5, white.Score())
	assert.Equal(t, 0.5, black.Score())
	assert.Equal(t, 1, white.Draws)
	assert.Equal(t, 1, black.Draws)
	assert.Equal(t, "draw", white.LastResult)
	assert.Equal(t, "draw", black.LastResult)
}

func TestRecordResultRejectsSecondReport(t *testing.T) {
	tourn := newSwissPair()

	require.True(t, tourn.RecordRoundResult(1, "white", "black", "1-0"))
	require.False(t, tourn.RecordRoundResult(1, "white", "black", "0-1"))

	// Повторная запись не удваивает счёт и не меняет исход.
	white, black := tourn.Player("white"), tourn.Player("black")
	assert.Equal(t, 1.0, white.Score())
	assert.Equal(t, 1, white.Wins)
	assert.Zero(t, white.Losses)
	assert.Equal(t, 1, black.Losses)

	pairing := tourn.Round(1).Pairings[0]
	assert.Equal(t, "1-0", *pairing.Result)
}

func TestRecordResultUnknownRoundOrPairing(t *testing.T) {
	tourn := newSwissPair()

	assert.False(t, tourn.RecordRoundResult(2, "white", "black", "1-0"))
	assert.False(t, tourn.RecordRoundResult(0, "white", "black", "1-0"))
	assert.False(t, tourn.RecordRoundResult(1, "black", "white", "1-0"), "ids are matched positionally")
	assert.False(t, tourn.RecordRoundResult(1, "white", "nobody", "1-0"))
}

func TestRecordResultMalformedString(t *testing.T) {
	tourn := newSwissPair()

	assert.False(t, tourn.RecordRoundResult(1, "white", "black", "banana"))
	assert.False(t, tourn.RecordRoundResult(1, "white", "black", ""))
	assert.False(t, tourn.RecordRoundResult(1, "white", "black", "1"))

	white := tourn.Player("white")
	assert.Zero(t, white.ScoreHalf)
	assert.Zero(t, white.Wins)
	assert.False(t, tourn.Round(1).Pairings[0].ResultRecorded)

	// После отклонённых строк пара остаётся открытой для записи.
	assert.True(t, tourn.RecordRoundResult(1, "white", "black", "0-1"))
}

func TestParseResultHalves(t *testing.T) {
	cases := []struct {
		in     string
		h1, h2 int
		ok     bool
	}{
		{"1-0", 2, 0, true},
		{"0-1", 0, 2, true},
		{"0.5-0.5", 1, 1, true},
		{" 1 - 0 ", 2, 0, true},
		{"2-0", 4, 0, true},
		{"-1-0", 0, 0, false},
		{"x-0", 0, 0, false},
		{"10", 0, 0, false},
	}
	for _, c := range cases {
		h1, h2, ok := parseResultHalves(c.in)
		assert.Equal(t, c.ok, ok, "input %q", c.in)
		if c.ok {
			assert.Equal(t, c.h1, h1, "input %q", c.in)
			assert.Equal(t, c.h2, h2, "input %q", c.in)
		}
	}
}
