package engine

import (
	"fmt"
	"testing"

	"github.com/Dosada05/pairing-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func registerSequential(tourn *Tournament, n int) {
	candidates := make([]models.PlayerCandidate, 0, n)
	for i := 1; i <= n; i++ {
		candidates = append(candidates, bare(fmt.Sprintf("P%02d", i)))
	}
	tourn.Register(candidates)
}

func TestRoundRobinEvenFieldSchedule(t *testing.T) {
	tourn := NewTournament()
	registerSequential(tourn, 4)

	seen := make(map[string]int)
	for round := 1; round <= 3; round++ {
		pairings, err := tourn.GeneratePairings(models.StrategyRoundRobin)
		require.NoError(t, err)
		require.Len(t, pairings, 2, "round %d", round)
		for _, p := range pairings {
			require.False(t, p.Bye)
			require.NotNil(t, p.Player2ID)
			seen[pairKey(p.Player1ID, *p.Player2ID)]++
		}
	}

	assert.Len(t, seen, 6)
	for key, count := range seen {
		assert.Equal(t, 1, count, "pair %s repeated", key)
	}
}

func TestRoundRobinOddFieldSchedule(t *testing.T) {
	tourn := NewTournament()
	registerSequential(tourn, 5)

	seen := make(map[string]int)
	byes := make(map[string]int)
	for round := 1; round <= 5; round++ {
		pairings, err := tourn.GeneratePairings(models.StrategyRoundRobin)
		require.NoError(t, err)
		require.Len(t, pairings, 3, "round %d", round)

		byeCount := 0
		for _, p := range pairings {
			if p.Bye {
				byeCount++
				byes[p.Player1ID]++
				continue
			}
			seen[pairKey(p.Player1ID, *p.Player2ID)]++
		}
		assert.Equal(t, 1, byeCount, "round %d", round)
	}

	assert.Len(t, seen, 10)
	for key, count := range seen {
		assert.Equal(t, 1, count, "pair %s repeated", key)
	}
	require.Len(t, byes, 5)
	for id, count := range byes {
		assert.Equal(t, 1, count, "player %s byes", id)
	}
}

func TestRoundRobinCompleteAfterFullSchedule(t *testing.T) {
	tourn := NewTournament()
	registerSequential(tourn, 4)

	for round := 1; round <= 3; round++ {
		_, err := tourn.GeneratePairings(models.StrategyRoundRobin)
		require.NoError(t, err)
	}

	_, err := tourn.GeneratePairings(models.StrategyRoundRobin)
	require.ErrorIs(t, err, ErrTournamentComplete)
	assert.Equal(t, 3, tourn.CurrentRound())
}

func TestRoundRobinEveryPairExactlyOnce(t *testing.T) {
	for n := 4; n <= 8; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			tourn := NewTournament()
			registerSequential(tourn, n)

			total := n - 1
			if n%2 == 1 {
				total = n
			}

			seen := make(map[string]int)
			for round := 1; round <= total; round++ {
				pairings, err := tourn.GeneratePairings(models.StrategyRoundRobin)
				require.NoError(t, err)
				for _, p := range pairings {
					if p.Bye {
						continue
					}
					seen[pairKey(p.Player1ID, *p.Player2ID)]++
				}
			}

			require.Len(t, seen, n*(n-1)/2)
			for key, count := range seen {
				assert.Equal(t, 1, count, "pair %s", key)
			}
		})
	}
}
