package engine

import (
	"fmt"

	"github.com/Dosada05/pairing-system/models"
)

// Tournament владеет всем состоянием одного турнира: реестром игроков,
// журналом туров и, для нокаута, списками активных и выбывших.
// Движок однопоточный; внешняя сериализация — забота вызывающего слоя.
type Tournament struct {
	players map[string]*models.Player
	order   []string // порядок регистрации, для стабильных сортировок

	rounds       []*models.Round
	currentRound int

	// Нокаут: active ∪ eliminated = players, множества не пересекаются.
	// Порядок eliminated — порядок выбывания.
	active     []string
	eliminated []string

	generators map[models.PairingStrategy]PairingGenerator
}

func NewTournament() *Tournament {
	return &Tournament{
		players: make(map[string]*models.Player),
		generators: map[models.PairingStrategy]PairingGenerator{
			models.StrategySwiss:      NewSwissGenerator(),
			models.StrategyRoundRobin: NewRoundRobinGenerator(),
			models.StrategyKnockout:   NewKnockoutGenerator(),
		},
	}
}

// Register регистрирует заявки и возвращает число фактически добавленных
// игроков. Пустые идентификаторы и дубликаты молча пропускаются.
func (t *Tournament) Register(candidates []models.PlayerCandidate) int {
	added := 0
	for _, c := range candidates {
		p := c.Normalize()
		if p == nil {
			continue
		}
		if _, exists := t.players[p.ID]; exists {
			continue
		}
		t.players[p.ID] = p
		t.order = append(t.order, p.ID)
		added++
	}
	return added
}

// Clear полностью сбрасывает турнир: игроков, журнал, счётчик туров
// и нокаут-списки. Восстановление невозможно.
func (t *Tournament) Clear() {
	t.players = make(map[string]*models.Player)
	t.order = nil
	t.rounds = nil
	t.currentRound = 0
	t.active = nil
	t.eliminated = nil
}

// Reset очищает туры и результаты, сохраняя зарегистрированных игроков
// и их рейтинги; все остальные поля игроков обнуляются.
func (t *Tournament) Reset() {
	for _, p := range t.players {
		p.ScoreHalf = 0
		p.Wins = 0
		p.Losses = 0
		p.Draws = 0
		p.Bye = false
		p.Eliminated = false
		p.LastResult = ""
		p.Opponents = make(map[string]bool)
	}
	t.rounds = nil
	t.currentRound = 0
	t.active = nil
	t.eliminated = nil
}

// Players возвращает игроков в порядке регистрации.
func (t *Tournament) Players() []*models.Player {
	players := make([]*models.Player, 0, len(t.order))
	for _, id := range t.order {
		players = append(players, t.players[id])
	}
	return players
}

func (t *Tournament) Player(id string) *models.Player {
	return t.players[id]
}

func (t *Tournament) Rounds() []*models.Round {
	return t.rounds
}

func (t *Tournament) Round(round int) *models.Round {
	if round < 1 || round > len(t.rounds) {
		return nil
	}
	return t.rounds[round-1]
}

func (t *Tournament) CurrentRound() int {
	return t.currentRound
}

// ActivePlayerIDs возвращает id игроков, ещё не выбывших из нокаута.
func (t *Tournament) ActivePlayerIDs() []string {
	return append([]string(nil), t.active...)
}

// EliminatedPlayerIDs возвращает id выбывших в порядке выбывания.
func (t *Tournament) EliminatedPlayerIDs() []string {
	return append([]string(nil), t.eliminated...)
}

// GeneratePairings строит пары очередного тура по выбранной системе,
// дописывает тур в журнал и увеличивает счётчик туров.
func (t *Tournament) GeneratePairings(strategy models.PairingStrategy) ([]*models.Pairing, error) {
	if len(t.players) < 2 {
		return nil, ErrInsufficientPlayers
	}
	gen, ok := t.generators[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}

	pairings, err := gen.GeneratePairings(t, t.currentRound+1)
	if err != nil {
		return nil, err
	}

	t.currentRound++
	t.rounds = append(t.rounds, &models.Round{
		Round:    t.currentRound,
		Pairings: pairings,
	})
	return pairings, nil
}

// playersByID разворачивает срез идентификаторов в срез игроков,
// пропуская неизвестные id.
func (t *Tournament) playersByID(ids []string) []*models.Player {
	players := make([]*models.Player, 0, len(ids))
	for _, id := range ids {
		if p, ok := t.players[id]; ok {
			players = append(players, p)
		}
	}
	return players
}

// eliminate переводит игрока из активных в выбывшие (идемпотентно).
func (t *Tournament) eliminate(id string) {
	for i, activeID := range t.active {
		if activeID == id {
			t.active = append(t.active[:i], t.active[i+1:]...)
			break
		}
	}
	for _, eliminatedID := range t.eliminated {
		if eliminatedID == id {
			return
		}
	}
	t.eliminated = append(t.eliminated, id)
}
