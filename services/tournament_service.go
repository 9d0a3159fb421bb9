package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/Dosada05/pairing-system/engine"
	"github.com/Dosada05/pairing-system/live"
	"github.com/Dosada05/pairing-system/models"
	"github.com/Dosada05/pairing-system/utils"
)

// PlayerView — представление игрока для внешнего слоя: счёт в очках,
// соперники — отсортированным списком. Живые объекты движка наружу
// не отдаются, менять состояние можно только операциями сервиса.
type PlayerView struct {
	ID          string   `json:"id"`
	Rating      int      `json:"rating"`
	Score       float64  `json:"score"`
	Wins        int      `json:"wins"`
	Losses      int      `json:"losses"`
	Draws       int      `json:"draws"`
	GamesPlayed int      `json:"games_played"`
	Opponents   []string `json:"opponents"`
	Bye         bool     `json:"bye"`
	Eliminated  bool     `json:"eliminated"`
	LastResult  string   `json:"last_result,omitempty"`
}

// RoundView — тур вместе с системой, по которой он был сгенерирован.
// Пары — глубокие копии, снятые под мьютексом: вызывающий слой может
// сериализовать их без гонки с параллельной записью результатов.
type RoundView struct {
	Round    int               `json:"round"`
	Strategy string            `json:"strategy,omitempty"`
	Pairings []*models.Pairing `json:"pairings"`
}

type RecordResultInput struct {
	Round     int    `json:"round"`
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id"`
	Result    string `json:"result"`
}

type RecordKnockoutResultInput struct {
	Round     int    `json:"round"`
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id"`
	WinnerID  string `json:"winner_id"`
}

type TournamentService interface {
	RegisterPlayers(ctx context.Context, candidates []models.PlayerCandidate) (int, error)
	RegisterFromText(ctx context.Context, text string) (int, error)
	ListPlayers(ctx context.Context) []PlayerView
	GeneratePairings(ctx context.Context, strategy string) (*RoundView, error)
	RecordRoundResult(ctx context.Context, input RecordResultInput) error
	RecordKnockoutResult(ctx context.Context, input RecordKnockoutResultInput) error
	ListRounds(ctx context.Context) []RoundView
	GetRound(ctx context.Context, round int) (*RoundView, error)
	Standings(ctx context.Context, sortKey string) ([]models.PlayerStanding, error)
	ExportStandingsCSV(ctx context.Context, sortKey string) ([]byte, error)
	Reset(ctx context.Context)
	Clear(ctx context.Context)
}

// tournamentService сериализует доступ к однопоточному движку мьютексом:
// сам движок примитивов синхронизации не определяет.
type tournamentService struct {
	mu         sync.Mutex
	tournament *engine.Tournament
	strategies map[int]string // номер тура -> система, для RoundView
	hub        *live.Hub
	logger     *slog.Logger
}

func NewTournamentService(tournament *engine.Tournament, hub *live.Hub, logger *slog.Logger) TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		tournament: tournament,
		strategies: make(map[int]string),
		hub:        hub,
		logger:     logger,
	}
}

func (s *tournamentService) broadcast(eventType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	s.hub.BroadcastEvent(live.Event{Type: eventType, Payload: payload})
}

func (s *tournamentService) RegisterPlayers(ctx context.Context, candidates []models.PlayerCandidate) (int, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	s.mu.Lock()
	added := s.tournament.Register(candidates)
	total := len(s.tournament.Players())
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "players registered",
		slog.Int("added", added), slog.Int("total", total))
	if added > 0 {
		s.broadcast(live.EventPlayersRegistered, map[string]int{"added": added, "total": total})
	}
	return added, nil
}

func (s *tournamentService) RegisterFromText(ctx context.Context, text string) (int, error) {
	return s.RegisterPlayers(ctx, utils.ParseCandidates(text))
}

func (s *tournamentService) ListPlayers(ctx context.Context) []PlayerView {
	s.mu.Lock()
	defer s.mu.Unlock()

	players := s.tournament.Players()
	views := make([]PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, playerToView(p))
	}
	return views
}

func (s *tournamentService) GeneratePairings(ctx context.Context, strategy string) (*RoundView, error) {
	st := models.PairingStrategy(strategy)
	if !st.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStrategy, strategy)
	}

	s.mu.Lock()
	pairings, err := s.tournament.GeneratePairings(st)
	if err != nil {
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "pairing generation failed",
			slog.String("strategy", strategy), slog.Any("error", err))
		return nil, err
	}
	round := s.tournament.CurrentRound()
	s.strategies[round] = strategy
	view := &RoundView{Round: round, Strategy: strategy, Pairings: clonePairings(pairings)}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "pairings generated",
		slog.String("strategy", strategy),
		slog.Int("round", round),
		slog.Int("pairings", len(pairings)))
	s.broadcast(live.EventPairingsGenerated, view)
	return view, nil
}

func (s *tournamentService) RecordRoundResult(ctx context.Context, input RecordResultInput) error {
	s.mu.Lock()
	ok := s.tournament.RecordRoundResult(input.Round, input.Player1ID, input.Player2ID, input.Result)
	s.mu.Unlock()

	if !ok {
		return ErrResultNotRecorded
	}
	s.logger.InfoContext(ctx, "round result recorded",
		slog.Int("round", input.Round),
		slog.String("player1", input.Player1ID),
		slog.String("player2", input.Player2ID),
		slog.String("result", input.Result))
	s.broadcast(live.EventResultRecorded, input)
	return nil
}

func (s *tournamentService) RecordKnockoutResult(ctx context.Context, input RecordKnockoutResultInput) error {
	s.mu.Lock()
	ok := s.tournament.RecordKnockoutResult(input.Round, input.Player1ID, input.Player2ID, input.WinnerID)
	s.mu.Unlock()

	if !ok {
		return ErrResultNotRecorded
	}
	s.logger.InfoContext(ctx, "knockout result recorded",
		slog.Int("round", input.Round),
		slog.String("winner", input.WinnerID))
	s.broadcast(live.EventResultRecorded, input)
	return nil
}

func (s *tournamentService) ListRounds(ctx context.Context) []RoundView {
	s.mu.Lock()
	defer s.mu.Unlock()

	rounds := s.tournament.Rounds()
	views := make([]RoundView, 0, len(rounds))
	for _, r := range rounds {
		views = append(views, RoundView{
			Round:    r.Round,
			Strategy: s.strategies[r.Round],
			Pairings: clonePairings(r.Pairings),
		})
	}
	return views
}

func (s *tournamentService) GetRound(ctx context.Context, round int) (*RoundView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := s.tournament.Round(round)
	if r == nil {
		return nil, fmt.Errorf("%w: %d", ErrRoundNotFound, round)
	}
	return &RoundView{
		Round:    r.Round,
		Strategy: s.strategies[r.Round],
		Pairings: clonePairings(r.Pairings),
	}, nil
}

func (s *tournamentService) Standings(ctx context.Context, sortKey string) ([]models.PlayerStanding, error) {
	key, err := normalizeSortKey(sortKey)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tournament.Standings(key), nil
}

func (s *tournamentService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.tournament.Reset()
	s.strategies = make(map[int]string)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "tournament reset, players kept")
	s.broadcast(live.EventTournamentReset, nil)
}

func (s *tournamentService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.tournament.Clear()
	s.strategies = make(map[int]string)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "tournament cleared")
	s.broadcast(live.EventTournamentCleared, nil)
}

func normalizeSortKey(sortKey string) (string, error) {
	switch sortKey {
	case "", engine.SortByScore:
		return engine.SortByScore, nil
	case engine.SortByRating:
		return engine.SortByRating, nil
	case engine.SortByName:
		return engine.SortByName, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, sortKey)
}

// clonePairings глубоко копирует пары журнала, включая поля-указатели.
func clonePairings(pairings []*models.Pairing) []*models.Pairing {
	cloned := make([]*models.Pairing, 0, len(pairings))
	for _, p := range pairings {
		c := *p
		if p.Player2ID != nil {
			id := *p.Player2ID
			c.Player2ID = &id
		}
		if p.Result != nil {
			result := *p.Result
			c.Result = &result
		}
		if p.WinnerID != nil {
			id := *p.WinnerID
			c.WinnerID = &id
		}
		cloned = append(cloned, &c)
	}
	return cloned
}

func playerToView(p *models.Player) PlayerView {
	opponents := make([]string, 0, len(p.Opponents))
	for id := range p.Opponents {
		opponents = append(opponents, id)
	}
	sort.Strings(opponents)
	return PlayerView{
		ID:          p.ID,
		Rating:      p.Rating,
		Score:       p.Score(),
		Wins:        p.Wins,
		Losses:      p.Losses,
		Draws:       p.Draws,
		GamesPlayed: p.GamesPlayed(),
		Opponents:   opponents,
		Bye:         p.Bye,
		Eliminated:  p.Eliminated,
		LastResult:  p.LastResult,
	}
}
