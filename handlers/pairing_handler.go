package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/pairing-system/engine"
	"github.com/Dosada05/pairing-system/services"
)

type PairingHandler struct {
	tournamentService services.TournamentService
}

func NewPairingHandler(ts services.TournamentService) *PairingHandler {
	return &PairingHandler{
		tournamentService: ts,
	}
}

type generateRequest struct {
	Strategy string `json:"strategy"`
}

// GeneratePairings обрабатывает POST /rounds: жеребьёвка очередного тура.
// Завершённый нокаут отвечает 200 с id чемпиона вместо нового тура.
func (h *PairingHandler) GeneratePairings(w http.ResponseWriter, r *http.Request) {
	var input generateRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Strategy == "" {
		badRequestResponse(w, r, errors.New("strategy is required"))
		return
	}

	round, err := h.tournamentService.GeneratePairings(r.Context(), input.Strategy)
	if err != nil {
		var champion *engine.ChampionDecidedError
		if errors.As(err, &champion) {
			if err := writeJSON(w, http.StatusOK, jsonResponse{
				"champion": champion.WinnerID,
				"message":  "tournament complete",
			}, nil); err != nil {
				serverErrorResponse(w, r, err)
			}
			return
		}
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"round": round}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListRounds обрабатывает GET /rounds: журнал всех туров.
func (h *PairingHandler) ListRounds(w http.ResponseWriter, r *http.Request) {
	rounds := h.tournamentService.ListRounds(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"rounds": rounds}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetRound обрабатывает GET /rounds/{round}.
func (h *PairingHandler) GetRound(w http.ResponseWriter, r *http.Request) {
	roundNumber, err := getRoundFromURL(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	round, err := h.tournamentService.GetRound(r.Context(), roundNumber)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"round": round}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type recordResultRequest struct {
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id,omitempty"`
	Result    string `json:"result"`
}

// RecordResult обрабатывает POST /rounds/{round}/result
// (швейцарка и круговой турнир).
func (h *PairingHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	roundNumber, err := getRoundFromURL(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input recordResultRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Player1ID == "" {
		badRequestResponse(w, r, errors.New("player1_id is required"))
		return
	}

	err = h.tournamentService.RecordRoundResult(r.Context(), services.RecordResultInput{
		Round:     roundNumber,
		Player1ID: input.Player1ID,
		Player2ID: input.Player2ID,
		Result:    input.Result,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"recorded": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type recordKnockoutRequest struct {
	Player1ID string `json:"player1_id"`
	Player2ID string `json:"player2_id,omitempty"`
	WinnerID  string `json:"winner_id"`
}

// RecordKnockoutResult обрабатывает POST /rounds/{round}/knockout-result.
func (h *PairingHandler) RecordKnockoutResult(w http.ResponseWriter, r *http.Request) {
	roundNumber, err := getRoundFromURL(r, "round")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input recordKnockoutRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if input.Player1ID == "" {
		badRequestResponse(w, r, errors.New("player1_id is required"))
		return
	}

	err = h.tournamentService.RecordKnockoutResult(r.Context(), services.RecordKnockoutResultInput{
		Round:     roundNumber,
		Player1ID: input.Player1ID,
		Player2ID: input.Player2ID,
		WinnerID:  input.WinnerID,
	})
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"recorded": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ResetTournament обрабатывает POST /reset: очищает туры и результаты,
// сохраняя игроков и их рейтинги.
func (h *PairingHandler) ResetTournament(w http.ResponseWriter, r *http.Request) {
	h.tournamentService.Reset(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
