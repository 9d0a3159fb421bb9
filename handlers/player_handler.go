package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/pairing-system/models"
	"github.com/Dosada05/pairing-system/services"
)

type PlayerHandler struct {
	tournamentService services.TournamentService
}

func NewPlayerHandler(ts services.TournamentService) *PlayerHandler {
	return &PlayerHandler{
		tournamentService: ts,
	}
}

// registerRequest принимает либо структурированные заявки, либо сырой
// текст списка игроков (одно из двух полей).
type registerRequest struct {
	Players []models.PlayerCandidate `json:"players,omitempty"`
	Text    string                   `json:"text,omitempty"`
}

// RegisterPlayers обрабатывает POST /players.
func (h *PlayerHandler) RegisterPlayers(w http.ResponseWriter, r *http.Request) {
	var input registerRequest
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if len(input.Players) == 0 && input.Text == "" {
		badRequestResponse(w, r, errors.New("either players or text must be provided"))
		return
	}

	var added int
	var err error
	if len(input.Players) > 0 {
		added, err = h.tournamentService.RegisterPlayers(r.Context(), input.Players)
	} else {
		added, err = h.tournamentService.RegisterFromText(r.Context(), input.Text)
	}
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"added": added}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListPlayers обрабатывает GET /players.
func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players := h.tournamentService.ListPlayers(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClearTournament обрабатывает DELETE /players: полный сброс турнира.
func (h *PlayerHandler) ClearTournament(w http.ResponseWriter, r *http.Request) {
	h.tournamentService.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
