package handlers

import (
	"net/http"

	"github.com/Dosada05/pairing-system/services"
)

type StandingsHandler struct {
	tournamentService services.TournamentService
}

func NewStandingsHandler(ts services.TournamentService) *StandingsHandler {
	return &StandingsHandler{
		tournamentService: ts,
	}
}

// GetStandings обрабатывает GET /standings?sort=score|rating|name.
func (h *StandingsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")

	standings, err := h.tournamentService.Standings(r.Context(), sortKey)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"standings": standings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ExportStandings обрабатывает GET /standings/export: таблица в CSV.
func (h *StandingsHandler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")

	data, err := h.tournamentService.ExportStandingsCSV(r.Context(), sortKey)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="standings.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		serverErrorResponse(w, r, err)
	}
}
