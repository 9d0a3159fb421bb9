package routes

import (
	"github.com/Dosada05/pairing-system/handlers"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func SetupRoutes(
	router *chi.Mux,
	allowedOrigins []string,
	playerHandler *handlers.PlayerHandler,
	pairingHandler *handlers.PairingHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Route("/players", func(r chi.Router) {
		r.Post("/", playerHandler.RegisterPlayers)
		r.Get("/", playerHandler.ListPlayers)
		r.Delete("/", playerHandler.ClearTournament)
	})

	router.Route("/rounds", func(r chi.Router) {
		r.Post("/", pairingHandler.GeneratePairings)
		r.Get("/", pairingHandler.ListRounds)
		r.Get("/{round}", pairingHandler.GetRound)
		r.Post("/{round}/result", pairingHandler.RecordResult)
		r.Post("/{round}/knockout-result", pairingHandler.RecordKnockoutResult)
	})

	router.Route("/standings", func(r chi.Router) {
		r.Get("/", standingsHandler.GetStandings)
		r.Get("/export", standingsHandler.ExportStandings)
	})

	router.Post("/reset", pairingHandler.ResetTournament)

	router.Get("/ws", webSocketHandler.ServeWs)
}
