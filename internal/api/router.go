package api

import (
	"net/http"

	"delivery-game-service/internal/api/handlers"
	"delivery-game-service/internal/game"
	"delivery-game-service/internal/netmap"
	"delivery-game-service/internal/planner"
	"delivery-game-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(engine *game.Engine, pl *planner.Planner, network *netmap.Network, board ports.LeaderboardRepository) http.Handler {
	mux := http.NewServeMux()

	gameHandler := &handlers.GameHandler{Engine: engine}
	planHandler := &handlers.PlanHandler{Planner: pl, Network: network}
	networkHandler := &handlers.NetworkHandler{Network: network}
	boardHandler := &handlers.LeaderboardHandler{Repo: board}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/network", networkHandler.Get)
	mux.HandleFunc("/plans", planHandler.Plan)
	mux.HandleFunc("/games", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gameHandler.Status(w, r)
			return
		}
		gameHandler.Start(w, r)
	})
	mux.HandleFunc("/games/checkin", gameHandler.CheckIn)
	mux.HandleFunc("/games/pickup", gameHandler.Pickup)
	mux.HandleFunc("/games/deliver", gameHandler.Deliver)
	mux.HandleFunc("/games/roads/close", gameHandler.CloseRoad)
	mux.HandleFunc("/games/roads/reopen", gameHandler.ReopenRoad)
	mux.HandleFunc("/leaderboard", boardHandler.Top)

	return requestLogger(mux)
}
