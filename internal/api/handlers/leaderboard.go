package handlers

import (
	"log"
	"net/http"
	"strconv"

	"delivery-game-service/internal/api/dto"
	"delivery-game-service/internal/ports"
)

// LeaderboardHandler exposes read-only ranking retrieval.
type LeaderboardHandler struct {
	Repo ports.LeaderboardRepository
}

func (h *LeaderboardHandler) Top(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	entries, err := h.Repo.TopResults(r.Context(), limit)
	if err != nil {
		log.Printf("top results failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.LeaderboardResponse{
		Entries: make([]dto.LeaderboardEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		res.Entries = append(res.Entries, dto.LeaderboardEntryResponse{
			Player:          e.Player,
			Mode:            e.Mode,
			Score:           e.Score,
			Efficiency:      e.Efficiency,
			PlayerDistance:  e.PlayerDistance,
			DurationSeconds: e.DurationSeconds,
			CreatedAt:       e.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
