package handlers

import (
	"net/http"

	"delivery-game-service/internal/api/dto"
	"delivery-game-service/internal/netmap"
)

// NetworkHandler exports the static topology for the rendering layer.
type NetworkHandler struct {
	Network *netmap.Network
}

func (h *NetworkHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	res := dto.NetworkResponse{Hub: string(h.Network.Hub)}
	for _, loc := range h.Network.Locations() {
		pos := h.Network.Positions[loc]
		res.Locations = append(res.Locations, dto.NetworkLocation{Name: string(loc), X: pos.X, Y: pos.Y})
	}
	for _, e := range h.Network.Segments() {
		res.Roads = append(res.Roads, dto.RoadDTO{
			From:     string(e.A),
			To:       string(e.B),
			Distance: h.Network.Distances[e],
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
