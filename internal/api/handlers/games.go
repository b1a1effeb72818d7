package handlers

import (
	"errors"
	"log"
	"net/http"

	"delivery-game-service/internal/api/dto"
	"delivery-game-service/internal/domain"
	"delivery-game-service/internal/game"
)

// GameHandler exposes the game loop: start, status, check-in and package
// actions. All state lives in the engine; handlers only translate.
type GameHandler struct {
	Engine *game.Engine
}

func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.StartGameRequest
	if !decodeStrict(r, &req) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.Player == "" {
		writeError(w, r, http.StatusBadRequest, "player is required")
		return
	}

	session, err := h.Engine.StartNewGame(req.Player, game.Mode(req.Mode))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusCreated, sessionToDTO(session))
}

func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}

	id := r.URL.Query().Get("game_id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "game_id is required")
		return
	}

	session, err := h.Engine.Session(id)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionToDTO(session))
}

func (h *GameHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CheckInRequest
	if !decodeStrict(r, &req) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	session, err := h.Engine.CheckIn(r.Context(), req.GameID, domain.Location(req.Location))
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionToDTO(session))
}

func (h *GameHandler) Pickup(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PickupRequest
	if !decodeStrict(r, &req) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	session, err := h.Engine.PickupPackage(req.GameID, req.PackageID)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionToDTO(session))
}

func (h *GameHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DeliverRequest
	if !decodeStrict(r, &req) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	session, err := h.Engine.DeliverPackage(r.Context(), req.GameID)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, sessionToDTO(session))
}

// CloseRoad closes one more random road mid-game and replans the reference
// route. Responds with changed=false when no closure can keep the game playable.
func (h *GameHandler) CloseRoad(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RoadActionRequest
	if !decodeStrict(r, &req) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	session, changed, err := h.Engine.CloseRandomRoad(req.GameID)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.RoadActionResponse{Changed: changed, Game: sessionToDTO(session)})
}

// ReopenRoad removes one random closure and replans.
func (h *GameHandler) ReopenRoad(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RoadActionRequest
	if !decodeStrict(r, &req) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	session, changed, err := h.Engine.ReopenRandomRoad(req.GameID)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.RoadActionResponse{Changed: changed, Game: sessionToDTO(session)})
}

func (h *GameHandler) writeGameError(w http.ResponseWriter, r *http.Request, err error) {
	var move *game.MoveError
	switch {
	case errors.Is(err, game.ErrSessionNotFound):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrGameOver):
		writeError(w, r, http.StatusConflict, err.Error())
	case errors.As(err, &move):
		writeError(w, r, http.StatusUnprocessableEntity, move.Reason)
	default:
		log.Printf("game action failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func sessionToDTO(s *game.Session) dto.GameResponse {
	res := dto.GameResponse{
		GameID:      s.ID,
		Player:      s.Player,
		Mode:        string(s.Mode),
		Start:       string(s.Start),
		Route:       make([]string, 0, len(s.Route)),
		CarriedID:   s.CarriedID,
		Active:      s.Active,
		PlanFailure: s.PlanFailure,
	}
	for _, loc := range s.Route {
		res.Route = append(res.Route, string(loc))
	}
	for _, c := range s.Constraints {
		res.Constraints = append(res.Constraints, dto.ConstraintDTO{Before: string(c.Before), After: string(c.After)})
	}
	for _, e := range s.ClosedRoads {
		res.ClosedRoads = append(res.ClosedRoads, dto.RoadDTO{From: string(e.A), To: string(e.B)})
	}
	for _, p := range s.Packages {
		res.Packages = append(res.Packages, dto.PackageDTO{
			PackageID: p.ID,
			Pickup:    string(p.Pickup),
			Delivery:  string(p.Delivery),
			Status:    string(p.Status),
		})
	}
	if len(s.Planned.Actions) > 0 {
		planned := RouteToDTO(s.Planned)
		res.PlannedRoute = &planned
	}
	if s.Results != nil {
		res.Results = &dto.ResultsResponse{
			DurationSeconds: s.Results.DurationSeconds,
			Efficiency:      s.Results.Efficiency,
			Score:           s.Results.Score,
			OptimalDistance: s.Results.OptimalDistance,
			PlayerDistance:  s.Results.PlayerDistance,
			ScoreComponents: s.Results.ScoreComponents,
		}
	}
	return res
}
