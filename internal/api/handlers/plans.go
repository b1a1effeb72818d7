package handlers

import (
	"errors"
	"net/http"

	"delivery-game-service/internal/api/dto"
	"delivery-game-service/internal/domain"
	"delivery-game-service/internal/netmap"
	"delivery-game-service/internal/planner"
	"delivery-game-service/internal/platform/obs"
)

// PlanHandler exposes the route planner directly: one synchronous planning
// call per request, over the static network plus the request's closure and
// package snapshot.
type PlanHandler struct {
	Planner *planner.Planner
	Network *netmap.Network
}

func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeStrict(r, &req) {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	start := domain.Location(req.Start)
	if start == "" {
		writeError(w, r, http.StatusBadRequest, "start is required")
		return
	}
	if _, ok := h.Network.Positions[start]; !ok {
		writeError(w, r, http.StatusBadRequest, "start is not a known location")
		return
	}

	required := make([]domain.Location, 0, len(req.Locations))
	for _, name := range req.Locations {
		loc := domain.Location(name)
		if _, ok := h.Network.Positions[loc]; !ok {
			writeError(w, r, http.StatusBadRequest, "unknown location "+name)
			return
		}
		required = append(required, loc)
	}
	if len(required) == 0 {
		required = h.Network.MainLocations()
	}

	planReq := planner.Request{
		Start:    start,
		Required: required,
	}
	for _, c := range req.Constraints {
		planReq.Constraints = append(planReq.Constraints, planner.Constraint{
			Before: domain.Location(c.Before),
			After:  domain.Location(c.After),
		})
	}
	for _, road := range req.ClosedRoads {
		planReq.ClosedEdges = append(planReq.ClosedEdges, domain.NewEdge(domain.Location(road.From), domain.Location(road.To)))
	}
	for _, p := range req.Packages {
		planReq.Packages = append(planReq.Packages, domain.Package{
			ID:       p.PackageID,
			Pickup:   domain.Location(p.Pickup),
			Delivery: domain.Location(p.Delivery),
			Status:   domain.PackageStatus(p.Status),
		})
	}

	var err error
	defer obs.Time("plan route")(&err)

	route, err := h.Planner.Plan(planReq)
	if err != nil {
		writeJSON(w, r, http.StatusUnprocessableEntity, planFailure(err))
		return
	}

	writeJSON(w, r, http.StatusOK, RouteToDTO(route))
}

// planFailure maps planner failure types onto the API error vocabulary.
func planFailure(err error) dto.PlanFailureResponse {
	var disconnected *planner.DisconnectedError
	if errors.As(err, &disconnected) {
		return dto.PlanFailureResponse{
			Error:  err.Error(),
			Reason: "disconnected",
			From:   string(disconnected.From),
			To:     string(disconnected.To),
		}
	}

	var undeliverable *planner.UndeliverableError
	if errors.As(err, &undeliverable) {
		return dto.PlanFailureResponse{
			Error:     err.Error(),
			Reason:    "package_undeliverable",
			PackageID: undeliverable.PackageID,
		}
	}

	if errors.Is(err, planner.ErrInfeasibleConstraints) {
		return dto.PlanFailureResponse{Error: err.Error(), Reason: "infeasible_constraints"}
	}

	return dto.PlanFailureResponse{Error: err.Error(), Reason: "planning_failed"}
}

// RouteToDTO converts a planned route for transport.
func RouteToDTO(route domain.Route) dto.RouteResponse {
	res := dto.RouteResponse{
		Actions:       make([]dto.ActionDTO, 0, len(route.Actions)),
		TotalDistance: route.Distance,
	}
	for _, a := range route.Actions {
		res.Actions = append(res.Actions, dto.ActionDTO{
			Kind:      string(a.Kind),
			Location:  string(a.Location),
			PackageID: a.PackageID,
		})
	}
	for _, loc := range route.Locations() {
		res.Locations = append(res.Locations, string(loc))
	}
	return res
}
