package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"delivery-game-service/internal/api/dto"
	"delivery-game-service/internal/netmap"
	"delivery-game-service/internal/planner"
)

func newPlanHandler() *PlanHandler {
	network := netmap.Default()
	return &PlanHandler{
		Planner: planner.New(network.Distances, planner.DefaultOptions()),
		Network: network,
	}
}

func postPlan(t *testing.T, h *PlanHandler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/plans", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	return rec
}

func TestPlanHandlerReturnsRoute(t *testing.T) {
	h := newPlanHandler()

	rec := postPlan(t, h, dto.PlanRequest{Start: "Factory"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Locations) == 0 || res.Locations[0] != "Factory" {
		t.Fatalf("locations = %v, want route starting at Factory", res.Locations)
	}
	if res.TotalDistance <= 0 {
		t.Fatalf("total distance = %v, want positive", res.TotalDistance)
	}
}

func TestPlanHandlerRejectsUnknownStart(t *testing.T) {
	h := newPlanHandler()

	rec := postPlan(t, h, dto.PlanRequest{Start: "Atlantis"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanHandlerRejectsWrongMethod(t *testing.T) {
	h := newPlanHandler()

	req := httptest.NewRequest(http.MethodGet, "/plans", nil)
	rec := httptest.NewRecorder()
	h.Plan(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestPlanHandlerMapsInfeasibleConstraints(t *testing.T) {
	h := newPlanHandler()

	rec := postPlan(t, h, dto.PlanRequest{
		Start: "Factory",
		Constraints: []dto.ConstraintDTO{
			{Before: "Factory", After: "Shop"},
			{Before: "Shop", After: "Factory"},
		},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var res dto.PlanFailureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Reason != "infeasible_constraints" {
		t.Fatalf("reason = %q, want infeasible_constraints", res.Reason)
	}
}

func TestPlanHandlerMapsDisconnection(t *testing.T) {
	h := newPlanHandler()

	// Close every road touching the Shop.
	rec := postPlan(t, h, dto.PlanRequest{
		Start: "Factory",
		ClosedRoads: []dto.RoadDTO{
			{From: "Shop", To: "Factory"},
			{From: "Shop", To: "DHL Hub"},
			{From: "Shop", To: "Residence"},
			{From: "Shop", To: "Central Hub"},
		},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	var res dto.PlanFailureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Reason != "disconnected" {
		t.Fatalf("reason = %q, want disconnected", res.Reason)
	}
	if res.From != "Shop" && res.To != "Shop" {
		t.Fatalf("disconnection %+v does not involve the Shop", res)
	}
}
