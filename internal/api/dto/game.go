package dto

type StartGameRequest struct {
	Player string `json:"player"`
	Mode   string `json:"mode"`
}

type CheckInRequest struct {
	GameID   string `json:"game_id"`
	Location string `json:"location"`
}

type PickupRequest struct {
	GameID    string `json:"game_id"`
	PackageID int    `json:"package_id"`
}

type DeliverRequest struct {
	GameID string `json:"game_id"`
}

type RoadActionRequest struct {
	GameID string `json:"game_id"`
}

type RoadActionResponse struct {
	Changed bool         `json:"changed"`
	Game    GameResponse `json:"game"`
}

type ResultsResponse struct {
	DurationSeconds float64            `json:"duration_seconds"`
	Efficiency      int                `json:"efficiency"`
	Score           int                `json:"score"`
	OptimalDistance float64            `json:"optimal_distance"`
	PlayerDistance  float64            `json:"player_distance"`
	ScoreComponents map[string]float64 `json:"score_components"`
}

type GameResponse struct {
	GameID       string           `json:"game_id"`
	Player       string           `json:"player"`
	Mode         string           `json:"mode"`
	Start        string           `json:"start"`
	Route        []string         `json:"route"`
	Constraints  []ConstraintDTO  `json:"constraints"`
	ClosedRoads  []RoadDTO        `json:"closed_roads"`
	Packages     []PackageDTO     `json:"packages"`
	CarriedID    int              `json:"carried_package_id,omitempty"`
	Active       bool             `json:"active"`
	PlannedRoute *RouteResponse   `json:"planned_route,omitempty"`
	PlanFailure  string           `json:"plan_failure,omitempty"`
	Results      *ResultsResponse `json:"results,omitempty"`
}
