package dto

type ConstraintDTO struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type RoadDTO struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance,omitempty"`
}

type PackageDTO struct {
	PackageID int    `json:"package_id"`
	Pickup    string `json:"pickup"`
	Delivery  string `json:"delivery"`
	Status    string `json:"status,omitempty"`
}

type PlanRequest struct {
	Start       string          `json:"start"`
	Locations   []string        `json:"locations"`
	Constraints []ConstraintDTO `json:"constraints"`
	ClosedRoads []RoadDTO       `json:"closed_roads"`
	Packages    []PackageDTO    `json:"packages"`
}

type ActionDTO struct {
	Kind      string `json:"kind"`
	Location  string `json:"location"`
	PackageID int    `json:"package_id,omitempty"`
}

type RouteResponse struct {
	Actions       []ActionDTO `json:"actions"`
	Locations     []string    `json:"locations"`
	TotalDistance float64     `json:"total_distance"`
}

type PlanFailureResponse struct {
	Error     string `json:"error"`
	Reason    string `json:"reason"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	PackageID int    `json:"package_id,omitempty"`
}
