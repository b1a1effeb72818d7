package dto

type NetworkLocation struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

type NetworkResponse struct {
	Hub       string            `json:"hub"`
	Locations []NetworkLocation `json:"locations"`
	Roads     []RoadDTO         `json:"roads"`
}
