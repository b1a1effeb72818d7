package dto

import "time"

type LeaderboardEntryResponse struct {
	Player          string    `json:"player"`
	Mode            string    `json:"mode"`
	Score           int       `json:"score"`
	Efficiency      int       `json:"efficiency"`
	PlayerDistance  float64   `json:"player_distance"`
	DurationSeconds float64   `json:"duration_seconds"`
	CreatedAt       time.Time `json:"created_at"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
}
