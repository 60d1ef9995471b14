package results

import (
	"time"
)

// ESRoundResults represents a published round document in Elasticsearch
type ESRoundResults struct {
	Round       int                `json:"round"`
	PublishedAt time.Time          `json:"published_at"`
	Standings   []ESPlayerStanding `json:"standings"`
}

// ESPlayerStanding represents one player's line in a round document
type ESPlayerStanding struct {
	PlayerName    string  `json:"player_name"`
	Position      int     `json:"position"`
	PointsFor     int     `json:"points_for"`
	PointsAgainst int     `json:"points_against"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Rating        float64 `json:"rating"`
}

// ESMatchResult represents a finished match document in Elasticsearch
type ESMatchResult struct {
	MatchID          string    `json:"match_id"`
	Round            int       `json:"round"`
	PlayerA          string    `json:"player_a"`
	PlayerB          string    `json:"player_b"`
	PlayerAForfeited bool      `json:"player_a_forfeited"`
	PlayerBForfeited bool      `json:"player_b_forfeited"`
	ShipsLostByA     int       `json:"ships_lost_by_a"`
	ShipsLostByB     int       `json:"ships_lost_by_b"`
	ShipsLeftA       int       `json:"ships_left_a"`
	ShipsLeftB       int       `json:"ships_left_b"`
	CompletedAt      time.Time `json:"completed_at"`
}
