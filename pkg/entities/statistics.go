package entities

// PlayerStatistics represents a player's cumulative tournament record.
// Values are immutable: UpdateStatistics returns a fresh instance and the
// scoreboard replaces its entry instead of mutating in place.
type PlayerStatistics struct {
	PlayerName    string
	PointsFor     int
	PointsAgainst int
	Wins          int
	Losses        int
	Rating        float64
}

// NewPlayerStatistics creates a zeroed record for a player
func NewPlayerStatistics(playerName string) PlayerStatistics {
	return PlayerStatistics{
		PlayerName: playerName,
	}
}

// UpdateStatistics returns a new record with the deltas from one finished
// match applied. It is a pure function of the receiver and its arguments.
func (s PlayerStatistics) UpdateStatistics(addedPointsFor, addedPointsAgainst int, isWin, isLose bool) PlayerStatistics {
	updated := PlayerStatistics{
		PlayerName:    s.PlayerName,
		PointsFor:     s.PointsFor + addedPointsFor,
		PointsAgainst: s.PointsAgainst + addedPointsAgainst,
		Wins:          s.Wins,
		Losses:        s.Losses,
	}
	if isWin {
		updated.Wins++
	}
	if isLose {
		updated.Losses++
	}
	updated.Rating = calculateRating(updated.Wins, updated.Losses, updated.PointsFor, updated.PointsAgainst)
	return updated
}

// calculateRating derives the ranking scalar: monotonic in wins and in
// point differential, wins dominating.
func calculateRating(wins, losses, pointsFor, pointsAgainst int) float64 {
	return float64(wins)*100.0 - float64(losses)*50.0 + float64(pointsFor-pointsAgainst)
}
