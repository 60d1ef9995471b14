package entities

import "time"

// MatchResult is produced exactly once per finished match. Ships are counted
// by their owner: a sunk piece always scores for the owner's opponent, even
// when a player sinks one of their own ships.
type MatchResult struct {
	MatchID          string
	Round            int
	PlayerAName      string
	PlayerBName      string
	PlayerAForfeited bool
	PlayerBForfeited bool
	ShipsLostByA     int
	ShipsLostByB     int
	ShipsLeftA       int
	ShipsLeftB       int
	CompletedAt      time.Time
}

// PointsFor returns the points the given side earned: one per enemy ship sunk
func (r *MatchResult) PointsFor(p Player) int {
	if p == PlayerA {
		return r.ShipsLostByB
	}
	return r.ShipsLostByA
}

// PointsAgainst returns the points conceded: one per own ship lost
func (r *MatchResult) PointsAgainst(p Player) int {
	if p == PlayerA {
		return r.ShipsLostByA
	}
	return r.ShipsLostByB
}

// IsLose reports whether the given side lost: it forfeited or ran out of
// ships. On a double forfeit both sides lose and neither wins.
func (r *MatchResult) IsLose(p Player) bool {
	if p == PlayerA {
		return r.PlayerAForfeited || r.ShipsLeftA == 0
	}
	return r.PlayerBForfeited || r.ShipsLeftB == 0
}

// IsWin reports whether the given side won
func (r *MatchResult) IsWin(p Player) bool {
	return !r.IsLose(p) && r.IsLose(p.Opponent())
}

// RoundResults is the published snapshot for one finished round: every
// player's statistics ordered by rating, best first. Immutable after
// construction and consumed at most once from the results queue.
type RoundResults struct {
	Round            int
	PlayerStatistics []PlayerStatistics
}
