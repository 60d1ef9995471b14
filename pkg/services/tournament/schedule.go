package tournament

import (
	"github.com/fadedpez/flotilla/pkg/entities"
	"github.com/fadedpez/flotilla/pkg/strategies"
)

// Contender is one tournament entrant: a name plus a factory producing a
// fresh strategy instance for each match it plays
type Contender struct {
	Name        string
	NewStrategy func(side entities.Player) strategies.Strategy
}

// Match is one scheduled pairing
type Match struct {
	Round   int
	PlayerA Contender
	PlayerB Contender
}

// Schedule builds a round-robin schedule with the circle method: every
// contender meets every other exactly once, playing at most one match per
// round. Odd rosters get a bye, so each contender is enlisted in
// len(roster)-1 matches either way.
func Schedule(roster []Contender) []Match {
	contenders := append([]Contender(nil), roster...)
	if len(contenders)%2 == 1 {
		contenders = append(contenders, Contender{}) // bye slot
	}

	n := len(contenders)
	var matches []Match
	for round := 1; round < n; round++ {
		for i := 0; i < n/2; i++ {
			a, b := contenders[i], contenders[n-1-i]
			if a.Name == "" || b.Name == "" {
				continue // bye
			}
			matches = append(matches, Match{Round: round, PlayerA: a, PlayerB: b})
		}

		// Rotate everybody but the first slot
		last := contenders[n-1]
		copy(contenders[2:], contenders[1:n-1])
		contenders[1] = last
	}
	return matches
}

// Rounds returns the highest round number in the schedule
func Rounds(matches []Match) int {
	rounds := 0
	for _, m := range matches {
		if m.Round > rounds {
			rounds = m.Round
		}
	}
	return rounds
}
