package strategies

import (
	"math/rand"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// Random attacks unattacked non-own cells in a shuffled order. A fixed seed
// makes a match replayable.
type Random struct {
	player     entities.Player
	rng        *rand.Rand
	candidates []entities.Coordinate
	attacked   map[entities.Coordinate]bool
}

// NewRandom creates a random strategy playing the given side
func NewRandom(player entities.Player, seed int64) *Random {
	return &Random{
		player:   player,
		rng:      rand.New(rand.NewSource(seed)),
		attacked: make(map[entities.Coordinate]bool),
	}
}

// SetBoard collects candidate targets and shuffles them once
func (s *Random) SetBoard(matrix [][]rune, rows, cols int) {
	s.candidates = s.candidates[:0]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !isOwnCell(matrix[r][c], s.player) {
				s.candidates = append(s.candidates, entities.Coordinate{Row: r, Col: c})
			}
		}
	}
	s.rng.Shuffle(len(s.candidates), func(i, j int) {
		s.candidates[i], s.candidates[j] = s.candidates[j], s.candidates[i]
	})
}

// Attack pops the next unattacked candidate as a 1-based coordinate,
// forfeiting when none remain
func (s *Random) Attack() entities.Coordinate {
	for len(s.candidates) > 0 {
		next := s.candidates[0]
		s.candidates = s.candidates[1:]
		if s.attacked[next] {
			continue
		}
		s.attacked[next] = true
		return entities.Coordinate{Row: next.Row + 1, Col: next.Col + 1}
	}
	return entities.ForfeitMove
}

// NotifyOnAttackResult marks the attacked cell so it is never targeted again
func (s *Random) NotifyOnAttackResult(attackingPlayer entities.Player, row, col int, outcome entities.AttackOutcome) {
	s.attacked[entities.Coordinate{Row: row, Col: col}] = true
}
