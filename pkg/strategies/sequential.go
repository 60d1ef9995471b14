package strategies

import (
	"github.com/fadedpez/flotilla/pkg/entities"
)

// Sequential scans the board row by row, attacking every cell that is not
// one of its own ships and has not been attacked yet. It forfeits once no
// candidate cells remain.
type Sequential struct {
	player     entities.Player
	candidates []entities.Coordinate
	attacked   map[entities.Coordinate]bool
}

// NewSequential creates a sequential strategy playing the given side
func NewSequential(player entities.Player) *Sequential {
	return &Sequential{
		player:   player,
		attacked: make(map[entities.Coordinate]bool),
	}
}

// SetBoard records every enemy or water cell as a candidate target, in
// scan order
func (s *Sequential) SetBoard(matrix [][]rune, rows, cols int) {
	s.candidates = s.candidates[:0]
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !isOwnCell(matrix[r][c], s.player) {
				s.candidates = append(s.candidates, entities.Coordinate{Row: r, Col: c})
			}
		}
	}
}

// Attack returns the next unattacked candidate as a 1-based coordinate
func (s *Sequential) Attack() entities.Coordinate {
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

// NotifyOnAttackResult marks the attacked cell so it is never targeted again,
// whichever side attacked it
func (s *Sequential) NotifyOnAttackResult(attackingPlayer entities.Player, row, col int, outcome entities.AttackOutcome) {
	s.attacked[entities.Coordinate{Row: row, Col: col}] = true
}
