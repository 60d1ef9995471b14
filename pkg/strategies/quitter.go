package strategies

import (
	"github.com/fadedpez/flotilla/pkg/entities"
)

// Quitter wraps another strategy and forfeits after a fixed number of
// moves. With zero moves it forfeits immediately.
type Quitter struct {
	inner     Strategy
	movesLeft int
}

// NewQuitter wraps inner so it forfeits after movesBeforeForfeit attacks
func NewQuitter(inner Strategy, movesBeforeForfeit int) *Quitter {
	return &Quitter{
		inner:     inner,
		movesLeft: movesBeforeForfeit,
	}
}

// SetBoard delegates to the wrapped strategy
func (s *Quitter) SetBoard(matrix [][]rune, rows, cols int) {
	s.inner.SetBoard(matrix, rows, cols)
}

// Attack delegates until the move budget runs out, then forfeits
func (s *Quitter) Attack() entities.Coordinate {
	if s.movesLeft <= 0 {
		return entities.ForfeitMove
	}
	s.movesLeft--
	return s.inner.Attack()
}

// NotifyOnAttackResult delegates to the wrapped strategy
func (s *Quitter) NotifyOnAttackResult(attackingPlayer entities.Player, row, col int, outcome entities.AttackOutcome) {
	s.inner.NotifyOnAttackResult(attackingPlayer, row, col, outcome)
}
