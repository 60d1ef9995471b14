package strategies

import (
	"unicode"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// Strategy decides a player's moves and receives the result of every attack
// in the match, including the opponent's. Attack returns a 1-based
// coordinate, or entities.ForfeitMove to withdraw from the match.
type Strategy interface {
	SetBoard(matrix [][]rune, rows, cols int)
	Attack() entities.Coordinate
	NotifyOnAttackResult(attackingPlayer entities.Player, row, col int, outcome entities.AttackOutcome)
}

// isOwnCell reports whether the layout cell belongs to the given side.
// Player A owns uppercase letters, player B lowercase.
func isOwnCell(cell rune, p entities.Player) bool {
	if !unicode.IsLetter(cell) {
		return false
	}
	if p == entities.PlayerA {
		return unicode.IsUpper(cell)
	}
	return unicode.IsLower(cell)
}
