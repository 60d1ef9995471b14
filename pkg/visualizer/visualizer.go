package visualizer

import (
	"fmt"
	"io"

	"github.com/fadedpez/flotilla/pkg/entities"
)

// BoardView is the read-only slice of a board the end-of-game rendering needs
type BoardView interface {
	PlayerShipCount(p entities.Player) int
}

// Visualizer renders the progress and final state of one match
type Visualizer interface {
	VisualizeAttackResults(attackingPlayer entities.Player, row, col int, outcome entities.AttackOutcome)
	VisualizeEndGame(board BoardView, playerAForfeited, playerBForfeited bool)
}

// Console writes a line per attack and a final summary to a writer
type Console struct {
	out io.Writer
}

// NewConsole creates a console visualizer writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// VisualizeAttackResults prints one attack
func (v *Console) VisualizeAttackResults(attackingPlayer entities.Player, row, col int, outcome entities.AttackOutcome) {
	fmt.Fprintf(v.out, "player %s attacks (%d, %d): %s\n", attackingPlayer, row+1, col+1, outcome)
}

// VisualizeEndGame prints the final state of the match
func (v *Console) VisualizeEndGame(board BoardView, playerAForfeited, playerBForfeited bool) {
	fmt.Fprintf(v.out, "game over: A has %d ships left (forfeited: %t), B has %d ships left (forfeited: %t)\n",
		board.PlayerShipCount(entities.PlayerA), playerAForfeited,
		board.PlayerShipCount(entities.PlayerB), playerBForfeited)
}

// Silent discards all rendering. Used when many matches run concurrently
// and per-attack output would interleave.
type Silent struct{}

// NewSilent creates a no-op visualizer
func NewSilent() *Silent {
	return &Silent{}
}

// VisualizeAttackResults is a no-op
func (v *Silent) VisualizeAttackResults(attackingPlayer entities.Player, row, col int, outcome entities.AttackOutcome) {
}

// VisualizeEndGame is a no-op
func (v *Silent) VisualizeEndGame(board BoardView, playerAForfeited, playerBForfeited bool) {
}
