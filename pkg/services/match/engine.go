package match

import (
	"time"

	"github.com/google/uuid"

	"github.com/fadedpez/flotilla/pkg/entities"
	"github.com/fadedpez/flotilla/pkg/strategies"
	"github.com/fadedpez/flotilla/pkg/visualizer"
)

// State is the engine's lifecycle state
type State string

const (
	StateInProgress State = "IN_PROGRESS"
	StateGameOver   State = "GAME_OVER"
)

// Board is the slice of the board the engine drives a match against.
// The board is the authority on coordinate validity and repeat attacks;
// the engine does not duplicate those checks.
type Board interface {
	ExecuteAttack(target entities.Coordinate) *entities.GamePiece
	PlayerShipCount(p entities.Player) int
	Matrix() [][]rune
	Rows() int
	Cols() int
}

// Engine drives one match between two strategies over a privately owned
// board. It runs to completion on its caller's goroutine and produces
// exactly one MatchResult.
type Engine struct {
	board       Board
	playerA     strategies.Strategy
	playerB     strategies.Strategy
	playerAName string
	playerBName string
	round       int
	vis         visualizer.Visualizer
	state       State
}

// NewEngine creates an engine for one match in the given round
func NewEngine(b Board, playerA, playerB strategies.Strategy, playerAName, playerBName string, round int, vis visualizer.Visualizer) *Engine {
	return &Engine{
		board:       b,
		playerA:     playerA,
		playerB:     playerB,
		playerAName: playerAName,
		playerBName: playerBName,
		round:       round,
		vis:         vis,
		state:       StateInProgress,
	}
}

// State returns the engine's lifecycle state
func (e *Engine) State() State {
	return e.state
}

// Run plays the match to completion. Turns alternate starting with player A;
// a hit or a sink leaves the turn with the attacker, a miss or a forfeit
// passes it. The match ends when both players have forfeited or either side
// has no ships left.
func (e *Engine) Run() *entities.MatchResult {
	matrix := e.board.Matrix()
	e.playerA.SetBoard(matrix, e.board.Rows(), e.board.Cols())
	e.playerB.SetBoard(matrix, e.board.Rows(), e.board.Cols())

	current := entities.PlayerA
	isPlayerAForfeit := false
	isPlayerBForfeit := false
	shipsLostByA := 0
	shipsLostByB := 0

	for !e.isGameOver(isPlayerAForfeit, isPlayerBForfeit) {
		target := e.strategyFor(current).Attack()

		if target.IsForfeit() {
			// From now on this player is out of moves for good
			if current == entities.PlayerA {
				isPlayerAForfeit = true
			} else {
				isPlayerBForfeit = true
			}
			current = switchPlayerTurns(current, isPlayerAForfeit, isPlayerBForfeit)
			continue
		}

		// Normalize to the board's 0-based indexing
		target.Row--
		target.Col--

		attackedPiece := e.board.ExecuteAttack(target)
		attackingPlayer := current

		var outcome entities.AttackOutcome
		switch {
		case attackedPiece == nil:
			outcome = entities.OutcomeMiss
			current = switchPlayerTurns(current, isPlayerAForfeit, isPlayerBForfeit)
		case attackedPiece.IsSunk():
			outcome = entities.OutcomeSink
			// Sunk ships score for the owner's opponent, even on an own goal
			if attackedPiece.Owner == entities.PlayerA {
				shipsLostByA++
			} else {
				shipsLostByB++
			}
		default:
			outcome = entities.OutcomeHit
		}

		e.playerA.NotifyOnAttackResult(attackingPlayer, target.Row, target.Col, outcome)
		e.playerB.NotifyOnAttackResult(attackingPlayer, target.Row, target.Col, outcome)
		e.vis.VisualizeAttackResults(attackingPlayer, target.Row, target.Col, outcome)
	}

	e.state = StateGameOver
	e.vis.VisualizeEndGame(e.board, isPlayerAForfeit, isPlayerBForfeit)

	return &entities.MatchResult{
		MatchID:          uuid.NewString(),
		Round:            e.round,
		PlayerAName:      e.playerAName,
		PlayerBName:      e.playerBName,
		PlayerAForfeited: isPlayerAForfeit,
		PlayerBForfeited: isPlayerBForfeit,
		ShipsLostByA:     shipsLostByA,
		ShipsLostByB:     shipsLostByB,
		ShipsLeftA:       e.board.PlayerShipCount(entities.PlayerA),
		ShipsLeftB:       e.board.PlayerShipCount(entities.PlayerB),
		CompletedAt:      time.Now(),
	}
}

func (e *Engine) strategyFor(p entities.Player) strategies.Strategy {
	if p == entities.PlayerA {
		return e.playerA
	}
	return e.playerB
}

// isGameOver checks termination against the live board. Ship counts are the
// board's concern and are queried fresh on every check, never cached.
func (e *Engine) isGameOver(isPlayerAForfeit, isPlayerBForfeit bool) bool {
	if isPlayerAForfeit && isPlayerBForfeit {
		return true
	}
	return e.board.PlayerShipCount(entities.PlayerA) == 0 ||
		e.board.PlayerShipCount(entities.PlayerB) == 0
}

// switchPlayerTurns picks who moves next: prefer handing the turn to the
// opponent, fall back to whichever side has not forfeited. When both have
// forfeited the game is over regardless, so B is a don't-care default.
func switchPlayerTurns(current entities.Player, isPlayerAForfeit, isPlayerBForfeit bool) entities.Player {
	if current == entities.PlayerA && !isPlayerBForfeit {
		return entities.PlayerB
	}
	if !isPlayerAForfeit {
		return entities.PlayerA
	}
	return entities.PlayerB
}
