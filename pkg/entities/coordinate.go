package entities

// Coordinate is a board position. Strategies produce 1-based coordinates;
// the engine normalizes them to the board's 0-based indexing before an attack.
type Coordinate struct {
	Row int
	Col int
}

// ForfeitMove is the sentinel returned by a strategy that withdraws from
// the match instead of attacking.
var ForfeitMove = Coordinate{Row: -1, Col: -1}

// IsForfeit reports whether this move is the forfeit sentinel
func (c Coordinate) IsForfeit() bool {
	return c == ForfeitMove
}

// AttackOutcome classifies the result of a single attack
type AttackOutcome int

const (
	OutcomeMiss AttackOutcome = iota
	OutcomeHit
	OutcomeSink
)

// String returns the string representation of the outcome
func (o AttackOutcome) String() string {
	switch o {
	case OutcomeMiss:
		return "MISS"
	case OutcomeHit:
		return "HIT"
	case OutcomeSink:
		return "SINK"
	default:
		return "UNKNOWN"
	}
}

// Player identifies one of the two sides of a match
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

// Opponent returns the other side
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// String returns the string representation of the player
func (p Player) String() string {
	if p == PlayerA {
		return "A"
	}
	return "B"
}
