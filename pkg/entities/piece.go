package entities

// GamePiece is a single ship on the board. LifeLeft counts the cells of the
// piece that have not been hit yet; the piece is sunk when it reaches zero.
type GamePiece struct {
	Owner    Player
	Size     int
	LifeLeft int
}

// IsSunk reports whether the piece has no cells left
func (p *GamePiece) IsSunk() bool {
	return p.LifeLeft == 0
}
