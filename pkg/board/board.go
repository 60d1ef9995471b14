package board

import (
	"errors"
	"unicode"

	"github.com/fadedpez/flotilla/pkg/entities"
)

var (
	ErrEmptyLayout  = errors.New("board layout is empty")
	ErrRaggedLayout = errors.New("board layout rows have differing lengths")
)

// EmptyCell marks a water cell in the layout matrix
const EmptyCell = ' '

// Board holds one match's shared play area: the initial layout matrix plus
// live piece bookkeeping. Both players' ships sit on the same board and
// either player may attack any cell. A board is owned by exactly one match
// for the match's duration and is not safe for concurrent use.
type Board struct {
	matrix    [][]rune
	rows      int
	cols      int
	pieces    map[entities.Coordinate]*entities.GamePiece
	shipCount map[entities.Player]int
}

// NewFromLayout builds a board from layout rows. Uppercase letters are
// player A's ships, lowercase letters player B's; anything else is water.
// Adjacent cells holding the same letter form a single piece.
func NewFromLayout(lines []string) (*Board, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}

	matrix := make([][]rune, len(lines))
	cols := len([]rune(lines[0]))
	for i, line := range lines {
		row := []rune(line)
		if len(row) != cols {
			return nil, ErrRaggedLayout
		}
		matrix[i] = row
	}

	b := &Board{
		matrix: matrix,
		rows:   len(matrix),
		cols:   cols,
		pieces: make(map[entities.Coordinate]*entities.GamePiece),
		shipCount: map[entities.Player]int{
			entities.PlayerA: 0,
			entities.PlayerB: 0,
		},
	}
	b.collectPieces()

	return b, nil
}

// collectPieces groups adjacent same-letter cells into pieces and indexes
// every occupied cell to its piece
func (b *Board) collectPieces() {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			cell := entities.Coordinate{Row: r, Col: c}
			if b.pieces[cell] != nil || !isShipCell(b.matrix[r][c]) {
				continue
			}

			owner := cellOwner(b.matrix[r][c])
			piece := &entities.GamePiece{Owner: owner}
			b.floodFill(r, c, b.matrix[r][c], piece)
			piece.LifeLeft = piece.Size
			b.shipCount[owner]++
		}
	}
}

// floodFill walks the 4-connected run of identical letters starting at
// (r, c), attaching each cell to the piece
func (b *Board) floodFill(r, c int, letter rune, piece *entities.GamePiece) {
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		return
	}
	cell := entities.Coordinate{Row: r, Col: c}
	if b.matrix[r][c] != letter || b.pieces[cell] != nil {
		return
	}

	b.pieces[cell] = piece
	piece.Size++

	b.floodFill(r-1, c, letter, piece)
	b.floodFill(r+1, c, letter, piece)
	b.floodFill(r, c-1, letter, piece)
	b.floodFill(r, c+1, letter, piece)
}

// ExecuteAttack resolves an attack at a 0-based coordinate. It returns the
// affected piece with its life already decremented, or nil on a miss.
// A cell that was already hit counts as a miss; the piece's owner loses a
// ship the moment its life reaches zero.
func (b *Board) ExecuteAttack(target entities.Coordinate) *entities.GamePiece {
	piece, ok := b.pieces[target]
	if !ok {
		return nil
	}

	// Each cell is only ever good for one hit
	delete(b.pieces, target)

	piece.LifeLeft--
	if piece.IsSunk() {
		b.shipCount[piece.Owner]--
	}
	return piece
}

// PlayerShipCount returns how many of the player's ships are still afloat
func (b *Board) PlayerShipCount(p entities.Player) int {
	return b.shipCount[p]
}

// Matrix returns a copy of the initial layout. The copy never reflects
// attacks; strategies receive it once at match start.
func (b *Board) Matrix() [][]rune {
	matrix := make([][]rune, b.rows)
	for i, row := range b.matrix {
		matrix[i] = make([]rune, len(row))
		copy(matrix[i], row)
	}
	return matrix
}

// Rows returns the board height
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width
func (b *Board) Cols() int {
	return b.cols
}

// Clone builds an independent board with the same initial layout, ready for
// a fresh match
func (b *Board) Clone() *Board {
	lines := make([]string, b.rows)
	for i, row := range b.matrix {
		lines[i] = string(row)
	}
	clone, _ := NewFromLayout(lines) // the layout already parsed once
	return clone
}

func isShipCell(r rune) bool {
	return unicode.IsLetter(r)
}

func cellOwner(r rune) entities.Player {
	if unicode.IsUpper(r) {
		return entities.PlayerA
	}
	return entities.PlayerB
}
