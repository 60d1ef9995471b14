package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fadedpez/flotilla/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLayout has two ships for A (B=2 cells, C=1 cell) and two for B
// (d=2 cells, e=1 cell)
var testLayout = []string{
	"BB  ",
	"   d",
	"C  d",
	"  e ",
}

func newTestBoard(t *testing.T) *Board {
	b, err := NewFromLayout(testLayout)
	require.NoError(t, err)
	return b
}

func TestNewFromLayout(t *testing.T) {
	b := newTestBoard(t)

	assert.Equal(t, 4, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, 2, b.PlayerShipCount(entities.PlayerA))
	assert.Equal(t, 2, b.PlayerShipCount(entities.PlayerB))
}

func TestNewFromLayoutErrors(t *testing.T) {
	_, err := NewFromLayout(nil)
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = NewFromLayout([]string{"AB", "A"})
	assert.ErrorIs(t, err, ErrRaggedLayout)
}

func TestExecuteAttackMiss(t *testing.T) {
	b := newTestBoard(t)

	piece := b.ExecuteAttack(entities.Coordinate{Row: 0, Col: 2})

	assert.Nil(t, piece)
	assert.Equal(t, 2, b.PlayerShipCount(entities.PlayerA))
}

func TestExecuteAttackHitThenSink(t *testing.T) {
	b := newTestBoard(t)

	piece := b.ExecuteAttack(entities.Coordinate{Row: 0, Col: 0})
	require.NotNil(t, piece)
	assert.Equal(t, entities.PlayerA, piece.Owner)
	assert.Equal(t, 2, piece.Size)
	assert.Equal(t, 1, piece.LifeLeft)
	assert.False(t, piece.IsSunk())
	assert.Equal(t, 2, b.PlayerShipCount(entities.PlayerA), "hit ship is still afloat")

	piece = b.ExecuteAttack(entities.Coordinate{Row: 0, Col: 1})
	require.NotNil(t, piece)
	assert.True(t, piece.IsSunk())
	assert.Equal(t, 1, b.PlayerShipCount(entities.PlayerA))
}

func TestExecuteAttackRepeatedCellIsMiss(t *testing.T) {
	b := newTestBoard(t)

	require.NotNil(t, b.ExecuteAttack(entities.Coordinate{Row: 0, Col: 0}))
	assert.Nil(t, b.ExecuteAttack(entities.Coordinate{Row: 0, Col: 0}))
	assert.Equal(t, 2, b.PlayerShipCount(entities.PlayerA), "repeat hit must not double-count")
}

func TestSingleCellShipSinksImmediately(t *testing.T) {
	b := newTestBoard(t)

	piece := b.ExecuteAttack(entities.Coordinate{Row: 2, Col: 0})
	require.NotNil(t, piece)
	assert.True(t, piece.IsSunk())
	assert.Equal(t, 1, b.PlayerShipCount(entities.PlayerA))
}

func TestMatrixIsACopy(t *testing.T) {
	b := newTestBoard(t)

	matrix := b.Matrix()
	matrix[0][0] = 'x'

	assert.Equal(t, 'B', b.Matrix()[0][0])
}

func TestCloneIsIndependent(t *testing.T) {
	b := newTestBoard(t)
	clone := b.Clone()

	b.ExecuteAttack(entities.Coordinate{Row: 2, Col: 0})

	assert.Equal(t, 1, b.PlayerShipCount(entities.PlayerA))
	assert.Equal(t, 2, clone.PlayerShipCount(entities.PlayerA))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	// Short second row gets padded with water
	content := "BB\n   d\n   d\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	b, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 4, b.Cols())
	assert.Equal(t, 1, b.PlayerShipCount(entities.PlayerA))
	assert.Equal(t, 1, b.PlayerShipCount(entities.PlayerB))
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
