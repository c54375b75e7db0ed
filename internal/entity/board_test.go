package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = PlayerX
	o = PlayerO
	e = EmptyCell
)

func TestBoard_LegalMoves(t *testing.T) {
	t.Run("Empty board returns every cell in ascending order", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: enumerating legal moves
		moves := board.LegalMoves()

		// Then: all nine cells are returned in order
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, moves)
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: a board with a few marks
		board := Board{
			x, e, o,
			e, x, e,
			o, e, e,
		}

		// When: enumerating legal moves
		moves := board.LegalMoves()

		// Then: only empty cells are returned
		assert.Equal(t, []int{1, 3, 5, 7, 8}, moves)
	})

	t.Run("Full board has no legal moves", func(t *testing.T) {
		board := Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		assert.Empty(t, board.LegalMoves())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Apply(t *testing.T) {
	t.Run("Sets the mark on an empty cell", func(t *testing.T) {
		board := Board{}

		board.Apply(4, o)

		assert.Equal(t, o, board[4])
		assert.False(t, board.IsFull())
	})

	t.Run("Panics on an occupied cell", func(t *testing.T) {
		board := Board{x}

		assert.Panics(t, func() { board.Apply(0, o) })
		assert.Equal(t, x, board[0])
	})
}

func TestBoard_HasWon(t *testing.T) {
	for i, combo := range WinCombos {
		// Given: a board where only one combo is filled by O
		board := Board{}
		for _, cell := range combo {
			board[cell] = o
		}

		// Then: O has won and X has not
		require.True(t, board.HasWon(o), "combo %d", i)
		require.False(t, board.HasWon(x), "combo %d", i)
	}

	t.Run("Two in a row is not a win", func(t *testing.T) {
		board := Board{
			x, x, e,
			o, o, e,
			e, e, e,
		}

		assert.False(t, board.HasWon(x))
		assert.False(t, board.HasWon(o))
	})
}

func TestBoard_IsDraw(t *testing.T) {
	t.Run("Full board without a line is a draw", func(t *testing.T) {
		board := Board{
			x, o, x,
			x, o, o,
			o, x, x,
		}

		assert.True(t, board.IsDraw())
		assert.Equal(t, PlayerTie, board.Result())
	})

	t.Run("Full board with a completed line is a win, not a draw", func(t *testing.T) {
		board := Board{
			x, o, x,
			o, x, o,
			o, x, x,
		}

		assert.False(t, board.IsDraw())
		assert.Equal(t, PlayerX, board.Result())
	})

	t.Run("Board with empty cells is not a draw", func(t *testing.T) {
		board := Board{x, o}

		assert.False(t, board.IsDraw())
		assert.Equal(t, EmptyCell, board.Result())
	})
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
	assert.Equal(t, EmptyCell, PlayerTie.Opponent())
}
