package entity

import "fmt"

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	PlayerTie Mark = "-"

	EmptyCell Mark = ""
)

const BoardSize = 9

// WinCombos - rows, columns and both diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the other mark, EmptyCell for anything that is not a player.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is stored row-major, cell 0 is the top-left corner.
type Board [BoardSize]Mark

func (that *Board) Apply(cell int, player Mark) {
	if that[cell] != EmptyCell {
		panic(fmt.Sprintf("apply %s to occupied cell %d", player, cell))
	}

	that[cell] = player
}

// LegalMoves - empty cells in ascending order.
func (that *Board) LegalMoves() []int {
	moves := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			moves = append(moves, i)
		}
	}

	return moves
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Board) IsEmptyCell(cell int) bool {
	return IsValidCell(cell) && that[cell] == EmptyCell
}

func (that *Board) HasWon(player Mark) bool {
	won := false
	for _, combo := range WinCombos {
		if that[combo[0]] == player && that[combo[1]] == player && that[combo[2]] == player {
			won = true
		}
	}

	return won
}

// IsDraw - a full board is a draw only when nobody completed a line.
func (that *Board) IsDraw() bool {
	return that.IsFull() && !that.HasWon(PlayerX) && !that.HasWon(PlayerO)
}

// Result - PlayerX or PlayerO for a winner, PlayerTie for a draw, EmptyCell while the game goes on.
func (that *Board) Result() Mark {
	switch {
	case that.HasWon(PlayerX):
		return PlayerX
	case that.HasWon(PlayerO):
		return PlayerO
	case that.IsFull():
		return PlayerTie
	default:
		return EmptyCell
	}
}

func IsValidCell(cell int) bool {
	return cell >= 0 && cell < BoardSize
}
