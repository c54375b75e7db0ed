// Package minimax picks moves for the bot: an exhaustive game-tree search and
// a difficulty policy that mixes the searched move with random play.
package minimax

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	winScore = 10

	// NoMove - Result.Move at a terminal node.
	NoMove = -1
)

type Result struct {
	Move  int
	Score int
}

func (that Result) HasMove() bool {
	return that.Move != NoMove
}

// Search returns the best move for sideToMove. O is always the maximizing side and
// X the minimizing one; wins found closer to the root score further from zero.
// The board is taken by value, so the caller's copy is never touched.
func Search(board entity.Board, sideToMove entity.Mark, depth int) Result {
	return search(&board, sideToMove, depth)
}

func search(board *entity.Board, sideToMove entity.Mark, depth int) Result {
	if board.HasWon(entity.PlayerX) {
		return Result{Move: NoMove, Score: -winScore + depth}
	}

	if board.HasWon(entity.PlayerO) {
		return Result{Move: NoMove, Score: winScore - depth}
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Result{Move: NoMove, Score: 0}
	}

	maximizing := sideToMove == entity.PlayerO
	best := Result{Move: NoMove}

	for _, move := range moves {
		board[move] = sideToMove
		child := search(board, sideToMove.Opponent(), depth+1)
		board[move] = entity.EmptyCell

		if best.Move == NoMove ||
			(maximizing && child.Score > best.Score) ||
			(!maximizing && child.Score < best.Score) {
			best = Result{Move: move, Score: child.Score}
		}
	}

	return best
}
