package minimax

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Rand is the source of randomness for the policy. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Decision struct {
	Move int
	// Searched is true when the move came from the search, false for a random pick.
	Searched bool
}

// ChooseMove picks the bot's move on behalf of O.
func ChooseMove(board entity.Board, difficulty entity.Difficulty, rng Rand) (Decision, error) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return Decision{Move: NoMove}, fmt.Errorf("%w: no legal moves left", apperror.ErrInvalidState)
	}

	if winner := board.Result(); winner.IsPlayer() {
		return Decision{Move: NoMove}, fmt.Errorf("%w: %s already won", apperror.ErrInvalidState, winner)
	}

	if rng.Float64() < difficulty.Probability() {
		result := Search(board, entity.PlayerO, 0)
		if !result.HasMove() {
			return Decision{Move: NoMove}, fmt.Errorf("%w: search found no move on a live board", apperror.ErrInvalidState)
		}

		return Decision{Move: result.Move, Searched: true}, nil
	}

	return Decision{Move: moves[rng.Intn(len(moves))]}, nil
}

type globalRand struct{}

func (globalRand) Float64() float64 {
	return rand.Float64() //nolint: gosec // game randomness
}

func (globalRand) Intn(n int) int {
	return rand.Intn(n) //nolint: gosec // game randomness
}

// GlobalRand - the math/rand top-level source, safe for concurrent use.
func GlobalRand() Rand {
	return globalRand{}
}
