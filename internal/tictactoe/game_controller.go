package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/minimax"
)

// NewSession - empty board, X to move.
func NewSession(id string, mode entity.Mode, difficulty entity.Difficulty) *entity.Game {
	return entity.NewGame(id, mode, difficulty)
}

// ApplyHumanMove - places the mark of the side to move. A rejected move leaves the game untouched.
func ApplyHumanMove(game *entity.Game, cell int) (entity.SessionStatus, error) {
	if err := validateMove(game, cell); err != nil {
		return game.SessionStatus(), fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	makeTurn(game, cell)

	return game.SessionStatus(), nil
}

// RequestPolicyMove - lets the bot play for O. Only valid in single player mode while O is to move.
func RequestPolicyMove(game *entity.Game, difficulty entity.Difficulty, rng minimax.Rand) (int, entity.SessionStatus, error) {
	if !game.IsBotTurn() {
		return minimax.NoMove, game.SessionStatus(), fmt.Errorf("%w: mode %s, status %s, turn %q",
			apperror.ErrInvalidState, game.Mode, game.Status, game.Turn)
	}

	decision, err := minimax.ChooseMove(game.Board, difficulty, rng)
	if err != nil {
		return minimax.NoMove, game.SessionStatus(), fmt.Errorf("bot failed to choose move: %w", err)
	}

	makeTurn(game, decision.Move)

	return decision.Move, game.SessionStatus(), nil
}

// ResetSession - back to the initial state, mode and difficulty are kept.
func ResetSession(game *entity.Game) {
	*game = *entity.NewGame(game.ID, game.Mode, game.Difficulty)
}

func makeTurn(game *entity.Game, cell int) {
	player := game.Turn

	game.Board.Apply(cell, player)
	game.UpdateGameState(player)
}

// validateMove - checks if the move is valid.
func validateMove(game *entity.Game, cell int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if !entity.IsValidCell(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.IsBotTurn() {
		return apperror.ErrNotYourTurn
	}

	if game.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}
