package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

type Mode string

const (
	SinglePlayerMode Mode = "single"
	TwoPlayerMode    Mode = "two-player"
)

// BotMark - the policy-controlled side in single player mode. The search maximizes for O.
const BotMark = PlayerO

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID         string     `json:"id"`
	Board      Board      `json:"board"`
	Winner     Mark       `json:"winner"`
	Status     string     `json:"status"`
	Turn       Mark       `json:"player_turn"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
}

// SessionStatus - what a caller needs to know after a transition.
type SessionStatus struct {
	Status string `json:"status"`
	Turn   Mark   `json:"player_turn,omitempty"`
	Winner Mark   `json:"winner,omitempty"`
}

func NewGame(id string, mode Mode, difficulty Difficulty) *Game {
	return &Game{
		ID:         id,
		Board:      Board{},
		Turn:       PlayerX,
		Status:     StatusOngoing,
		Mode:       mode,
		Difficulty: difficulty,
	}
}

func (that *Game) UpdateGameState(lastMover Mark) {
	switch {
	case that.Board.HasWon(lastMover):
		that.Winner = lastMover
		that.Status = StatusFinished
		that.Turn = EmptyCell
	case that.Board.IsDraw():
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = EmptyCell
	default:
		that.Status = StatusOngoing
		that.Turn = lastMover.Opponent()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsSinglePlayer() bool {
	return that.Mode == SinglePlayerMode
}

// IsBotTurn - true when the policy has to supply the next move.
func (that *Game) IsBotTurn() bool {
	return that.IsSinglePlayer() && that.IsOngoing() && that.Turn == BotMark
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) SessionStatus() SessionStatus {
	return SessionStatus{
		Status: that.Status,
		Turn:   that.Turn,
		Winner: that.Winner,
	}
}

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case SinglePlayerMode, TwoPlayerMode:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidMode, value)
	}
}
