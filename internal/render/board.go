// Package render draws a game for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const separator = "---+---+---"

type Renderer struct {
	out *termenv.Output
}

// New - profile decides which escape sequences are emitted, termenv.Ascii gives plain text.
func New(w io.Writer, profile termenv.Profile) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Board - three rows, empty cells show the number a player types to take them.
func (that *Renderer) Board(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString(separator + "\n")
		}

		cells := make([]string, 0, 3)
		for col := 0; col < 3; col++ {
			cell := row*3 + col
			cells = append(cells, " "+that.cell(board[cell], cell)+" ")
		}

		sb.WriteString(strings.Join(cells, "|") + "\n")
	}

	return sb.String()
}

// Status - one line describing whose turn it is or how the game ended.
func (that *Renderer) Status(game *entity.Game) string {
	if game.IsOngoing() {
		return fmt.Sprintf("%s to move", that.mark(game.Turn))
	}

	if game.Winner == entity.PlayerTie {
		return that.out.String("Draw").Bold().String()
	}

	return that.out.String(fmt.Sprintf("%s wins", game.Winner)).Bold().String()
}

func (that *Renderer) Print(game *entity.Game) error {
	if _, err := fmt.Fprint(that.out, "\n"+that.Board(game.Board)+"\n"+that.Status(game)+"\n"); err != nil {
		return fmt.Errorf("failed to print game: %w", err)
	}

	return nil
}

func (that *Renderer) cell(mark entity.Mark, cell int) string {
	if mark == entity.EmptyCell {
		return that.out.String(strconv.Itoa(cell + 1)).Faint().String()
	}

	return that.mark(mark)
}

func (that *Renderer) mark(mark entity.Mark) string {
	style := that.out.String(string(mark)).Bold()

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.out.Color("4"))
	case entity.PlayerO:
		style = style.Foreground(that.out.Color("1"))
	}

	return style.String()
}
