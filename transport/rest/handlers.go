package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type createGameRequest struct {
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
}

type createGameResponse struct {
	*entity.Game
	Warning string `json:"warning,omitempty"`
}

type turnRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

var errMissingCell = errors.New("cell is required")

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	mode := that.defaults.Mode
	if req.Mode != "" {
		parsed, err := entity.ParseMode(req.Mode)
		if err != nil {
			that.writeError(w, err)
			return
		}
		mode = parsed
	}

	var warning string
	difficulty := that.defaults.Difficulty
	if req.Difficulty != "" {
		parsed, err := entity.ParseDifficulty(req.Difficulty)
		if err != nil {
			warning = "invalid difficulty selected, defaulting to low"
			that.logger.Warn(warning, "difficulty", req.Difficulty)
		}
		difficulty = parsed
	}

	game, err := that.games.CreateGame(r.Context(), mode, difficulty)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, createGameResponse{Game: game, Warning: warning})
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) makeTurn(w http.ResponseWriter, r *http.Request) {
	var req turnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, err))
		return
	}

	if req.Cell == nil {
		that.writeError(w, fmt.Errorf("%w: %w", errBadRequest, errMissingCell))
		return
	}

	game, err := that.games.MakeTurn(r.Context(), chi.URLParam(r, "id"), *req.Cell)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) resetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.games.ResetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
