package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type mockGames struct {
	mock.Mock
}

func (that *mockGames) CreateGame(ctx context.Context, mode entity.Mode, difficulty entity.Difficulty) (*entity.Game, error) {
	args := that.Called(ctx, mode, difficulty)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGames) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGames) MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error) {
	args := that.Called(ctx, id, cell)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGames) ResetGame(ctx context.Context, id string) (*entity.Game, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (that *mockGames) DeleteGame(ctx context.Context, id string) error {
	args := that.Called(ctx, id)
	return args.Error(0)
}

func newTestServer(t *testing.T) (*httptest.Server, *mockGames) {
	t.Helper()

	games := &mockGames{}
	t.Cleanup(func() { games.AssertExpectations(t) })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := New(logger, games, Defaults{Mode: entity.SinglePlayerMode, Difficulty: entity.MediumDifficulty})

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	return ts, games
}

func doRequest(t *testing.T, method, url, body string) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestServer_Ping(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := doRequest(t, http.MethodGet, ts.URL+"/ping", "")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestServer_CreateGame(t *testing.T) {
	t.Run("Uses defaults when the body is empty", func(t *testing.T) {
		// Given: a use case that creates a game with the default settings
		ts, games := newTestServer(t)
		game := entity.NewGame("g1", entity.SinglePlayerMode, entity.MediumDifficulty)
		games.On("CreateGame", mock.Anything, entity.SinglePlayerMode, entity.MediumDifficulty).Return(game, nil).Once()

		// When: a game is requested without a body
		resp := doRequest(t, http.MethodPost, ts.URL+"/games", "")

		// Then: the new game is returned
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		got := decode[map[string]any](t, resp)
		assert.Equal(t, "g1", got["id"])
		assert.NotContains(t, got, "warning")
	})

	t.Run("Falls back to low difficulty with a warning", func(t *testing.T) {
		// Given: a request with an unknown difficulty
		ts, games := newTestServer(t)
		game := entity.NewGame("g2", entity.TwoPlayerMode, entity.LowDifficulty)
		games.On("CreateGame", mock.Anything, entity.TwoPlayerMode, entity.LowDifficulty).Return(game, nil).Once()

		// When: the game is created
		resp := doRequest(t, http.MethodPost, ts.URL+"/games", `{"mode":"two-player","difficulty":"insane"}`)

		// Then: the response carries a warning
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		got := decode[map[string]any](t, resp)
		assert.Equal(t, "invalid difficulty selected, defaulting to low", got["warning"])
	})

	t.Run("Rejects an unknown mode", func(t *testing.T) {
		ts, _ := newTestServer(t)

		resp := doRequest(t, http.MethodPost, ts.URL+"/games", `{"mode":"online"}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Rejects malformed JSON", func(t *testing.T) {
		ts, _ := newTestServer(t)

		resp := doRequest(t, http.MethodPost, ts.URL+"/games", `{`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServer_GetGame(t *testing.T) {
	t.Run("Returns the stored game", func(t *testing.T) {
		ts, games := newTestServer(t)
		game := entity.NewGame("g1", entity.SinglePlayerMode, entity.HighDifficulty)
		games.On("GetGame", mock.Anything, "g1").Return(game, nil).Once()

		resp := doRequest(t, http.MethodGet, ts.URL+"/games/g1", "")

		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[entity.Game](t, resp)
		assert.Equal(t, *game, got)
	})

	t.Run("Returns 404 for an unknown game", func(t *testing.T) {
		ts, games := newTestServer(t)
		games.On("GetGame", mock.Anything, "missing").Return(nil, apperror.ErrNotFound).Once()

		resp := doRequest(t, http.MethodGet, ts.URL+"/games/missing", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_MakeTurn(t *testing.T) {
	t.Run("Applies the move", func(t *testing.T) {
		// Given: a game that accepts the move
		ts, games := newTestServer(t)
		game := entity.NewGame("g1", entity.TwoPlayerMode, entity.LowDifficulty)
		game.Board.Apply(4, entity.PlayerX)
		game.UpdateGameState(entity.PlayerX)
		games.On("MakeTurn", mock.Anything, "g1", 4).Return(game, nil).Once()

		// When: the move is posted
		resp := doRequest(t, http.MethodPost, ts.URL+"/games/g1/turns", `{"cell":4}`)

		// Then: the updated game is returned
		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decode[entity.Game](t, resp)
		assert.Equal(t, entity.PlayerX, got.Board[4])
		assert.Equal(t, entity.PlayerO, got.Turn)
	})

	t.Run("Returns 409 on an illegal move", func(t *testing.T) {
		ts, games := newTestServer(t)
		err := fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrCellOccupied)
		games.On("MakeTurn", mock.Anything, "g1", 0).Return(nil, err).Once()

		resp := doRequest(t, http.MethodPost, ts.URL+"/games/g1/turns", `{"cell":0}`)

		require.Equal(t, http.StatusConflict, resp.StatusCode)
		got := decode[errorResponse](t, resp)
		assert.Contains(t, got.Error, apperror.ErrCellOccupied.Error())
	})

	t.Run("Requires a cell", func(t *testing.T) {
		ts, _ := newTestServer(t)

		resp := doRequest(t, http.MethodPost, ts.URL+"/games/g1/turns", `{}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Returns 500 on an internal failure", func(t *testing.T) {
		ts, games := newTestServer(t)
		games.On("MakeTurn", mock.Anything, "g1", 1).Return(nil, apperror.ErrInvalidState).Once()

		resp := doRequest(t, http.MethodPost, ts.URL+"/games/g1/turns", `{"cell":1}`)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestServer_ResetAndDelete(t *testing.T) {
	t.Run("Resets a game", func(t *testing.T) {
		ts, games := newTestServer(t)
		game := entity.NewGame("g1", entity.SinglePlayerMode, entity.LowDifficulty)
		games.On("ResetGame", mock.Anything, "g1").Return(game, nil).Once()

		resp := doRequest(t, http.MethodPost, ts.URL+"/games/g1/reset", "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Deletes a game", func(t *testing.T) {
		ts, games := newTestServer(t)
		games.On("DeleteGame", mock.Anything, "g1").Return(nil).Once()

		resp := doRequest(t, http.MethodDelete, ts.URL+"/games/g1", "")

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Returns 404 when deleting an unknown game", func(t *testing.T) {
		ts, games := newTestServer(t)
		games.On("DeleteGame", mock.Anything, "missing").Return(apperror.ErrNotFound).Once()

		resp := doRequest(t, http.MethodDelete, ts.URL+"/games/missing", "")

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
