// Command play runs a game in the terminal, against the bot or between two people at one keyboard.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var errQuit = errors.New("quit")

type options struct {
	game     config.Game
	seed     int64
	botDelay time.Duration
	verbose  bool
}

func parseFlags() options {
	var opts options

	pflag.StringVarP(&opts.game.Mode, "mode", "m", string(entity.SinglePlayerMode), "single or two-player")
	pflag.StringVarP(&opts.game.Difficulty, "difficulty", "d", string(entity.MediumDifficulty), "low, medium or high")
	pflag.Int64Var(&opts.seed, "seed", 0, "random seed for the bot, 0 picks one from the clock")
	pflag.DurationVar(&opts.botDelay, "bot-delay", 500*time.Millisecond, "pause before the bot move is shown")
	pflag.BoolVarP(&opts.verbose, "verbose", "v", false, "log bot decisions")
	pflag.Parse()

	return opts
}

func main() {
	opts := parseFlags()

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := newPlayer(logger, opts, os.Stdin, os.Stdout, termenv.EnvColorProfile())
	if err := p.run(ctx); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		logger.Error("game stopped", "error", err)
		os.Exit(1)
	}
}

type player struct {
	logger   *slog.Logger
	game     *entity.Game
	rng      *rand.Rand
	botDelay time.Duration
	in       *bufio.Scanner
	out      io.Writer
	renderer *render.Renderer
}

func newPlayer(logger *slog.Logger, opts options, in io.Reader, out io.Writer, profile termenv.Profile) *player {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := tictactoe.NewSession("local", opts.game.GetMode(), opts.game.GetDifficulty(logger))
	logger.Debug("session started", "mode", game.Mode, "difficulty", game.Difficulty, "seed", seed)

	return &player{
		logger:   logger,
		game:     game,
		rng:      rand.New(rand.NewSource(seed)), //nolint: gosec // game randomness
		botDelay: opts.botDelay,
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: render.New(out, profile),
	}
}

func (that *player) run(ctx context.Context) error {
	for {
		if err := that.renderer.Print(that.game); err != nil {
			return err
		}

		if err := that.step(ctx); err != nil {
			return err
		}
	}
}

func (that *player) step(ctx context.Context) error {
	switch {
	case that.game.IsFinished():
		return that.afterGame()
	case that.game.IsBotTurn():
		return that.botTurn(ctx)
	default:
		return that.humanTurn()
	}
}

func (that *player) botTurn(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(that.botDelay):
	}

	move, status, err := tictactoe.RequestPolicyMove(that.game, that.game.Difficulty, that.rng)
	if err != nil {
		return fmt.Errorf("bot move: %w", err)
	}

	that.logger.Debug("bot moved", "cell", move+1, "status", status.Status)
	that.printf("bot plays %d\n", move+1)

	return nil
}

func (that *player) humanTurn() error {
	line, err := that.prompt(fmt.Sprintf("%s, pick a cell (1-9, r to reset, q to quit): ", that.game.Turn))
	if err != nil {
		return err
	}

	switch line {
	case "q":
		return errQuit
	case "r":
		tictactoe.ResetSession(that.game)
		return nil
	}

	cell, err := strconv.Atoi(line)
	if err != nil {
		that.printf("%q is not a cell number\n", line)
		return nil
	}

	if _, err = tictactoe.ApplyHumanMove(that.game, cell-1); err != nil {
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.printf("%v\n", err)
			return nil
		}

		return err
	}

	return nil
}

func (that *player) afterGame() error {
	line, err := that.prompt("r to play again, q to quit: ")
	if err != nil {
		return err
	}

	if line == "r" {
		tictactoe.ResetSession(that.game)
		return nil
	}

	return errQuit
}

func (that *player) prompt(text string) (string, error) {
	that.printf("%s", text)

	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", errQuit
	}

	return strings.ToLower(strings.TrimSpace(that.in.Text())), nil
}

func (that *player) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
