package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"primers/internal/crypto"
	"primers/internal/domain"
)

// ErrInputClosed is returned when input ends before the game is decided.
var ErrInputClosed = errors.New("input closed before the game finished")

// Game is one round of the guessing game.
type Game struct {
	cfg    Config
	picker Picker
	log    *zap.Logger
	now    func() time.Time
}

// New validates cfg and returns a game using picker for the secret.
func New(cfg Config, picker Picker, log *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{cfg: cfg, picker: picker, log: log, now: time.Now}, nil
}

// Play runs the game, reading guesses from in and writing prompts to out.
//
// The returned Result is filled in as far as the game got, even when an
// error is returned. Cancelling ctx stops the game, even while it waits for
// input.
func (g *Game) Play(ctx context.Context, in io.Reader, out io.Writer) (domain.Result, error) {
	rng := g.cfg.Range
	secret := g.picker.Pick(rng)
	if !rng.Contains(secret) {
		return domain.Result{}, fmt.Errorf("picked secret %d outside %s", secret, rng)
	}

	res := domain.Result{
		ID:        domain.GameID(uuid.NewString()),
		StartedAt: g.now(),
		Range:     rng,
		Secret:    secret,
	}
	log := g.log.With(zap.String("game", crypto.Fingerprint([]byte(res.ID))))

	fmt.Fprintln(out, "Welcome to the Guessing Game!")
	fmt.Fprintf(out, "Please enter your guess (a number between %s):\n", rng)

	var commit crypto.Commitment
	if g.cfg.Commit {
		c, err := crypto.NewCommitment(secret)
		if err != nil {
			return res, fmt.Errorf("commit to secret: %w", err)
		}
		commit = c
		res.Commitment = c.DigestHex()
		fmt.Fprintf(out, "Commitment: %s\n", res.Commitment)
	}

	err := g.loop(ctx, bufio.NewReader(in), out, secret, &res, log)
	res.FinishedAt = g.now()
	if err != nil {
		return res, err
	}
	if g.cfg.Commit {
		fmt.Fprintf(out, "Reveal: secret=%d salt=%s\n", secret, commit.SaltHex())
	}
	log.Info("game finished",
		zap.Bool("won", res.Won),
		zap.Int("attempts", res.Attempts),
		zap.Int("invalid", res.Invalid))
	return res, nil
}

func (g *Game) loop(
	ctx context.Context,
	r *bufio.Reader,
	out io.Writer,
	secret uint32,
	res *domain.Result,
	log *zap.Logger,
) error {
	rng := g.cfg.Range
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := readLine(ctx, r)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			if errors.Is(err, io.EOF) {
				return ErrInputClosed
			}
			return fmt.Errorf("failed to read line: %w", err)
		}
		if g.cfg.ShowTypes {
			fmt.Fprintf(out, "Type before parse: %T\n", line)
		}

		guess, err := ParseGuess(line)
		if err != nil {
			log.Debug("rejected guess", zap.Error(err))
			res.Invalid++
			fmt.Fprintln(out, "Please enter a valid number!")
			continue
		}
		if g.cfg.ShowTypes {
			fmt.Fprintf(out, "Type after parse: %T\n", guess)
		}

		if !rng.Contains(guess) {
			res.Invalid++
			fmt.Fprintf(out, "Your guess is out of bounds! Please guess a number between %s.\n", rng)
			continue
		}

		res.Attempts++
		verdict := Judge(guess, secret)
		log.Debug("judged guess", zap.Uint32("guess", guess), zap.Stringer("verdict", verdict))
		switch verdict {
		case TooLow:
			fmt.Fprintln(out, "Too low! Try again.")
		case TooHigh:
			fmt.Fprintln(out, "Too high! Try again.")
		case Correct:
			res.Won = true
			fmt.Fprintf(out, "Congratulations! You guessed the correct number: %d\n", secret)
			return nil
		}

		if g.cfg.MaxAttempts > 0 && res.Attempts >= g.cfg.MaxAttempts {
			fmt.Fprintf(out, "Out of attempts! The number was %d.\n", secret)
			return nil
		}
	}
}

type lineRead struct {
	line string
	err  error
}

// readLine reads one line from r, giving up when ctx is done. After a
// cancellation the pending read is abandoned; the reader must not be used
// again.
func readLine(ctx context.Context, r *bufio.Reader) (string, error) {
	ch := make(chan lineRead, 1)
	go func() {
		line, err := r.ReadString('\n')
		ch <- lineRead{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case lr := <-ch:
		return lr.line, lr.err
	}
}
