package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidGuess is returned by ParseGuess for input that is not an
// unsigned 32-bit decimal number.
var ErrInvalidGuess = errors.New("invalid guess")

// Verdict is the outcome of comparing a guess with the secret.
type Verdict int

const (
	TooLow Verdict = iota + 1
	TooHigh
	Correct
)

func (v Verdict) String() string {
	switch v {
	case TooLow:
		return "too low"
	case TooHigh:
		return "too high"
	case Correct:
		return "correct"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

// Judge compares guess against secret.
func Judge(guess, secret uint32) Verdict {
	switch {
	case guess < secret:
		return TooLow
	case guess > secret:
		return TooHigh
	default:
		return Correct
	}
}

// ParseGuess trims surrounding whitespace and parses line as a uint32.
// A single leading '+' is accepted.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrInvalidGuess, s)
	}
	return uint32(n), nil
}
