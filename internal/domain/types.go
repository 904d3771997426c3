package domain

import (
	"fmt"
	"time"
)

// GameID identifies a single finished game in the history.
type GameID string

func (id GameID) String() string { return string(id) }

// Range is an inclusive bound for the secret number.
type Range struct {
	Min uint32 `json:"min" yaml:"min"`
	Max uint32 `json:"max" yaml:"max"`
}

// Contains reports whether n lies within the range.
func (r Range) Contains(n uint32) bool { return n >= r.Min && n <= r.Max }

// Valid reports whether the range is non-empty.
func (r Range) Valid() bool { return r.Min <= r.Max }

func (r Range) String() string { return fmt.Sprintf("%d and %d", r.Min, r.Max) }

// Result is the record of one played game.
type Result struct {
	ID         GameID    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Range      Range     `json:"range"`
	Secret     uint32    `json:"secret"`
	Attempts   int       `json:"attempts"` // judged, in-range guesses
	Invalid    int       `json:"invalid"`  // unparsable or out-of-range lines
	Won        bool      `json:"won"`
	Commitment string    `json:"commitment,omitempty"`
}

// Summary aggregates a set of results.
type Summary struct {
	Played          int
	Won             int
	Lost            int
	BestAttempts    int // 0 when no game was won
	AverageAttempts float64
	InvalidInputs   int
}
