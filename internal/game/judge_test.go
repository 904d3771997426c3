package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primers/internal/domain"
	"primers/internal/game"
)

func TestJudge(t *testing.T) {
	assert.Equal(t, game.TooLow, game.Judge(3, 7))
	assert.Equal(t, game.TooHigh, game.Judge(9, 7))
	assert.Equal(t, game.Correct, game.Judge(7, 7))
	assert.Equal(t, "too high", game.TooHigh.String())
}

func TestParseGuess(t *testing.T) {
	cases := []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"5\n", 5, true},
		{"  42  \r\n", 42, true},
		{"4294967295", 4294967295, true},
		{"4294967296", 0, false},
		{"-3", 0, false},
		{"", 0, false},
		{"seven", 0, false},
		{"3.5", 0, false},
		{"+5", 5, true},
		{"++5", 0, false},
		{"+", 0, false},
	}
	for _, tc := range cases {
		got, err := game.ParseGuess(tc.in)
		if !tc.ok {
			assert.ErrorIs(t, err, game.ErrInvalidGuess, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, game.DefaultConfig().Validate())

	cfg := game.DefaultConfig()
	cfg.Range = domain.Range{Min: 10, Max: 1}
	assert.ErrorIs(t, cfg.Validate(), game.ErrInvalidRange)

	cfg = game.DefaultConfig()
	cfg.MaxAttempts = -1
	assert.Error(t, cfg.Validate())
}

func TestRandPicker_StaysInRangeAndIsSeeded(t *testing.T) {
	r := domain.Range{Min: 1, Max: 10}
	a := game.NewRandPicker(42)
	b := game.NewRandPicker(42)
	seen := map[uint32]bool{}
	for i := 0; i < 500; i++ {
		n := a.Pick(r)
		require.True(t, r.Contains(n), "picked %d", n)
		assert.Equal(t, n, b.Pick(r))
		seen[n] = true
	}
	assert.Len(t, seen, 10, "every value in a small range should come up")

	single := domain.Range{Min: 5, Max: 5}
	assert.Equal(t, uint32(5), a.Pick(single))

	full := domain.Range{Min: 0, Max: ^uint32(0)}
	_ = a.Pick(full)
}
