package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against a temp home with the given stdin.
func runCLI(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", home}, args...))
	err := root.Execute()
	return out.String(), err
}

// everyNumber feeds 1..10 so a game on the default range always ends in a win.
func everyNumber() string {
	var sb strings.Builder
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&sb, "%d\n", i)
	}
	return sb.String()
}

func TestGuess_WinsAndRecords(t *testing.T) {
	home := t.TempDir()

	out, err := runCLI(t, home, everyNumber(), "guess", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome to the Guessing Game!")
	assert.Contains(t, out, "Type after parse: uint32")
	assert.Contains(t, out, "Congratulations! You guessed the correct number:")

	out, err = runCLI(t, home, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Played: 1")
	assert.Contains(t, out, "Won: 1")
}

func TestGuess_SeedIsReproducible(t *testing.T) {
	a, err := runCLI(t, t.TempDir(), everyNumber(), "guess", "--seed", "99", "--no-record")
	require.NoError(t, err)
	b, err := runCLI(t, t.TempDir(), everyNumber(), "guess", "--seed", "99", "--no-record")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGuess_NoRecordSkipsHistory(t *testing.T) {
	home := t.TempDir()
	_, err := runCLI(t, home, everyNumber(), "guess", "--seed", "1", "--no-record")
	require.NoError(t, err)

	out, err := runCLI(t, home, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No games played yet.")
}

func TestGuess_FlagsOverrideConfigFile(t *testing.T) {
	home := t.TempDir()
	cfg := "game:\n  range:\n    min: 1\n    max: 3\n  show_types: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(cfg), 0o600))

	out, err := runCLI(t, home, "1\n2\n3\n", "guess", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "a number between 1 and 3")
	assert.NotContains(t, out, "Type before parse")

	out, err = runCLI(t, home, "1\n2\n3\n", "guess", "--seed", "5", "--show-types")
	require.NoError(t, err)
	assert.Contains(t, out, "Type before parse: string")
}

func TestGuess_InputClosed(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "", "guess", "--seed", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input closed")
}

func TestGuess_InvalidRange(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "", "guess", "--min", "9", "--max", "2")
	require.Error(t, err)
}

func TestGuess_CommitThenVerify(t *testing.T) {
	home := t.TempDir()
	out, err := runCLI(t, home, everyNumber(), "guess", "--commit", "--show-types=false", "--no-record")
	require.NoError(t, err)

	var digest, salt string
	var secret uint32
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "Commitment: "); ok {
			digest = rest
		}
		if strings.HasPrefix(line, "Reveal: ") {
			_, err := fmt.Sscanf(line, "Reveal: secret=%d salt=%s", &secret, &salt)
			require.NoError(t, err)
		}
	}
	require.NotEmpty(t, digest)
	require.NotEmpty(t, salt)

	out, err = runCLI(t, home, "", "verify", digest, fmt.Sprint(secret), salt)
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("Commitment verified: the secret was %d.", secret))

	wrong := secret%10 + 1
	_, err = runCLI(t, home, "", "verify", digest, fmt.Sprint(wrong), salt)
	assert.Error(t, err)
}

func TestStats_ListAndReset(t *testing.T) {
	home := t.TempDir()
	_, err := runCLI(t, home, everyNumber(), "guess", "--seed", "2", "--attempts", "1", "--show-types=false")
	require.NoError(t, err)

	out, err := runCLI(t, home, "", "stats", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "1 and 10")
	assert.Contains(t, out, "Played: 1")

	out, err = runCLI(t, home, "", "stats", "--reset")
	require.NoError(t, err)
	assert.Contains(t, out, "History cleared.")

	out, err = runCLI(t, home, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No games played yet.")
}

func TestDemo_ListAndRun(t *testing.T) {
	home := t.TempDir()

	out, err := runCLI(t, home, "", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "primitives")
	assert.Contains(t, out, "compound")
	assert.Contains(t, out, "variables")

	listed, err := runCLI(t, home, "", "demo", "list")
	require.NoError(t, err)
	assert.Equal(t, out, listed)

	out, err = runCLI(t, home, "", "demo", "variables")
	require.NoError(t, err)
	assert.Contains(t, out, "Three hours in seconds is: 10800")

	out, err = runCLI(t, home, "", "primitives", "--brief")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed Integer: -5")

	out, err = runCLI(t, home, "", "compound")
	require.NoError(t, err)
	assert.Contains(t, out, "Greeting: Hello, World!")

	_, err = runCLI(t, home, "", "demo", "pointers")
	assert.Error(t, err)
}
