// Package game implements the number-guessing console game.
//
// A Game picks a secret in an inclusive range, then reads one guess per
// line until the guess matches, the attempt limit runs out, or input ends.
// Lines that do not parse as an unsigned number, or fall outside the range,
// are answered with a hint and do not count as attempts.
//
// # Fair play
//
// With Config.Commit set, the game prints a salted BLAKE2b commitment to
// the secret before the first guess and reveals the salt at the end, so the
// player can check with `primers verify` that the secret never changed.
package game
