// Package crypto exposes the small set of primitives used by primers.
//
// Contents
//
//   - Salted commitments to a secret number, so a player can check after
//     the game that the secret was fixed before the first guess
//     (NewCommitment, VerifyCommitment)
//   - Short fingerprints for display/logging (Fingerprint)
//   - Hex helpers for the on-screen encodings (Hex, FromHex)
package crypto
