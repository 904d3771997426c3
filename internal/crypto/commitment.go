package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/binary"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// SaltSize is the length of the random commitment key.
const SaltSize = 16

// ErrBadSalt is returned when a revealed salt has the wrong length.
var ErrBadSalt = fmt.Errorf("salt must be %d bytes", SaltSize)

// Commitment binds a secret number before the game starts.
//
// Digest is published up front; Salt is kept until the reveal.
type Commitment struct {
	Digest [blake2b.Size256]byte
	Salt   [SaltSize]byte
}

// DigestHex is the published half of the commitment.
func (c Commitment) DigestHex() string { return Hex(c.Digest[:]) }

// SaltHex is the revealed half of the commitment.
func (c Commitment) SaltHex() string { return Hex(c.Salt[:]) }

// NewCommitment commits to secret under a fresh random salt.
func NewCommitment(secret uint32) (Commitment, error) {
	var c Commitment
	if _, err := rand.Read(c.Salt[:]); err != nil {
		return Commitment{}, err
	}
	d, err := digest(c.Salt[:], secret)
	if err != nil {
		return Commitment{}, err
	}
	c.Digest = d
	return c, nil
}

// VerifyCommitment checks a published digest against a revealed secret and salt.
func VerifyCommitment(digestHex string, secret uint32, saltHex string) (bool, error) {
	want, err := FromHex("commitment", digestHex)
	if err != nil {
		return false, err
	}
	if len(want) != blake2b.Size256 {
		return false, errors.New("commitment must be 32 bytes")
	}
	salt, err := FromHex("salt", saltHex)
	if err != nil {
		return false, err
	}
	if len(salt) != SaltSize {
		return false, ErrBadSalt
	}
	got, err := digest(salt, secret)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(got[:], want) == 1, nil
}

// digest is keyed BLAKE2b-256 over the big-endian secret.
func digest(salt []byte, secret uint32) ([blake2b.Size256]byte, error) {
	var out [blake2b.Size256]byte
	h, err := blake2b.New256(salt)
	if err != nil {
		return out, err
	}
	var msg [4]byte
	binary.BigEndian.PutUint32(msg[:], secret)
	h.Write(msg[:])
	copy(out[:], h.Sum(nil))
	return out, nil
}
