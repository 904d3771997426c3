package crypto

import (
	"encoding/hex"
	"fmt"
)

// Hex returns the lowercase hex encoding of b.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// FromHex decodes s, naming the field in the error.
func FromHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", field, err)
	}
	return b, nil
}
