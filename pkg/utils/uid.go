package utils

import (
	"crypto/sha256"
	"math/big"

	"github.com/google/uuid"
)

// ShortUIDLength is the length of a derived short uid
const ShortUIDLength = 8

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// DeriveShortUID derives the human-readable 8-character base36 reference for
// an entity id. The derivation is stable: the same id always yields the same
// uid, so it is safe to assign once after the first persist.
func DeriveShortUID(id uuid.UUID) string {
	digest := sha256.Sum256(id[:])
	n := new(big.Int).SetBytes(digest[:])

	base := big.NewInt(int64(len(base36Alphabet)))
	rem := new(big.Int)

	buf := make([]byte, ShortUIDLength)
	for i := ShortUIDLength - 1; i >= 0; i-- {
		n.DivMod(n, base, rem)
		buf[i] = base36Alphabet[rem.Int64()]
	}
	return string(buf)
}
