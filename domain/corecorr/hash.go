package corecorr

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash is a content hash used to verify that a catalog load is deterministic
// (spec.md §8: "loading twice yields the same catalog").
type Hash string

// NewHash hashes the given bytes.
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

func (h Hash) String() string        { return string(h) }
func (h Hash) Equals(other Hash) bool { return h == other }
