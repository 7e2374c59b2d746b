package main

import (
	"crypto/sha1"
	"encoding/hex"
)

// digest of an encoded payload, logged per destination so repeated
// runs can be compared
type hash struct {
	Algorithm string
	Value     []byte
}

func hashFromBytes(b []byte) *hash {
	sum := sha1.Sum(b)
	return &hash{"sha1", []byte(hex.EncodeToString(sum[:]))}
}

func (h hash) String() string {
	return string(h.Value)
}
