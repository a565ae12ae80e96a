package core

import (
	"encoding/hex"

	"github.com/go-crypt/x/blake2b"
)

// Digest is the hex-encoded 256-bit BLAKE2b hash of a note's content,
// used for change detection. Identical content bytes always yield an
// identical digest, independent of run order or machine.
type Digest string

// DigestContent computes the content digest for change detection.
func DigestContent(content string) Digest {
	h, _ := blake2b.New(32, nil) // 32 bytes = 256 bits
	h.Write([]byte(content))
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// Valid reports whether the digest is a well-formed 256-bit hex string.
func (d Digest) Valid() bool {
	if len(d) != 64 {
		return false
	}
	_, err := hex.DecodeString(string(d))
	return err == nil
}
