package digest

import (
	"encoding/hex"
	"hash"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
)

// New returns the hash used for manifest entries (BLAKE2b-256).
func New() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b only fails on a bad key; we never pass one.
		panic(err)
	}
	return h
}

// Sum digests b and returns the lowercase hex encoding.
func Sum(b []byte) string {
	h := New()
	h.Write(b)
	return Encode(h)
}

// File digests the contents of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return Encode(h), nil
}

// Encode finalises h into the manifest digest encoding.
func Encode(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
