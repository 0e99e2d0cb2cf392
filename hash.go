package based

import (
	"crypto/md5"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

// Hashing is an opaque byte-to-digest stage; like compression it treats
// encoded text and plaintext alike as arbitrary bytes.

// HashAlgorithm identifies a supported digest.
type HashAlgorithm uint8

const (
	HashMD5 HashAlgorithm = iota
	HashSHA256
	HashSHA512
	HashSHA3_256
	HashSHA3_512
	HashBLAKE2b
	HashBLAKE2s
)

// String returns the canonical algorithm name.
func (h HashAlgorithm) String() string {
	switch h {
	case HashMD5:
		return "md5"
	case HashSHA256:
		return "sha256"
	case HashSHA512:
		return "sha512"
	case HashSHA3_256:
		return "sha3-256"
	case HashSHA3_512:
		return "sha3-512"
	case HashBLAKE2b:
		return "blake2b-256"
	case HashBLAKE2s:
		return "blake2s-256"
	default:
		return "unknown"
	}
}

// ParseHash parses an algorithm name, accepting common aliases.
func ParseHash(s string) (HashAlgorithm, error) {
	switch s {
	case "md5":
		return HashMD5, nil
	case "sha256", "sha-256":
		return HashSHA256, nil
	case "sha512", "sha-512":
		return HashSHA512, nil
	case "sha3-256", "sha3_256":
		return HashSHA3_256, nil
	case "sha3-512", "sha3_512":
		return HashSHA3_512, nil
	case "blake2b", "blake2b-256":
		return HashBLAKE2b, nil
	case "blake2s", "blake2s-256":
		return HashBLAKE2s, nil
	default:
		return 0, configErrorf("unknown hash algorithm %q", s)
	}
}

// HashAlgorithms returns all supported algorithms.
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{
		HashMD5, HashSHA256, HashSHA512,
		HashSHA3_256, HashSHA3_512,
		HashBLAKE2b, HashBLAKE2s,
	}
}

// RandomHash returns a uniformly chosen algorithm.
func RandomHash() HashAlgorithm {
	algos := HashAlgorithms()
	return algos[rand.IntN(len(algos))]
}

// NewHasher returns a fresh hash.Hash for the algorithm.
func NewHasher(algo HashAlgorithm) (hash.Hash, error) {
	switch algo {
	case HashMD5:
		return md5.New(), nil
	case HashSHA256:
		return sha256.New(), nil
	case HashSHA512:
		return sha512.New(), nil
	case HashSHA3_256:
		return sha3.New256(), nil
	case HashSHA3_512:
		return sha3.New512(), nil
	case HashBLAKE2b:
		return blake2b.New256(nil)
	case HashBLAKE2s:
		return blake2s.New256(nil)
	default:
		return nil, configErrorf("unknown hash algorithm %d", algo)
	}
}

// HashBytes digests data with the algorithm.
func HashBytes(data []byte, algo HashAlgorithm) ([]byte, error) {
	h, err := NewHasher(algo)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}
