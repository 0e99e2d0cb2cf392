package based

import (
	"bytes"
	"io"
	"math/rand/v2"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
)

// Compression is an opaque byte-to-byte stage layered before encoding or
// after decoding; it knows nothing about dictionary semantics.

// CompressionAlgorithm identifies a supported compression scheme.
type CompressionAlgorithm uint8

const (
	Gzip CompressionAlgorithm = iota
	Zstd
	Snappy
)

// String returns the canonical algorithm name.
func (c CompressionAlgorithm) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Snappy:
		return "snappy"
	default:
		return "unknown"
	}
}

// DefaultLevel returns the algorithm's default compression level.
// Snappy has no levels and returns 0.
func (c CompressionAlgorithm) DefaultLevel() int {
	switch c {
	case Gzip:
		return gzip.DefaultCompression
	case Zstd:
		return 3
	default:
		return 0
	}
}

// ParseCompression parses an algorithm name, accepting common aliases.
func ParseCompression(s string) (CompressionAlgorithm, error) {
	switch s {
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	case "snappy", "snap":
		return Snappy, nil
	default:
		return 0, configErrorf("unknown compression algorithm %q", s)
	}
}

// CompressionAlgorithms returns all supported algorithms.
func CompressionAlgorithms() []CompressionAlgorithm {
	return []CompressionAlgorithm{Gzip, Zstd, Snappy}
}

// RandomCompression returns a uniformly chosen algorithm.
func RandomCompression() CompressionAlgorithm {
	algos := CompressionAlgorithms()
	return algos[rand.IntN(len(algos))]
}

// Compress compresses data with the given algorithm and level.
func Compress(data []byte, algo CompressionAlgorithm, level int) ([]byte, error) {
	switch algo {
	case Gzip:
		var buf bytes.Buffer
		zw, err := gzip.NewWriterLevel(&buf, level)
		if err != nil {
			return nil, err
		}
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case Zstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case Snappy:
		return snappy.Encode(nil, data), nil
	default:
		return nil, configErrorf("unknown compression algorithm %d", algo)
	}
}

// Decompress reverses Compress.
func Decompress(data []byte, algo CompressionAlgorithm) ([]byte, error) {
	switch algo {
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case Snappy:
		return snappy.Decode(nil, data)
	default:
		return nil, configErrorf("unknown compression algorithm %d", algo)
	}
}
