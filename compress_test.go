package based

import (
	"bytes"
	"testing"
)

func TestCompress_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 64)

	for _, algo := range CompressionAlgorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			compressed, err := Compress(data, algo, algo.DefaultLevel())
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(compressed) >= len(data) {
				t.Errorf("repetitive input did not shrink: %d -> %d", len(data), len(compressed))
			}
			plain, err := Decompress(compressed, algo)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(plain, data) {
				t.Fatal("round trip mismatch")
			}
		})
	}
}

func TestCompress_EmptyInput(t *testing.T) {
	for _, algo := range CompressionAlgorithms() {
		compressed, err := Compress(nil, algo, algo.DefaultLevel())
		if err != nil {
			t.Fatalf("%s: Compress(nil) failed: %v", algo, err)
		}
		plain, err := Decompress(compressed, algo)
		if err != nil {
			t.Fatalf("%s: Decompress failed: %v", algo, err)
		}
		if len(plain) != 0 {
			t.Errorf("%s: got %d bytes from empty input", algo, len(plain))
		}
	}
}

func TestParseCompression(t *testing.T) {
	tests := []struct {
		input string
		want  CompressionAlgorithm
		ok    bool
	}{
		{"gzip", Gzip, true},
		{"gz", Gzip, true},
		{"zstd", Zstd, true},
		{"zst", Zstd, true},
		{"snappy", Snappy, true},
		{"snap", Snappy, true},
		{"brotli", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.input)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseCompression(%q) = %v, %v", tt.input, got, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseCompression(%q) should fail", tt.input)
		}
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	for _, algo := range []CompressionAlgorithm{Gzip, Zstd} {
		if _, err := Decompress([]byte("not compressed data"), algo); err == nil {
			t.Errorf("%s: expected error for corrupt input", algo)
		}
	}
}
