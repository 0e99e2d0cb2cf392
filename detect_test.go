package based

import (
	"reflect"
	"testing"
)

func TestDetect_Base64Sample(t *testing.T) {
	reg := mustRegistry(t)
	d := mustGet(t, reg, "base64")
	sample := Encode([]byte("Hello, World!"), d)

	got := Detect(sample, reg, 10)
	if len(got) == 0 {
		t.Fatal("no candidates")
	}
	if got[0] != "base64" {
		t.Errorf("top candidate = %q, want base64 (all: %v)", got[0], got)
	}
}

func TestDetect_HexSample(t *testing.T) {
	reg := mustRegistry(t)
	got := Detect("48656c6c6f", reg, 10)
	if len(got) == 0 {
		t.Fatal("no candidates")
	}
	// hex and hex_math are structurally indistinguishable; the fixed
	// tie-break puts hex (name order) first.
	if got[0] != "hex" || got[1] != "hex_math" {
		t.Errorf("top candidates = %v, want hex then hex_math", got[:2])
	}
}

func TestDetect_ByteRangeSample(t *testing.T) {
	reg := mustRegistry(t)
	d := mustGet(t, reg, "braille")
	sample := Encode([]byte("tactile"), d)

	got := Detect(sample, reg, 5)
	if len(got) == 0 || got[0] != "braille" {
		t.Errorf("candidates = %v, want braille first", got)
	}
}

func TestDetect_NoMatch(t *testing.T) {
	reg := mustRegistry(t)
	if got := Detect("⌘⌘⌘", reg, 5); len(got) != 0 {
		t.Errorf("expected no candidates, got %v", got)
	}
}

func TestDetect_EmptyAndCap(t *testing.T) {
	reg := mustRegistry(t)
	if got := Detect("", reg, 5); got != nil {
		t.Errorf("empty sample: got %v", got)
	}
	if got := Detect("   \n ", reg, 5); got != nil {
		t.Errorf("whitespace sample: got %v", got)
	}
	if got := Detect("4869", reg, 0); got != nil {
		t.Errorf("zero cap: got %v", got)
	}
	if got := Detect("4869", reg, 2); len(got) != 2 {
		t.Errorf("cap 2: got %d candidates", len(got))
	}
}

// Padding rules eliminate structurally inconsistent chunked candidates.
func TestDetect_PaddingConsistency(t *testing.T) {
	reg := mustRegistry(t)

	// Interior padding can come from no chunked scheme.
	for _, name := range Detect("SG=sbG8=", reg, 20) {
		if name == "base64" {
			t.Error("base64 should be eliminated for interior padding")
		}
	}

	// A padded base64 sample excludes dictionaries lacking '='.
	for _, name := range Detect("SGVsbG8=", reg, 20) {
		if name == "base62" || name == "base64url" {
			t.Errorf("%s should be eliminated: '=' is not in its alphabet", name)
		}
	}
}

func TestDetect_LengthConsistency(t *testing.T) {
	reg := mustRegistry(t)

	// Five base64 symbols is not an achievable unpadded count.
	for _, name := range Detect("SGVsb", reg, 20) {
		if name == "base64" || name == "base64url" {
			t.Errorf("%s should be eliminated for impossible length", name)
		}
	}
}

func TestDetect_LineWrappingTolerated(t *testing.T) {
	reg := mustRegistry(t)
	got := Detect("SGVsbG8s\nIFdvcmxkIQ==", reg, 5)
	if len(got) == 0 || got[0] != "base64" {
		t.Errorf("wrapped sample: got %v, want base64 first", got)
	}
}

func TestDetector_MemoMatchesColdPath(t *testing.T) {
	reg := mustRegistry(t)
	dt := NewDetector(reg)
	sample := Encode([]byte("memoized sample"), mustGet(t, reg, "base32"))

	cold := Detect(sample, reg, 8)
	first := dt.Detect(sample, 8)
	second := dt.Detect(sample, 8)

	if !reflect.DeepEqual(first, cold) {
		t.Errorf("detector result %v differs from cold path %v", first, cold)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("memoized call differs: %v vs %v", first, second)
	}

	// Callers own the returned slice.
	first[0] = "mutated"
	if third := dt.Detect(sample, 8); third[0] == "mutated" {
		t.Error("memoized slice leaked to caller")
	}
}

func TestDetect_Deterministic(t *testing.T) {
	reg := mustRegistry(t)
	sample := Encode([]byte{0xDE, 0xAD, 0xBE, 0xEF}, mustGet(t, reg, "base62"))
	want := Detect(sample, reg, 10)
	for i := 0; i < 10; i++ {
		if got := Detect(sample, reg, 10); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: %v != %v", i, got, want)
		}
	}
}
