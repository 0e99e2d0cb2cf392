package based

import (
	"bytes"
	"math/rand/v2"
	"sync"
	"testing"
)

// ============================================================
// Test Helpers
// ============================================================

func mustRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry failed: %v", err)
	}
	return reg
}

func mustGet(t *testing.T, reg *Registry, name string) *Dictionary {
	t.Helper()
	d, ok := reg.Get(name)
	if !ok {
		t.Fatalf("dictionary %q not registered", name)
	}
	return d
}

func randomBytes(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.UintN(256))
	}
	return out
}

// ============================================================
// Dispatch and Round-Trip Properties
// ============================================================

func TestRoundTrip_AllBuiltins(t *testing.T) {
	reg := mustRegistry(t)
	rng := rand.New(rand.NewPCG(7, 13))

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			d := mustGet(t, reg, name)
			for _, n := range []int{1, 2, 3, 16, 17, 255, 1024} {
				data := randomBytes(rng, n)
				encoded := Encode(data, d)
				decoded, err := Decode(encoded, d)
				if err != nil {
					t.Fatalf("Decode(%d bytes) failed: %v", n, err)
				}
				if !bytes.Equal(decoded, data) {
					t.Fatalf("round trip mismatch for %d bytes", n)
				}
			}
		})
	}
}

func TestRoundTrip_LeadingZeros(t *testing.T) {
	reg := mustRegistry(t)
	for _, name := range []string{"base58", "base64", "hex_math", "base100"} {
		t.Run(name, func(t *testing.T) {
			d := mustGet(t, reg, name)
			data := []byte{0x00, 0x00, 0x00, 0xFF, 0x00}
			decoded, err := Decode(Encode(data, d), d)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(decoded, data) {
				t.Fatalf("leading zeros lost: got %x, want %x", decoded, data)
			}
		})
	}
}

func TestEncode_EmptyInput(t *testing.T) {
	reg := mustRegistry(t)
	for _, name := range reg.Names() {
		d := mustGet(t, reg, name)
		if got := Encode(nil, d); got != "" {
			t.Errorf("%s: Encode(nil) = %q, want empty", name, got)
		}
	}
}

// Power-of-two bases whose bit width evenly divides 8 produce identical
// output in mathematical and chunked modes.
func TestConvergence_HexModes(t *testing.T) {
	reg := mustRegistry(t)
	chunked := mustGet(t, reg, "hex")
	math := mustGet(t, reg, "hex_math")

	if got := Encode([]byte("Hi"), chunked); got != "4869" {
		t.Errorf("chunked hex: got %q, want %q", got, "4869")
	}
	if got := Encode([]byte("Hi"), math); got != "4869" {
		t.Errorf("mathematical hex: got %q, want %q", got, "4869")
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	reg := mustRegistry(t)
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"base58", true},
		{"base64", true},
		{"hex", true},
		{"base100", false}, // byte range represents the empty sequence
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustGet(t, reg, tt.name)
			decoded, err := Decode("", d)
			if tt.wantErr {
				if err != ErrEmptyInput {
					t.Fatalf("expected ErrEmptyInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(decoded) != 0 {
				t.Fatalf("expected empty output, got %x", decoded)
			}
		})
	}
}

// Dictionaries are shared by reference across concurrent calls.
func TestConcurrentUse(t *testing.T) {
	reg := mustRegistry(t)
	d := mustGet(t, reg, "base64")
	data := []byte("concurrent payload")
	want := Encode(data, d)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Encode(data, d); got != want {
					t.Errorf("concurrent Encode mismatch: %q", got)
					return
				}
				decoded, err := Decode(want, d)
				if err != nil || !bytes.Equal(decoded, data) {
					t.Errorf("concurrent Decode mismatch: %x, %v", decoded, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
