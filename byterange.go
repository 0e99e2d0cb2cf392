package based

import "strings"

// Byte-range codec: byte value b maps to SymbolOf(b), one symbol per
// byte, zero overhead. Streams naturally one byte/symbol at a time.

func encodeByteRange(data []byte, d *Dictionary) string {
	var sb strings.Builder
	sb.Grow(len(data)) // lower bound; multi-byte runes grow as needed
	for _, b := range data {
		sb.WriteRune(d.SymbolOf(int(b)))
	}
	return sb.String()
}

func decodeByteRange(encoded string, d *Dictionary) ([]byte, error) {
	out := make([]byte, 0, len(encoded))
	pos := 0
	for _, r := range encoded {
		v, ok := d.ValueOf(r)
		if !ok {
			return nil, &InvalidCharacterError{Symbol: r, Pos: pos}
		}
		out = append(out, byte(v))
		pos++
	}
	return out, nil
}
