package based

import (
	"math/big"
	"strings"
)

// Base-conversion codec: the whole input is one big-endian unsigned
// integer. Leading zero bytes carry no weight in the integer, so they
// are counted separately and represented as repeated zero-value symbols,
// the same treatment base58-style schemes use. Cost is superlinear in
// input size; very large buffers belong in chunked or byte-range mode.

func encodeBaseConversion(data []byte, d *Dictionary) string {
	if len(data) == 0 {
		return ""
	}

	zeros := 0
	for zeros < len(data) && data[zeros] == 0 {
		zeros++
	}

	var digits []rune
	if zeros < len(data) {
		num := new(big.Int).SetBytes(data[zeros:])
		base := big.NewInt(int64(d.Size()))
		rem := new(big.Int)
		for num.Sign() > 0 {
			num.DivMod(num, base, rem)
			digits = append(digits, d.SymbolOf(int(rem.Int64())))
		}
	}

	var sb strings.Builder
	sb.Grow(zeros + len(digits))
	zero := d.SymbolOf(0)
	for i := 0; i < zeros; i++ {
		sb.WriteRune(zero)
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteRune(digits[i])
	}
	return sb.String()
}

func decodeBaseConversion(encoded string, d *Dictionary) ([]byte, error) {
	if encoded == "" {
		return nil, ErrEmptyInput
	}

	base := big.NewInt(int64(d.Size()))
	num := new(big.Int)
	digit := new(big.Int)
	zeros := 0
	started := false
	pos := 0
	for _, r := range encoded {
		v, ok := d.ValueOf(r)
		if !ok {
			return nil, &InvalidCharacterError{Symbol: r, Pos: pos}
		}
		if !started && v == 0 {
			zeros++
		} else {
			started = true
			num.Mul(num, base)
			digit.SetInt64(int64(v))
			num.Add(num, digit)
		}
		pos++
	}

	body := num.Bytes()
	out := make([]byte, zeros+len(body))
	copy(out[zeros:], body)
	return out, nil
}
