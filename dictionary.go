package based

import (
	"math/bits"
	"unicode/utf8"
)

// Mode selects the algorithm governing symbol assignment.
type Mode uint8

const (
	// ModeBaseConversion treats the input as one big-endian integer and
	// converts it to the dictionary's radix. Works for any size >= 2.
	ModeBaseConversion Mode = iota

	// ModeChunked maps fixed-width bit groups to symbols. Requires a
	// power-of-two dictionary size between 2 and 256.
	ModeChunked

	// ModeByteRange maps each byte directly to one of exactly 256
	// symbols.
	ModeByteRange
)

// String returns the mode name as used in configuration records.
func (m Mode) String() string {
	switch m {
	case ModeBaseConversion:
		return "base_conversion"
	case ModeChunked:
		return "chunked"
	case ModeByteRange:
		return "byte_range"
	default:
		return "unknown"
	}
}

// ParseMode parses a configuration mode tag. The empty string defaults
// to base conversion.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "base_conversion":
		return ModeBaseConversion, nil
	case "chunked":
		return ModeChunked, nil
	case "byte_range":
		return ModeByteRange, nil
	default:
		return 0, configErrorf("unknown mode %q", s)
	}
}

// Dictionary is an immutable ordered alphabet: symbol order defines
// numeric value. It is safe for concurrent use by any number of
// goroutines once constructed.
type Dictionary struct {
	symbols []rune
	index   map[rune]int
	ascii   *[128]int16 // direct decode table when every symbol is ASCII

	mode    Mode
	padding rune
	hasPad  bool

	// ByteRange with an implied contiguous codepoint range.
	start   rune
	implied bool

	// Symbol bit width for chunked mode.
	width int
}

// NewBaseConversion builds a base-conversion dictionary from an ordered
// symbol string.
func NewBaseConversion(symbols string) (*Dictionary, error) {
	return newDictionary([]rune(symbols), ModeBaseConversion, 0, false)
}

// NewChunked builds a chunked dictionary. padding is the padding symbol,
// or 0 for none.
func NewChunked(symbols string, padding rune) (*Dictionary, error) {
	return newDictionary([]rune(symbols), ModeChunked, padding, padding != 0)
}

// NewByteRange builds a byte-range dictionary over the 256 contiguous
// codepoints beginning at start.
func NewByteRange(start rune) (*Dictionary, error) {
	end := start + 255
	if start < 0 || end > utf8.MaxRune || (start <= 0xDFFF && end >= 0xD800) {
		return nil, configErrorf("byte range U+%04X..U+%04X is not a valid codepoint range", start, end)
	}
	return &Dictionary{mode: ModeByteRange, start: start, implied: true}, nil
}

// NewByteRangeSymbols builds a byte-range dictionary from an explicit
// list of exactly 256 symbols.
func NewByteRangeSymbols(symbols string) (*Dictionary, error) {
	return newDictionary([]rune(symbols), ModeByteRange, 0, false)
}

func newDictionary(symbols []rune, mode Mode, padding rune, hasPad bool) (*Dictionary, error) {
	size := len(symbols)
	switch mode {
	case ModeBaseConversion:
		if size < 2 {
			return nil, configErrorf("base conversion requires at least 2 symbols, got %d", size)
		}
	case ModeChunked:
		if size < 2 || size > 256 || size&(size-1) != 0 {
			return nil, configErrorf("chunked mode requires a power-of-two size between 2 and 256, got %d", size)
		}
	case ModeByteRange:
		if size != 256 {
			return nil, configErrorf("byte range mode requires exactly 256 symbols or a start codepoint, got %d symbols", size)
		}
	}
	if hasPad && mode != ModeChunked {
		return nil, configErrorf("padding is only meaningful for chunked mode")
	}

	d := &Dictionary{
		symbols: symbols,
		index:   make(map[rune]int, size),
		mode:    mode,
		padding: padding,
		hasPad:  hasPad,
	}
	allASCII := true
	for i, r := range symbols {
		if _, dup := d.index[r]; dup {
			return nil, configErrorf("duplicate symbol %q", r)
		}
		if hasPad && r == padding {
			return nil, configErrorf("padding symbol %q is also an alphabet symbol", r)
		}
		d.index[r] = i
		if r >= 128 {
			allASCII = false
		}
	}
	if allASCII {
		var table [128]int16
		for i := range table {
			table[i] = -1
		}
		for i, r := range symbols {
			table[r] = int16(i)
		}
		d.ascii = &table
	}
	if mode == ModeChunked {
		d.width = bits.TrailingZeros(uint(size))
	}
	return d, nil
}

// Size returns the number of symbols (the radix).
func (d *Dictionary) Size() int {
	if d.implied {
		return 256
	}
	return len(d.symbols)
}

// Mode returns the encoding mode.
func (d *Dictionary) Mode() Mode { return d.mode }

// Padding returns the padding symbol, if one is configured.
func (d *Dictionary) Padding() (rune, bool) { return d.padding, d.hasPad }

// ValueOf returns the numeric value of a symbol, or false if the symbol
// is not part of the dictionary.
func (d *Dictionary) ValueOf(r rune) (int, bool) {
	if d.implied {
		if r >= d.start && r <= d.start+255 {
			return int(r - d.start), true
		}
		return 0, false
	}
	if d.ascii != nil {
		if r < 0 || r >= 128 {
			return 0, false
		}
		v := d.ascii[r]
		if v < 0 {
			return 0, false
		}
		return int(v), true
	}
	v, ok := d.index[r]
	return v, ok
}

// SymbolOf returns the symbol for a value. The caller guarantees
// v < Size().
func (d *Dictionary) SymbolOf(v int) rune {
	if d.implied {
		return d.start + rune(v)
	}
	return d.symbols[v]
}
