package based

import (
	"bytes"
	"io"
	"strings"
)

// Chunked codec: the input is a contiguous bit-stream, most-significant
// bit first within each byte, partitioned into width-bit groups. The
// final short group is completed with zero bits. With padding configured,
// padding symbols fill the output to the block boundary: the smallest
// symbol count whose bit length is a multiple of lcm(width, 8).
//
// The bit/byte alignment pattern repeats every periodBytes bytes, which
// is what makes windowed streaming byte-identical to whole-buffer
// encoding (see stream.go).

// blockSymbols returns the symbol count of one padding block,
// lcm(width, 8) / width.
func blockSymbols(width int) int {
	return 8 / gcd(width, 8)
}

// periodBytes returns the byte length of one alignment period,
// lcm(width, 8) / 8.
func periodBytes(width int) int {
	return width / gcd(width, 8)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

type runeWriter interface {
	WriteRune(r rune) (int, error)
}

// chunkedEncoder carries bit-buffer state across pushes so callers can
// feed input in arbitrary slices.
type chunkedEncoder struct {
	d      *Dictionary
	bitBuf uint32
	nbits  int
	count  int // symbols emitted
}

func (e *chunkedEncoder) push(data []byte, w runeWriter) error {
	width := e.d.width
	mask := uint32(1)<<width - 1
	for _, b := range data {
		e.bitBuf = e.bitBuf<<8 | uint32(b)
		e.nbits += 8
		for e.nbits >= width {
			e.nbits -= width
			if _, err := w.WriteRune(e.d.SymbolOf(int(e.bitBuf >> e.nbits & mask))); err != nil {
				return err
			}
			e.count++
		}
	}
	return nil
}

// finish flushes the final short group and appends padding symbols up to
// the block boundary when the dictionary configures padding.
func (e *chunkedEncoder) finish(w runeWriter) error {
	width := e.d.width
	if e.nbits > 0 {
		mask := uint32(1)<<width - 1
		sym := e.bitBuf << (width - e.nbits) & mask
		if _, err := w.WriteRune(e.d.SymbolOf(int(sym))); err != nil {
			return err
		}
		e.nbits = 0
		e.count++
	}
	if pad, ok := e.d.Padding(); ok {
		block := blockSymbols(width)
		for e.count%block != 0 {
			if _, err := w.WriteRune(pad); err != nil {
				return err
			}
			e.count++
		}
	}
	return nil
}

// chunkedDecoder consumes symbols one at a time, emitting whole bytes as
// they complete. Leftover zero-completion bits never form a byte and are
// discarded implicitly.
type chunkedDecoder struct {
	d      *Dictionary
	bitBuf uint32
	nbits  int
	pos    int // symbol index, for error reporting
	syms   int // non-padding symbols consumed
	pads   int
}

func (dec *chunkedDecoder) push(r rune, w io.ByteWriter) error {
	if pad, ok := dec.d.Padding(); ok && r == pad {
		dec.pads++
		dec.pos++
		return nil
	}
	if dec.pads > 0 {
		return &InvalidPaddingError{Pos: dec.pos, Reason: "symbol after padding"}
	}
	v, ok := dec.d.ValueOf(r)
	if !ok {
		return &InvalidCharacterError{Symbol: r, Pos: dec.pos}
	}
	width := dec.d.width
	dec.bitBuf = dec.bitBuf<<width | uint32(v)
	dec.nbits += width
	for dec.nbits >= 8 {
		dec.nbits -= 8
		if err := w.WriteByte(byte(dec.bitBuf >> dec.nbits)); err != nil {
			return err
		}
	}
	dec.pos++
	dec.syms++
	return nil
}

// finish validates the trailing padding count against the block
// alignment rule.
func (dec *chunkedDecoder) finish() error {
	if dec.pads == 0 {
		return nil
	}
	block := blockSymbols(dec.d.width)
	if dec.pads >= block || (dec.syms+dec.pads)%block != 0 {
		return &InvalidPaddingError{Pos: dec.pos, Reason: "padding count misaligned with block size"}
	}
	// The data symbols must be the minimal count for the bytes they
	// carry; "A===" pads a group that encodes no byte at all.
	implied := dec.syms * dec.d.width / 8
	if dec.syms != (implied*8+dec.d.width-1)/dec.d.width {
		return &InvalidPaddingError{Pos: dec.pos, Reason: "padded input has impossible symbol count"}
	}
	return nil
}

func encodeChunked(data []byte, d *Dictionary) string {
	symbols := (len(data)*8 + d.width - 1) / d.width
	capacity := symbols
	if d.hasPad {
		block := blockSymbols(d.width)
		capacity = (symbols + block - 1) / block * block
	}

	var sb strings.Builder
	sb.Grow(capacity)
	enc := chunkedEncoder{d: d}
	enc.push(data, &sb) // strings.Builder never fails
	enc.finish(&sb)
	return sb.String()
}

func decodeChunked(encoded string, d *Dictionary) ([]byte, error) {
	if encoded == "" {
		return nil, ErrEmptyInput
	}

	var buf bytes.Buffer
	buf.Grow(len(encoded) * d.width / 8)
	dec := chunkedDecoder{d: d}
	for _, r := range encoded {
		if err := dec.push(r, &buf); err != nil {
			return nil, err
		}
	}
	if err := dec.finish(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
