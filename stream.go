package based

import (
	"bufio"
	"bytes"
	"hash"
	"io"
)

// streamWindow is the nominal working-window size. The effective window
// is rounded down to a multiple of the codec's alignment period so every
// full window encodes/decodes independently of its neighbors.
const streamWindow = 4096

// StreamEncoder applies a dictionary to a byte source, writing encoded
// text to a sink through a fixed-size window. Memory use is bounded
// regardless of input length for chunked and byte-range dictionaries.
//
// BaseConversion cannot stream in bounded memory (every output digit may
// depend on the entire remaining input); Encode rejects it with
// ErrUnsupportedMode unless WithBufferedBaseConversion was set, in which
// case the whole input is read first.
type StreamEncoder struct {
	d        *Dictionary
	w        io.Writer
	compress CompressionAlgorithm
	level    int
	hash     HashAlgorithm
	doComp   bool
	doHash   bool
	buffered bool
}

// NewStreamEncoder creates a streaming encoder writing to w.
func NewStreamEncoder(d *Dictionary, w io.Writer) *StreamEncoder {
	return &StreamEncoder{d: d, w: w}
}

// WithCompression compresses the input before encoding. The compressed
// intermediate is buffered in memory, as the compressed size is unknown
// until the input ends.
func (e *StreamEncoder) WithCompression(algo CompressionAlgorithm, level int) *StreamEncoder {
	e.compress = algo
	e.level = level
	e.doComp = true
	return e
}

// WithHashing computes a digest of the plaintext input during encoding;
// Encode returns it.
func (e *StreamEncoder) WithHashing(algo HashAlgorithm) *StreamEncoder {
	e.hash = algo
	e.doHash = true
	return e
}

// WithBufferedBaseConversion allows base-conversion dictionaries by
// loading the whole input into memory. This is a documented trade, not a
// constant-memory stream.
func (e *StreamEncoder) WithBufferedBaseConversion() *StreamEncoder {
	e.buffered = true
	return e
}

// Encode consumes r until EOF. It returns the plaintext digest when
// hashing was requested, nil otherwise. I/O errors from r and the sink
// propagate verbatim.
func (e *StreamEncoder) Encode(r io.Reader) ([]byte, error) {
	if e.d.mode == ModeBaseConversion && !e.buffered {
		return nil, ErrUnsupportedMode
	}

	var hasher hash.Hash
	if e.doHash {
		h, err := NewHasher(e.hash)
		if err != nil {
			return nil, err
		}
		hasher = h
		r = io.TeeReader(r, hasher)
	}

	if e.doComp {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		compressed, err := Compress(data, e.compress, e.level)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(compressed)
	}

	var err error
	switch e.d.mode {
	case ModeChunked:
		err = e.encodeChunked(r)
	case ModeByteRange:
		err = e.encodeByteRange(r)
	default:
		var data []byte
		data, err = io.ReadAll(r)
		if err == nil {
			_, err = io.WriteString(e.w, encodeBaseConversion(data, e.d))
		}
	}
	if err != nil {
		return nil, err
	}
	if hasher != nil {
		return hasher.Sum(nil), nil
	}
	return nil, nil
}

func (e *StreamEncoder) encodeChunked(r io.Reader) error {
	period := periodBytes(e.d.width)
	window := streamWindow - streamWindow%period
	buf := make([]byte, window)
	bw := bufio.NewWriter(e.w)
	enc := chunkedEncoder{d: e.d}
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			if perr := enc.push(buf[:n], bw); perr != nil {
				return perr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if err := enc.finish(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func (e *StreamEncoder) encodeByteRange(r io.Reader) error {
	buf := make([]byte, streamWindow)
	bw := bufio.NewWriter(e.w)
	for {
		n, err := io.ReadFull(r, buf)
		for _, b := range buf[:n] {
			if _, werr := bw.WriteRune(e.d.SymbolOf(int(b))); werr != nil {
				return werr
			}
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StreamDecoder applies a dictionary to a symbol source, writing decoded
// bytes to a sink. Symbols are consumed through a bounded window; the
// final partial window and trailing padding are reconstructed exactly as
// in whole-buffer decoding.
type StreamDecoder struct {
	d          *Dictionary
	w          io.Writer
	decompress CompressionAlgorithm
	hash       HashAlgorithm
	doComp     bool
	doHash     bool
	buffered   bool
}

// NewStreamDecoder creates a streaming decoder writing to w.
func NewStreamDecoder(d *Dictionary, w io.Writer) *StreamDecoder {
	return &StreamDecoder{d: d, w: w}
}

// WithDecompression decompresses the decoded bytes before writing them.
// The compressed intermediate is buffered in memory.
func (sd *StreamDecoder) WithDecompression(algo CompressionAlgorithm) *StreamDecoder {
	sd.decompress = algo
	sd.doComp = true
	return sd
}

// WithHashing computes a digest of the plaintext output during decoding;
// Decode returns it.
func (sd *StreamDecoder) WithHashing(algo HashAlgorithm) *StreamDecoder {
	sd.hash = algo
	sd.doHash = true
	return sd
}

// WithBufferedBaseConversion allows base-conversion dictionaries by
// loading the whole input into memory.
func (sd *StreamDecoder) WithBufferedBaseConversion() *StreamDecoder {
	sd.buffered = true
	return sd
}

// Decode consumes r until EOF. It returns the plaintext digest when
// hashing was requested, nil otherwise. Decode errors carry the symbol
// position; I/O errors propagate verbatim.
func (sd *StreamDecoder) Decode(r io.Reader) ([]byte, error) {
	if sd.d.mode == ModeBaseConversion && !sd.buffered {
		return nil, ErrUnsupportedMode
	}

	if sd.doComp {
		var compressed bytes.Buffer
		inner := NewStreamDecoder(sd.d, &compressed)
		inner.buffered = sd.buffered
		if _, err := inner.Decode(r); err != nil {
			return nil, err
		}
		plain, err := Decompress(compressed.Bytes(), sd.decompress)
		if err != nil {
			return nil, err
		}
		var digest []byte
		if sd.doHash {
			digest, err = HashBytes(plain, sd.hash)
			if err != nil {
				return nil, err
			}
		}
		if _, err := sd.w.Write(plain); err != nil {
			return nil, err
		}
		return digest, nil
	}

	w := sd.w
	var hasher hash.Hash
	if sd.doHash {
		h, err := NewHasher(sd.hash)
		if err != nil {
			return nil, err
		}
		hasher = h
		w = io.MultiWriter(w, hasher)
	}

	var err error
	switch sd.d.mode {
	case ModeChunked:
		err = sd.decodeChunked(r, w)
	case ModeByteRange:
		err = sd.decodeByteRange(r, w)
	default:
		var text []byte
		text, err = io.ReadAll(r)
		if err == nil {
			var data []byte
			data, err = decodeBaseConversion(string(text), sd.d)
			if err == nil {
				_, err = w.Write(data)
			}
		}
	}
	if err != nil {
		return nil, err
	}
	if hasher != nil {
		return hasher.Sum(nil), nil
	}
	return nil, nil
}

func (sd *StreamDecoder) decodeChunked(r io.Reader, w io.Writer) error {
	br := bufio.NewReaderSize(r, streamWindow)
	bw := bufio.NewWriter(w)
	dec := chunkedDecoder{d: sd.d}
	seen := false
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		seen = true
		if derr := dec.push(ch, bw); derr != nil {
			return derr
		}
	}
	if !seen {
		return ErrEmptyInput
	}
	if err := dec.finish(); err != nil {
		return err
	}
	return bw.Flush()
}

func (sd *StreamDecoder) decodeByteRange(r io.Reader, w io.Writer) error {
	br := bufio.NewReaderSize(r, streamWindow)
	bw := bufio.NewWriter(w)
	pos := 0
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		v, ok := sd.d.ValueOf(ch)
		if !ok {
			return &InvalidCharacterError{Symbol: ch, Pos: pos}
		}
		if err := bw.WriteByte(byte(v)); err != nil {
			return err
		}
		pos++
	}
	return bw.Flush()
}

// StreamEncode encodes src to dst with the dictionary's default
// streaming behavior.
func StreamEncode(dst io.Writer, src io.Reader, d *Dictionary) error {
	_, err := NewStreamEncoder(d, dst).Encode(src)
	return err
}

// StreamDecode decodes src to dst with the dictionary's default
// streaming behavior.
func StreamDecode(dst io.Writer, src io.Reader, d *Dictionary) error {
	_, err := NewStreamDecoder(d, dst).Decode(src)
	return err
}
