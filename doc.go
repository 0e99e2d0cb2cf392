// Package based implements a dictionary-driven codec engine: it converts
// arbitrary binary data to and from a textual representation drawn from a
// named, ordered alphabet ("dictionary").
//
// A dictionary pairs an alphabet with one of three encoding modes:
//   - BaseConversion: arbitrary-radix positional conversion treating the
//     whole input as one big-endian integer (base58/base62 style)
//   - Chunked: fixed-width bit-group encoding for power-of-two alphabet
//     sizes (the RFC 4648 family: base64/base32/base16 style)
//   - ByteRange: direct bijection between byte values and a contiguous
//     block of 256 codepoints (base100 style)
//
// # Encoding and Decoding
//
//	dict, _ := based.NewChunked("0123456789abcdef", 0)
//	text := based.Encode([]byte("Hi"), dict) // "4869"
//	data, err := based.Decode(text, dict)
//
// Encode never fails for a dictionary that passed construction; Decode
// reports typed errors (InvalidCharacterError, InvalidPaddingError,
// ErrEmptyInput) that identify the offending symbol and position.
//
// # Streaming
//
// StreamEncoder and StreamDecoder process unbounded inputs through a
// fixed-size window aligned to the codec's repeating bit/byte period, so
// streamed output is byte-identical to whole-buffer output for Chunked
// and ByteRange dictionaries. BaseConversion cannot stream in bounded
// memory; it is rejected with ErrUnsupportedMode unless the caller opts
// into the buffered fallback. Optional compression and hashing taps can
// be attached to either end of a stream.
//
// # Dictionaries and Detection
//
// A Registry is an immutable name-to-dictionary snapshot assembled from
// layered YAML definitions (built-in set, then user and project
// overrides). Detect ranks which registered dictionaries could plausibly
// have produced a given encoded sample.
//
// # Concurrency
//
// Dictionaries and registries are immutable after construction and safe
// for concurrent use. Every Encode/Decode call is a pure function of its
// inputs. Streaming pipelines are single-threaded; run independent
// pipelines for parallelism.
package based
