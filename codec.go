package based

// Encode converts data to text using the dictionary's mode. It is total:
// any byte sequence encodes successfully against a dictionary that
// passed construction, and empty input encodes to the empty string.
func Encode(data []byte, d *Dictionary) string {
	switch d.mode {
	case ModeChunked:
		return encodeChunked(data, d)
	case ModeByteRange:
		return encodeByteRange(data, d)
	default:
		return encodeBaseConversion(data, d)
	}
}

// Decode converts encoded text back to bytes. It fails with
// InvalidCharacterError for symbols outside the dictionary,
// InvalidPaddingError for misplaced or miscounted padding, and
// ErrEmptyInput for an empty string in base-conversion or chunked mode.
func Decode(encoded string, d *Dictionary) ([]byte, error) {
	switch d.mode {
	case ModeChunked:
		return decodeChunked(encoded, d)
	case ModeByteRange:
		return decodeByteRange(encoded, d)
	default:
		return decodeBaseConversion(encoded, d)
	}
}
