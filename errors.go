package based

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when decoding an empty string in a mode
	// that cannot represent zero symbols.
	ErrEmptyInput = errors.New("based: cannot decode empty input")

	// ErrUnsupportedMode is returned when streaming is requested for a
	// mode that cannot provide bounded-memory processing.
	ErrUnsupportedMode = errors.New("based: mode does not support bounded-memory streaming")
)

// InvalidCharacterError reports a symbol absent from the dictionary.
type InvalidCharacterError struct {
	Symbol rune
	Pos    int // symbol index within the input
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("based: invalid character %q at position %d", e.Symbol, e.Pos)
}

// InvalidPaddingError reports a padding symbol in an illegal position or
// with an inconsistent count.
type InvalidPaddingError struct {
	Pos    int // symbol index where the violation was observed
	Reason string
}

func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("based: invalid padding at position %d: %s", e.Pos, e.Reason)
}

// ConfigError reports a dictionary definition that violates a
// construction invariant. Dictionary is the registry name when the
// definition came from a configuration record, empty otherwise.
type ConfigError struct {
	Dictionary string
	Reason     string
}

func (e *ConfigError) Error() string {
	if e.Dictionary != "" {
		return fmt.Sprintf("based: dictionary %q: %s", e.Dictionary, e.Reason)
	}
	return "based: " + e.Reason
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}
