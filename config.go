package based

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed dictionaries.yaml
var builtinDictionaries []byte

// DictionaryConfig is one dictionary definition record as it appears in
// a configuration file. Construction via Build is the enforcement point
// for the per-mode structural invariants.
type DictionaryConfig struct {
	Symbols        string `yaml:"symbols,omitempty"`
	Mode           string `yaml:"mode,omitempty"` // base_conversion (default), chunked, byte_range
	Padding        string `yaml:"padding,omitempty"`
	StartCodepoint *int32 `yaml:"start_codepoint,omitempty"` // ByteRange only
}

type registryFile struct {
	Dictionaries map[string]DictionaryConfig `yaml:"dictionaries"`
}

// Build constructs and validates the dictionary this record describes.
// name is used only for error reporting.
func (c DictionaryConfig) Build(name string) (*Dictionary, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return nil, named(name, err)
	}

	var pad rune
	if c.Padding != "" {
		r, size := utf8.DecodeRuneInString(c.Padding)
		if size != len(c.Padding) || r == utf8.RuneError {
			return nil, &ConfigError{Dictionary: name, Reason: fmt.Sprintf("padding must be a single symbol, got %q", c.Padding)}
		}
		pad = r
	}

	var d *Dictionary
	switch mode {
	case ModeByteRange:
		switch {
		case c.StartCodepoint != nil:
			d, err = NewByteRange(rune(*c.StartCodepoint))
		case c.Symbols != "":
			d, err = NewByteRangeSymbols(c.Symbols)
		default:
			return nil, &ConfigError{Dictionary: name, Reason: "byte range mode requires start_codepoint or symbols"}
		}
		if err == nil && pad != 0 {
			err = configErrorf("padding is only meaningful for chunked mode")
		}
	case ModeChunked:
		d, err = NewChunked(c.Symbols, pad)
	default:
		if pad != 0 {
			return nil, &ConfigError{Dictionary: name, Reason: "padding is only meaningful for chunked mode"}
		}
		d, err = NewBaseConversion(c.Symbols)
	}
	if err != nil {
		return nil, named(name, err)
	}
	return d, nil
}

// named stamps the registry name onto a ConfigError from the bare
// constructors.
func named(name string, err error) error {
	if ce, ok := err.(*ConfigError); ok && ce.Dictionary == "" {
		return &ConfigError{Dictionary: name, Reason: ce.Reason}
	}
	return err
}

// ParseConfig parses one YAML configuration layer.
func ParseConfig(data []byte) (map[string]DictionaryConfig, error) {
	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("based: parsing dictionary config: %w", err)
	}
	return file.Dictionaries, nil
}

// LoadConfigFile parses the YAML configuration layer at path.
func LoadConfigFile(path string) (map[string]DictionaryConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// BuiltinConfig returns the embedded built-in dictionary definitions.
func BuiltinConfig() map[string]DictionaryConfig {
	cfgs, err := ParseConfig(builtinDictionaries)
	if err != nil {
		// The embedded file ships with the package; a parse failure is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return cfgs
}
