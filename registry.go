package based

import (
	"math/rand/v2"
	"os"
	"sort"
)

// Registry is an immutable name-to-dictionary snapshot. Assemble one
// with NewRegistry or LoadRegistry and pass it explicitly; there is no
// package-level mutable registry.
type Registry struct {
	names []string // sorted
	dicts map[string]*Dictionary
}

// NewRegistry merges configuration layers in order (later layers replace
// earlier entries by name), builds every dictionary, and returns the
// snapshot. The merge is pure: input maps are not modified.
func NewRegistry(layers ...map[string]DictionaryConfig) (*Registry, error) {
	merged := make(map[string]DictionaryConfig)
	for _, layer := range layers {
		for name, cfg := range layer {
			merged[name] = cfg
		}
	}

	r := &Registry{
		names: make([]string, 0, len(merged)),
		dicts: make(map[string]*Dictionary, len(merged)),
	}
	for name, cfg := range merged {
		d, err := cfg.Build(name)
		if err != nil {
			return nil, err
		}
		r.names = append(r.names, name)
		r.dicts[name] = d
	}
	sort.Strings(r.names)
	return r, nil
}

// DefaultRegistry builds a registry from the built-in definitions only.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry(BuiltinConfig())
}

// LoadRegistry builds a registry from the built-in definitions overlaid
// with the configuration files at the given paths, in order. Paths that
// do not exist are skipped; files that exist but fail to parse are
// reported.
func LoadRegistry(paths ...string) (*Registry, error) {
	layers := []map[string]DictionaryConfig{BuiltinConfig()}
	for _, path := range paths {
		layer, err := LoadConfigFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		layers = append(layers, layer)
	}
	return NewRegistry(layers...)
}

// Get returns the named dictionary.
func (r *Registry) Get(name string) (*Dictionary, bool) {
	d, ok := r.dicts[name]
	return d, ok
}

// Names returns all dictionary names in sorted order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of registered dictionaries.
func (r *Registry) Len() int { return len(r.names) }

// Random returns a uniformly chosen dictionary and its name.
func (r *Registry) Random() (string, *Dictionary, error) {
	if len(r.names) == 0 {
		return "", nil, configErrorf("registry is empty")
	}
	name := r.names[rand.IntN(len(r.names))]
	return name, r.dicts[name], nil
}
