package based

import (
	"sort"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Dictionary detection: given an encoded sample, rank which registered
// dictionaries could plausibly have produced it. Candidates are
// eliminated structurally (symbol containment, padding consistency,
// length alignment) and survivors ordered by a fixed specificity rank,
// so results are reproducible for a given registry.

const detectMemoSize = 256

// Detector ranks plausible source dictionaries for encoded samples. It
// memoizes results per (sample, cap) in a bounded LRU, which pays off
// for interactive callers probing the same sample repeatedly. A Detector
// is safe for concurrent use.
type Detector struct {
	reg  *Registry
	memo *lru.Cache[detectKey, []string]
}

type detectKey struct {
	sample string
	max    int
}

// NewDetector creates a detector over a registry snapshot.
func NewDetector(reg *Registry) *Detector {
	memo, _ := lru.New[detectKey, []string](detectMemoSize)
	return &Detector{reg: reg, memo: memo}
}

// Detect returns up to max candidate dictionary names, most plausible
// first, or an empty list when nothing structurally matches.
func (dt *Detector) Detect(sample string, max int) []string {
	key := detectKey{sample: sample, max: max}
	if cached, ok := dt.memo.Get(key); ok {
		out := make([]string, len(cached))
		copy(out, cached)
		return out
	}
	result := detect(sample, dt.reg, max)
	dt.memo.Add(key, result)
	out := make([]string, len(result))
	copy(out, result)
	return out
}

// Detect is the one-shot form of Detector.Detect.
func Detect(sample string, reg *Registry, max int) []string {
	return detect(sample, reg, max)
}

func detect(sample string, reg *Registry, max int) []string {
	sample = strings.TrimSpace(sample)
	if sample == "" || max <= 0 {
		return nil
	}

	type candidate struct {
		name string
		rank float64
	}
	var cands []candidate
	for _, name := range reg.names { // sorted: deterministic iteration
		d := reg.dicts[name]
		if plausible(sample, d) {
			cands = append(cands, candidate{name: name, rank: specificity(d.Size())})
		}
	}

	// Higher specificity first; the stable sort keeps the name order for
	// equal ranks. This tie-break rule is fixed deliberately so detect
	// output is reproducible (see DESIGN.md).
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].rank > cands[j].rank
	})

	if len(cands) > max {
		cands = cands[:max]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}

// plausible applies the structural elimination rules for one candidate.
func plausible(sample string, d *Dictionary) bool {
	syms := 0
	pads := 0
	for _, r := range sample {
		if pad, ok := d.Padding(); ok && r == pad {
			pads++
			continue
		}
		if pads > 0 {
			return false // interior padding
		}
		if _, ok := d.ValueOf(r); ok {
			syms++
			continue
		}
		if unicode.IsSpace(r) {
			continue // tolerate line wrapping
		}
		return false
	}
	if syms == 0 {
		return false
	}

	if d.mode == ModeChunked {
		// A chunked symbol count is achievable only when it is minimal
		// for the byte count it implies.
		implied := syms * d.width / 8
		if syms != (implied*8+d.width-1)/d.width {
			return false
		}
		if pads > 0 {
			block := blockSymbols(d.width)
			if pads >= block || (syms+pads)%block != 0 {
				return false
			}
		}
	}
	return true
}

// specificity ranks dictionary sizes so canonical, focused alphabets
// order before exotic ones when several survive elimination.
func specificity(size int) float64 {
	switch {
	case size == 16:
		return 1.0
	case size == 32:
		return 0.95
	case size == 64:
		return 0.92
	case size == 58:
		return 0.90
	case size == 62:
		return 0.88
	case size < 64:
		return 0.85
	case size == 85:
		return 0.70
	case size < 128:
		return 0.75
	case size == 256:
		return 0.60
	default:
		return 0.65
	}
}
