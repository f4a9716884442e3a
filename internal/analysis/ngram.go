package analysis

import (
	"sort"

	"github.com/SeamusWaldron/neoncube"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int               `json:"n"`
	Sequence    []string          `json:"sequence"`
	Count       int               `json:"count"`
	Occurrences []NGramOccurrence `json:"occurrences,omitempty"`
}

// NGramOccurrence represents where an n-gram was found.
type NGramOccurrence struct {
	StartIndex int   `json:"start_index"`
	TsMs       int64 `json:"ts_ms,omitempty"`
}

// NGramReport contains the results of n-gram mining, keyed by n.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"`
}

const maxOccurrences = 10

// RollingHash is a Rabin-Karp rolling hash over move tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint16
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   131,
		n:      n,
		window: make([]uint16, 0, n),
	}

	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}

	return rh
}

// Roll pushes a token, dropping the oldest once the window is full.
func (rh *RollingHash) Roll(token uint16) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint16 {
	result := make([]uint16, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

type ngramEntry struct {
	tokens      []uint16
	count       int
	occurrences []NGramOccurrence
}

// MineNGrams finds the topK most frequent repeated sequences for each
// length in [minN, maxN]. Sequences seen once are not reported.
func MineNGrams(moves []neoncube.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{
		TopNGrams: make(map[int][]NGram),
	}
	if minN < 1 || len(moves) < minN {
		return report
	}

	// Tokens index a vocabulary of the notations in this solve.
	vocab := make(map[string]uint16)
	var names []string
	tokens := make([]uint16, len(moves))
	for i, m := range moves {
		n := m.Notation()
		tok, ok := vocab[n]
		if !ok {
			tok = uint16(len(names))
			vocab[n] = tok
			names = append(names, n)
		}
		tokens[i] = tok
	}

	for n := minN; n <= maxN && n <= len(moves); n++ {
		if ngrams := mineNGramsForN(tokens, names, moves, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}

	return report
}

func mineNGramsForN(tokens []uint16, names []string, moves []neoncube.Move, n, topK int) []NGram {
	counts := make(map[uint64][]*ngramEntry)
	var order []*ngramEntry
	rh := NewRollingHash(n)

	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}

		start := i - n + 1
		occ := NGramOccurrence{StartIndex: start}
		if t := moves[start].Time; !t.IsZero() {
			occ.TsMs = t.UnixMilli()
		}

		window := rh.Window()
		var entry *ngramEntry
		for _, e := range counts[rh.Hash()] {
			if tokensEqual(e.tokens, window) {
				entry = e
				break
			}
		}
		if entry == nil {
			entry = &ngramEntry{tokens: window}
			counts[rh.Hash()] = append(counts[rh.Hash()], entry)
			order = append(order, entry)
		}
		entry.count++
		if len(entry.occurrences) < maxOccurrences {
			entry.occurrences = append(entry.occurrences, occ)
		}
	}

	var repeated []*ngramEntry
	for _, e := range order {
		if e.count >= 2 {
			repeated = append(repeated, e)
		}
	}

	// Ties keep first-seen order.
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].count > repeated[j].count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}

	result := make([]NGram, len(repeated))
	for i, e := range repeated {
		sequence := make([]string, len(e.tokens))
		for j, tok := range e.tokens {
			sequence[j] = names[tok]
		}
		result[i] = NGram{
			N:           n,
			Sequence:    sequence,
			Count:       e.count,
			Occurrences: e.occurrences,
		}
	}

	return result
}

func tokensEqual(a, b []uint16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
