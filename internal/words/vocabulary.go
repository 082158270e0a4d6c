// Package words resolves and holds the vocabulary of legal 5-letter words.
package words

import (
	"math/rand"
	"sort"
	"strings"
)

// Length is the number of letters in every word.
const Length = 5

// Vocabulary is an immutable, sorted set of unique words.
// Every member is exactly Length lowercase ASCII letters.
type Vocabulary struct {
	words []string
	set   map[string]struct{}
}

// NewVocabulary builds a vocabulary from raw candidates. Candidates are
// normalized; invalid ones are dropped and duplicates collapse.
func NewVocabulary(candidates []string) *Vocabulary {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		if w, ok := Normalize(c); ok {
			set[w] = struct{}{}
		}
	}

	list := make([]string, 0, len(set))
	for w := range set {
		list = append(list, w)
	}
	sort.Strings(list)

	return &Vocabulary{words: list, set: set}
}

// Len returns the number of words.
func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.words)
}

// Words returns a copy of the sorted word list.
func (v *Vocabulary) Words() []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.words))
	copy(out, v.words)
	return out
}

// At returns the i-th word in sorted order.
func (v *Vocabulary) At(i int) string {
	return v.words[i]
}

// Contains reports whether w is a legal word. Case is ignored.
func (v *Vocabulary) Contains(w string) bool {
	if v == nil {
		return false
	}
	_, ok := v.set[strings.ToLower(w)]
	return ok
}

// Random returns a uniformly chosen word.
func (v *Vocabulary) Random(rng *rand.Rand) string {
	return v.words[rng.Intn(len(v.words))]
}

// Normalize trims and lowercases a candidate and reports whether it is a valid word.
func Normalize(candidate string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(candidate))
	if len(w) != Length {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return "", false
		}
	}
	return w, true
}

// Filter returns the normalized valid words from lines, keeping their order.
func Filter(lines []string) []string {
	var out []string
	for _, line := range lines {
		if w, ok := Normalize(line); ok {
			out = append(out, w)
		}
	}
	return out
}
