// File: dictionary.go
// Role: Dictionary construction, membership, and single-character neighbor discovery.
//
// Determinism:
//   - Words() and WordsOfLength() return words sorted lexicographically ascending.
//   - NeighborsOf() returns neighbors in letter-major order ('a'..'z' outer, position inner).
package core

import (
	"sort"
	"unicode/utf8"
)

// NewDictionary builds a Dictionary holding the given words.
// Duplicates collapse; words are stored verbatim.
// Complexity: O(n).
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.words[w] = struct{}{}
	}

	return d
}

// Add inserts w. Adding an existing word is a no-op.
func (d *Dictionary) Add(w string) {
	d.words[w] = struct{}{}
}

// Contains reports whether w is in the dictionary. A nil Dictionary contains nothing.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[w]

	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.words)
}

// Words returns every word, sorted.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// WordsOfLength returns every word whose length is n characters, sorted.
func (d *Dictionary) WordsOfLength(n int) []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0)
	for w := range d.words {
		if WordLen(w) == n {
			out = append(out, w)
		}
	}
	sort.Strings(out)

	return out
}

// NeighborsOf returns every dictionary word obtained from word by replacing a
// single character with a different lowercase letter.
//
// Implementation:
//   - Stage 1: Record the byte offset of every character once. Invalid UTF-8
//     bytes count as one character each and are kept verbatim, so a word
//     holding them still matches its dictionary neighbors.
//   - Stage 2: For each letter 'a'..'z', for each position holding a different
//     character, splice the letter in and probe the dictionary.
//
// Behavior highlights:
//   - The word itself is never returned.
//   - An empty word or a nil dictionary yields no neighbors.
//
// Complexity:
//   - Time O(26·L²) (26·L probes, each building an L-character candidate), Space O(L).
func (d *Dictionary) NeighborsOf(word string) []string {
	if d == nil || word == "" || len(d.words) == 0 {
		return nil
	}

	// offsets[i] is where character i starts; the last entry is len(word)
	offsets := make([]int, 0, len(word)+1)
	for i := 0; i < len(word); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(word[i:])
		i += size
	}
	offsets = append(offsets, len(word))

	var out []string
	for letter := byte(FirstLetter); letter <= LastLetter; letter++ {
		for i := 0; i < len(offsets)-1; i++ {
			lo, hi := offsets[i], offsets[i+1]
			if hi-lo == 1 && word[lo] == letter {
				continue
			}
			candidate := word[:lo] + string(letter) + word[hi:]
			if _, ok := d.words[candidate]; ok {
				out = append(out, candidate)
			}
		}
	}

	return out
}
