package core

import "strings"

// NewChain returns a Chain holding a copy of words.
func NewChain(words ...string) Chain {
	c := make(Chain, len(words))
	copy(c, words)

	return c
}

// Len returns the number of words in the chain.
func (c Chain) Len() int { return len(c) }

// Begin returns the first word, or "" for an empty chain.
func (c Chain) Begin() string {
	if len(c) == 0 {
		return ""
	}

	return c[0]
}

// End returns the last word, or "" for an empty chain.
func (c Chain) End() string {
	if len(c) == 0 {
		return ""
	}

	return c[len(c)-1]
}

// Equal reports whether c and other hold the same words in the same order.
func (c Chain) Equal(other Chain) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}

	return true
}

// Words returns the chain as a plain string slice (a copy).
func (c Chain) Words() []string {
	out := make([]string, len(c))
	copy(out, c)

	return out
}

// String renders the chain as comma-joined words.
func (c Chain) String() string {
	return strings.Join(c, ",")
}

// Connected reports whether every consecutive pair of words is Adjacent.
// Single-word and empty chains are trivially connected.
func (c Chain) Connected() bool {
	for i := 1; i < len(c); i++ {
		if !Adjacent(c[i-1], c[i]) {
			return false
		}
	}

	return true
}
