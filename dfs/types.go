// Package dfs defines types and options for chain enumeration,
// including cancellation, a per-chain hook, and an optional chain limit.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordchain/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Enumerate.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start word is not a vertex of the graph.
	ErrStartNotFound = errors.New("dfs: start word not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of chain enumeration.
// Use with Enumerate(g, start, end, opts...).
type Option func(*EnumerateOptions)

// EnumerateOptions holds configurable parameters for enumeration.
type EnumerateOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort enumeration early.
	Ctx context.Context

	// OnChain, if non-nil, is invoked for every complete chain as it is found.
	// Returning an error aborts enumeration with that error.
	OnChain func(c core.Chain) error

	// MaxChains, if positive, stops enumeration once that many chains were
	// collected. Zero (the default) returns every chain.
	MaxChains int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an EnumerateOptions struct with:
//   - Background context
//   - No per-chain hook
//   - No chain limit (MaxChains = 0)
func DefaultOptions() EnumerateOptions {
	return EnumerateOptions{
		Ctx:       context.Background(),
		OnChain:   nil,
		MaxChains: 0,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *EnumerateOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnChain returns an Option that installs fn as the per-chain hook.
func WithOnChain(fn func(c core.Chain) error) Option {
	return func(o *EnumerateOptions) {
		o.OnChain = fn
	}
}

// WithMaxChains returns an Option that caps the number of collected chains.
// A limit of 0 means no limit; a negative limit is an ErrOptionViolation.
func WithMaxChains(limit int) Option {
	return func(o *EnumerateOptions) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: MaxChains cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.MaxChains = limit
	}
}
