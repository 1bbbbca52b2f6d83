// Package bfs provides tunable options and error definitions
// for the breadth-first layered graph builder.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrDictionaryNil is returned if a nil dictionary pointer is passed.
	ErrDictionaryNil = errors.New("bfs: dictionary is nil")

	// ErrStartNotFound is returned when the start word is absent from the dictionary.
	ErrStartNotFound = errors.New("bfs: start word not in dictionary")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrConnect is returned when an edge cannot be recorded in the graph.
	ErrConnect = errors.New("bfs: edge recording error")
)

// Option configures Build behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Build is invoked.
type Option func(*BuildOptions)

// BuildOptions holds parameters and callbacks to customize graph construction.
type BuildOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a word is enqueued for expansion.
	// Receives the word and its layer.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called immediately before a word is expanded.
	OnDequeue func(word string, depth int)

	// OnEdge is called for every recorded edge from → to, including
	// edges towards words that were already visited.
	OnEdge func(from, to string)

	// MaxDepth, if > 0, leaves words beyond this layer unvisited.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BuildOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnEdge)
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		OnEdge:    func(string, string) {},
		MaxDepth:  0,
		err:       nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnEdge registers a callback to run for every recorded edge.
func WithOnEdge(fn func(from, to string)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnEdge = fn
		}
	}
}

// WithMaxDepth stops visiting words beyond the given layer.
//
//	d > 0: limit to layer d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BuildOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}
