package wordchain

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordchain/bfs"
	"github.com/katalvlaran/wordchain/core"
	"github.com/katalvlaran/wordchain/dfs"
)

// ErrInvalidArgument is returned when the begin word, the end word, or the
// dictionary is absent.
var ErrInvalidArgument = errors.New("wordchain: invalid argument")

// Option configures Resolve.
type Option func(*Options)

// Options holds host-imposed bounds for a resolution. The zero bounds mean
// "unlimited", which is the default.
type Options struct {
	// Ctx allows cancellation of both the build and the enumeration.
	Ctx context.Context

	// MaxChains caps the number of returned chains (0 = all).
	MaxChains int

	// MaxDepth caps the chain length in edits (0 = unlimited).
	MaxDepth int
}

// DefaultOptions returns unbounded options with a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxChains caps the number of returned chains.
func WithMaxChains(n int) Option {
	return func(o *Options) { o.MaxChains = n }
}

// WithMaxDepth caps the number of edits a chain may take.
func WithMaxDepth(d int) Option {
	return func(o *Options) { o.MaxDepth = d }
}

// Resolve returns every shortest chain from begin to end through dict.
//
// It fails with ErrInvalidArgument when begin or end is empty or dict is nil,
// without doing any work. It returns an empty, non-nil slice when begin or end
// is not in dict, when their lengths differ, or when no chain exists.
// Negative bounds surface the builder's or enumerator's ErrOptionViolation.
func Resolve(begin, end string, dict *core.Dictionary, opts ...Option) ([]core.Chain, error) {
	switch {
	case begin == "":
		return nil, fmt.Errorf("%w: begin word is absent", ErrInvalidArgument)
	case end == "":
		return nil, fmt.Errorf("%w: end word is absent", ErrInvalidArgument)
	case dict == nil:
		return nil, fmt.Errorf("%w: dictionary is absent", ErrInvalidArgument)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !dict.Contains(begin) || !dict.Contains(end) || core.WordLen(begin) != core.WordLen(end) {
		return []core.Chain{}, nil
	}

	g, err := bfs.Build(begin, end, dict, bfs.WithContext(o.Ctx), bfs.WithMaxDepth(o.MaxDepth))
	if err != nil {
		return nil, err
	}

	return dfs.Enumerate(g, begin, end, dfs.WithContext(o.Ctx), dfs.WithMaxChains(o.MaxChains))
}
