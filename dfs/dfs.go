// Package dfs enumerates every shortest word chain through a layered graph.
//
// Key features:
//   - Enumerate(g, start, end, opts...): depth‑first walk from start along
//     core.Graph.NextLayer edges, snapshotting the path at each arrival at end
//   - Hooks: OnChain with error abort
//   - Limits: MaxChains (0 = unlimited)
//   - Cancellation via context.Context
//
// Complexity:
//
//   - Time:   O(P · D) where P = number of shortest chains, D = chain length,
//     plus the cost of walking dead-end branches of the layered graph.
//   - Memory: O(D) for the path stack, plus the returned chains.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartNotFound          if start is not a vertex of g.
//   - ErrOptionViolation        if an Option is invalid.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnChain.
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordchain/core"
)

// errLimitReached stops the walk once MaxChains chains were collected.
var errLimitReached = errors.New("dfs: chain limit reached")

// dfsWalker encapsulates state during enumeration.
type dfsWalker struct {
	graph  *core.Graph      // layered graph
	end    string           // target word
	opts   EnumerateOptions // enumeration options
	path   []string         // current partial chain (stack)
	chains []core.Chain     // result collector
}

// Enumerate returns every chain from start to end that advances exactly one
// layer per step, in depth-first discovery order. When start == end the
// single chain [start] is returned. An unreachable end yields no chains and
// no error.
func Enumerate(g *core.Graph, start, end string, opts ...Option) ([]core.Chain, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	eopts := DefaultOptions()
	for _, fn := range opts {
		fn(&eopts)
	}
	if eopts.err != nil {
		return nil, eopts.err
	}

	// 3. Verify start
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	walker := &dfsWalker{
		graph:  g,
		end:    end,
		opts:   eopts,
		path:   make([]string, 0, 8),
		chains: make([]core.Chain, 0),
	}

	// 4. Walk; the limit sentinel is a normal stop
	if err := walker.traverse(start); err != nil && !errors.Is(err, errLimitReached) {
		return walker.chains, err
	}

	return walker.chains, nil
}

// traverse pushes id onto the path, records a chain on arrival at end or
// recurses into the next layer otherwise, then pops id.
func (w *dfsWalker) traverse(id string) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Push
	w.path = append(w.path, id)
	defer func() { w.path = w.path[:len(w.path)-1] }()

	// 3. Arrival: snapshot the path
	if id == w.end {
		return w.collect()
	}

	// 4. Explore the next layer only
	for _, nid := range w.graph.NextLayer(id) {
		if err := w.traverse(nid); err != nil {
			return err
		}
	}

	return nil
}

// collect snapshots the current path as a Chain, runs the hook, and enforces MaxChains.
func (w *dfsWalker) collect() error {
	c := core.NewChain(w.path...)
	if w.opts.OnChain != nil {
		if err := w.opts.OnChain(c); err != nil {
			return fmt.Errorf("dfs: OnChain hook for %q: %w", c.String(), err)
		}
	}
	w.chains = append(w.chains, c)
	if w.opts.MaxChains > 0 && len(w.chains) >= w.opts.MaxChains {
		return errLimitReached
	}

	return nil
}
