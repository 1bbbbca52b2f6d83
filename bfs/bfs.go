// Package bfs builds the layered word graph used for chain enumeration.
//
// Build runs a breadth-first search from a start word over the dictionary,
// recording every single-substitution edge it discovers and each reached
// word's distance from the start. The search stops once the end word has
// been reached, but only after the level in which it was found is complete.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordchain/core"
)

// queueItem pairs a word with its BFS layer.
type queueItem struct {
	word  string
	depth int
}

// builder encapsulates mutable BFS state.
type builder struct {
	graph *core.Graph
	dict  *core.Dictionary
	end   string
	opts  BuildOptions
	ctx   context.Context
	queue []queueItem
	found bool // end word has been assigned a distance
}

// Build constructs the layered graph for start → end over dict,
// applying any number of functional Options.
//
// The returned graph contains every dictionary word of start's length as a
// vertex; distances are set for each word reached, and edges are recorded
// for each expanded word in discovery order. When start == end the target is
// reached at layer 0 and nothing is expanded.
//
// Returns ErrDictionaryNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrConnect for graph failures, or
// the context error on cancellation (with the partial graph).
func Build(start, end string, dict *core.Dictionary, opts ...Option) (*core.Graph, error) {
	if dict == nil {
		return nil, ErrDictionaryNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start word
	if !dict.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	g := core.NewGraph(dict, core.WordLen(start))
	b := &builder{
		graph: g,
		dict:  dict,
		end:   end,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, g.VertexCount()),
	}

	// Seed with the start word at layer 0
	if err := g.SetDistance(start, 0); err != nil {
		return nil, err
	}
	b.found = start == end
	b.enqueue(start, 0)

	return g, b.loop()
}

// enqueue calls OnEnqueue and adds word to the queue.
func (b *builder) enqueue(word string, depth int) {
	b.opts.OnEnqueue(word, depth)
	b.queue = append(b.queue, queueItem{word: word, depth: depth})
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (b *builder) dequeue() queueItem {
	item := b.queue[0]
	b.queue = b.queue[1:]
	b.opts.OnDequeue(item.word, item.depth)

	return item
}

// loop processes the queue level by level. The size of the frontier is
// captured at the top of each level and exactly that many items are expanded
// before the found flag is re-checked, so every edge into the end word's
// layer is recorded.
func (b *builder) loop() error {
	for len(b.queue) > 0 && !b.found {
		levelSize := len(b.queue)
		for i := 0; i < levelSize; i++ {
			// cancellation check (once per expanded word)
			select {
			case <-b.ctx.Done():
				return b.ctx.Err()
			default:
			}

			if err := b.expand(b.dequeue()); err != nil {
				return err
			}
		}
	}

	return nil
}

// expand records an edge to every dictionary neighbor of item and assigns
// the next layer to neighbors seen for the first time. The end word is never
// enqueued; reaching it sets the found flag instead.
func (b *builder) expand(item queueItem) error {
	nextDepth := item.depth + 1
	for _, nb := range b.dict.NeighborsOf(item.word) {
		// always record the edge, even towards visited words
		if err := b.graph.Connect(item.word, nb); err != nil {
			return fmt.Errorf("%w: %v", ErrConnect, err)
		}
		b.opts.OnEdge(item.word, nb)

		if b.graph.Visited(nb) {
			continue
		}
		if b.opts.MaxDepth > 0 && nextDepth > b.opts.MaxDepth {
			continue
		}
		if err := b.graph.SetDistance(nb, nextDepth); err != nil {
			return fmt.Errorf("%w: %v", ErrConnect, err)
		}
		if nb == b.end {
			b.found = true
			continue
		}
		b.enqueue(nb, nextDepth)
	}

	return nil
}
