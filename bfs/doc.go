// Package bfs builds the layered word graph that chain enumeration walks.
//
// What
//
//   - Explore dictionary words of the start word's length in non-decreasing
//     distance (substitution count) from a start word.
//   - Returns a *core.Graph containing:
//   - every same-length dictionary word as a vertex
//   - distance: layer of every reached word
//   - neighbors: every edge discovered while expanding a word, in discovery order
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a word is enqueued)
//   - OnDequeue (immediately before a word is expanded)
//   - OnEdge    (for each recorded edge)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Level-complete termination
//
//	The queue is processed in whole levels. When the end word is first
//	reached, no further level is started, but the level being processed
//	still expands every remaining word. Without that, a second word on the
//	same layer with an edge into the end word would never record it, and
//	enumeration would miss shortest chains.
//
//	Edges towards already-visited words are recorded too. Some of them point
//	sideways (same layer) or back; the enumerator ignores those through
//	core.Graph.NextLayer.
//
// Determinism
//
//	Neighbors are discovered in letter-major order (core.Dictionary.NeighborsOf),
//	so the recorded edges, and therefore the chain order downstream, are
//	fully reproducible for a given dictionary.
//
// Complexity (V = same-length words reached, L = word length)
//
//   - Time:   O(V · 26 · L²)
//   - Memory: O(V + E) for the queue, distances and recorded edges.
//
// Usage
//
//	g, err := bfs.Build("cat", "dog", dict)
//	if err != nil {
//	    // handle one of:
//	    // ErrDictionaryNil, ErrStartNotFound, ErrOptionViolation, ErrConnect, ctx errors
//	}
//
//	g, err := bfs.Build(
//	    "cat", "dog", dict,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(6),
//	    bfs.WithOnEdge(func(from, to string) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrDictionaryNil     if the dictionary pointer is nil.
//   - ErrStartNotFound     if the start word is not in the dictionary.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - ErrConnect           if an edge or distance cannot be recorded.
//   - ctx.Err()            if the context is cancelled mid-build.
package bfs
