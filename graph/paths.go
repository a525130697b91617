package graph

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvlds/heap"
)

// Paths holds single-source shortest-path results.
type Paths[T comparable] struct {
	// Source is the start node's value.
	Source T

	// Dist maps each settled node to its minimum distance from Source.
	// Unreached nodes are absent.
	Dist map[T]float64

	// Prev maps each settled node other than Source to its predecessor on
	// one shortest path.
	Prev map[T]T
}

// PathTo rebuilds the shortest path from Source to target, both included.
// It reports false when target was not reached.
func (p *Paths[T]) PathTo(target T) ([]T, bool) {
	if _, ok := p.Dist[target]; !ok {
		return nil, false
	}
	path := []T{target}
	for curr := target; curr != p.Source; {
		curr = p.Prev[curr]
		path = append(path, curr)
	}
	slices.Reverse(path)

	return path, true
}

// frontier is a tentative (node, distance) entry in the priority queue.
type frontier[T comparable] struct {
	node *Node[T]
	dist float64
}

// runner holds the mutable state for a single ShortestPaths execution.
type runner[T comparable] struct {
	opts    Options
	res     *Paths[T]
	settled map[T]bool
	pq      *heap.Heap[frontier[T]] // min-heap on dist, lazy decrease-key
}

// ShortestPaths runs Dijkstra's algorithm from n over edge weights (AddEdge
// edges weigh DefaultWeight).
//
// Options honored: WithContext, WithMaxDistance, WithFilterNeighbor.
// MaxDepth is ignored.
//
// Complexity: O((V + E) log E) with the lazy decrease-key strategy: a node
// may sit in the heap several times, stale entries are skipped when popped.
func (n *Node[T]) ShortestPaths(opts ...Option) (*Paths[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &runner[T]{
		opts: o,
		res: &Paths[T]{
			Source: n.Value,
			Dist:   map[T]float64{n.Value: 0},
			Prev:   make(map[T]T),
		},
		settled: make(map[T]bool),
		pq:      heap.NewMin(func(f frontier[T]) float64 { return f.dist }),
	}
	r.pq.Push(frontier[T]{node: n, dist: 0})

	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// process settles nodes in increasing distance until the heap drains or the
// next distance exceeds MaxDistance.
func (r *runner[T]) process() error {
	for {
		item, ok := r.pq.Pop()
		if !ok {
			return nil
		}
		u := item.node.Value
		if r.settled[u] {
			continue
		}
		if item.dist > r.opts.MaxDistance {
			return nil
		}
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}
		r.settled[u] = true
		r.relax(item)
	}
}

// relax tries to improve the distance of every neighbor of item.node.
// Weights are non-negative by construction (AddWeightedEdge rejects others).
func (r *runner[T]) relax(item frontier[T]) {
	u := item.node
	for v, next := range u.Edges() {
		if r.settled[v] {
			continue
		}
		if r.opts.FilterNeighbor != nil && !r.opts.FilterNeighbor(u.Value, v) {
			continue
		}
		w, _ := u.Weight(v)
		nd := item.dist + w
		if nd > r.opts.MaxDistance {
			continue
		}
		if cur, seen := r.res.Dist[v]; seen && nd >= cur {
			continue
		}
		r.res.Dist[v] = nd
		r.res.Prev[v] = u.Value
		r.pq.Push(frontier[T]{node: next, dist: nd})
	}
}

// DistanceTo returns the distance of value from Source, or +Inf when it
// was not reached.
func (p *Paths[T]) DistanceTo(value T) float64 {
	if d, ok := p.Dist[value]; ok {
		return d
	}

	return math.Inf(1)
}
