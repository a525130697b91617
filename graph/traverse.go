package graph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlds/queue"
	"github.com/katalvlaran/lvlds/stack"
)

// item pairs a node with the depth it was reached at.
type item[T comparable] struct {
	node  *Node[T]
	depth int
}

// walker holds the mutable state of a single traversal.
type walker[T comparable] struct {
	opts    Options
	visit   Visitor[T]
	visited map[T]bool
}

// newWalker validates inputs and applies options.
func newWalker[T comparable](start *Node[T], visit Visitor[T], opts []Option) (*walker[T], error) {
	if start == nil {
		return nil, ErrNilNode
	}
	if visit == nil {
		return nil, ErrNilVisitor
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[T]{opts: o, visit: visit, visited: make(map[T]bool)}, nil
}

// call runs the visitor for it, checking cancellation first.
// It returns (stop, err): stop is true when the walk must end.
func (w *walker[T]) call(it item[T]) (bool, error) {
	select {
	case <-w.opts.Ctx.Done():
		return true, w.opts.Ctx.Err()
	default:
	}
	if err := w.visit(it.node, it.depth); err != nil {
		if errors.Is(err, ErrStopTraversal) {
			return true, nil
		}
		return true, fmt.Errorf("graph: visitor error at %v: %w", it.node.Value, err)
	}

	return false, nil
}

// expandable reports whether edges of a node at depth may be followed.
func (w *walker[T]) expandable(depth int) bool {
	return w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth
}

// follows reports whether the edge from → to passes the neighbor filter.
func (w *walker[T]) follows(from, to T) bool {
	return w.opts.FilterNeighbor == nil || w.opts.FilterNeighbor(from, to)
}

// BFS visits every node reachable from n in breadth-first order, each once.
// Neighbors are enqueued in edge insertion order.
func (n *Node[T]) BFS(visit Visitor[T], opts ...Option) error {
	w, err := newWalker(n, visit, opts)
	if err != nil {
		return err
	}

	q := queue.New(item[T]{node: n})
	w.visited[n.Value] = true
	for q.Len() > 0 {
		it, _ := q.Dequeue()
		if stop, err := w.call(it); stop {
			return err
		}
		if !w.expandable(it.depth) {
			continue
		}
		for v, next := range it.node.Edges() {
			if w.visited[v] || !w.follows(it.node.Value, v) {
				continue
			}
			w.visited[v] = true
			q.Enqueue(item[T]{node: next, depth: it.depth + 1})
		}
	}

	return nil
}

// DFS visits every node reachable from n in depth-first pre-order, each
// once. Edges are explored in insertion order.
func (n *Node[T]) DFS(visit Visitor[T], opts ...Option) error {
	w, err := newWalker(n, visit, opts)
	if err != nil {
		return err
	}

	s := stack.New(item[T]{node: n})
	pending := stack.New[item[T]]()
	for s.Len() > 0 {
		it, _ := s.Pop()
		if w.visited[it.node.Value] {
			continue
		}
		w.visited[it.node.Value] = true
		if stop, err := w.call(it); stop {
			return err
		}
		if !w.expandable(it.depth) {
			continue
		}
		// Reverse through a scratch stack so the first edge is explored first.
		for v, next := range it.node.Edges() {
			if !w.visited[v] && w.follows(it.node.Value, v) {
				pending.Push(item[T]{node: next, depth: it.depth + 1})
			}
		}
		for pending.Len() > 0 {
			p, _ := pending.Pop()
			s.Push(p)
		}
	}

	return nil
}
