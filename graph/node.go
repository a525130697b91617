package graph

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// DefaultWeight is the weight AddEdge gives to an edge, so that shortest
// paths over unweighted edges count hops.
const DefaultWeight = 1.0

// edge is an outgoing link with its traversal cost.
type edge[T comparable] struct {
	to     *Node[T]
	weight float64
}

// Node is a graph vertex carrying Value and its outgoing edges.
type Node[T comparable] struct {
	Value T

	edges map[T]edge[T]
	order []T // edge keys in insertion order
}

// NewNode returns a node with no edges.
func NewNode[T comparable](value T) *Node[T] {
	return &Node[T]{Value: value, edges: make(map[T]edge[T])}
}

// AddEdge links n → to with DefaultWeight. Adding an edge to a value already
// linked replaces the target node and weight but keeps the original edge
// position.
func (n *Node[T]) AddEdge(to *Node[T]) {
	n.link(to, DefaultWeight)
}

// AddWeightedEdge links n → to with the given cost.
// Returns ErrNilNode if to is nil, ErrNaNWeight (wrapped) if weight is NaN
// and ErrNegativeWeight (wrapped) if weight < 0; the graph is then unchanged.
func (n *Node[T]) AddWeightedEdge(to *Node[T], weight float64) error {
	if to == nil {
		return ErrNilNode
	}
	if math.IsNaN(weight) {
		return fmt.Errorf("%w: %v→%v", ErrNaNWeight, n.Value, to.Value)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, n.Value, to.Value, weight)
	}
	n.link(to, weight)

	return nil
}

func (n *Node[T]) link(to *Node[T], weight float64) {
	if to == nil {
		return
	}
	if _, ok := n.edges[to.Value]; !ok {
		n.order = append(n.order, to.Value)
	}
	n.edges[to.Value] = edge[T]{to: to, weight: weight}
}

// Weight returns the cost of the edge towards value.
func (n *Node[T]) Weight(value T) (float64, bool) {
	e, ok := n.edges[value]
	return e.weight, ok
}

// RemoveEdge unlinks the edge towards value and reports whether it existed.
// Complexity: O(degree).
func (n *Node[T]) RemoveEdge(value T) bool {
	if _, ok := n.edges[value]; !ok {
		return false
	}
	delete(n.edges, value)
	n.order = slices.DeleteFunc(n.order, func(v T) bool { return v == value })

	return true
}

// ConnectsTo reports whether n has an edge towards value. Complexity: O(1).
func (n *Node[T]) ConnectsTo(value T) bool {
	_, ok := n.edges[value]
	return ok
}

// Degree returns the number of outgoing edges.
func (n *Node[T]) Degree() int { return len(n.order) }

// Edges iterates over (target value, target node) in insertion order.
func (n *Node[T]) Edges() iter.Seq2[T, *Node[T]] {
	return func(yield func(T, *Node[T]) bool) {
		for _, v := range n.order {
			if !yield(v, n.edges[v].to) {
				return
			}
		}
	}
}

// NodeCache keeps every node of a graph addressable by value.
type NodeCache[T comparable] struct {
	nodes map[T]*Node[T]
}

// NewNodeCache returns an empty cache.
func NewNodeCache[T comparable]() *NodeCache[T] {
	return &NodeCache[T]{nodes: make(map[T]*Node[T])}
}

// Create returns the cached node for value, creating it on first use.
func (c *NodeCache[T]) Create(value T) *Node[T] {
	if n, ok := c.nodes[value]; ok {
		return n
	}
	n := NewNode(value)
	c.nodes[value] = n

	return n
}

// Reference returns the cached node for value, or nil and false.
func (c *NodeCache[T]) Reference(value T) (*Node[T], bool) {
	n, ok := c.nodes[value]
	return n, ok
}

// Len returns the number of cached nodes.
func (c *NodeCache[T]) Len() int { return len(c.nodes) }
