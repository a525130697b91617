package graph

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for graph traversal.
var (
	// ErrNilNode is returned when a traversal starts from a nil node or an
	// edge is added towards a nil node.
	ErrNilNode = errors.New("graph: node is nil")

	// ErrNilVisitor is returned when a traversal is given a nil Visitor.
	ErrNilVisitor = errors.New("graph: visitor is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNaNWeight indicates an edge whose weight is NaN.
	ErrNaNWeight = errors.New("graph: edge weight is NaN")

	// ErrStopTraversal may be returned by a Visitor to end a traversal early
	// without reporting an error.
	ErrStopTraversal = errors.New("graph: stop traversal")
)

// Visitor is invoked for each reached node together with its depth
// (number of edges from the start node).
type Visitor[T comparable] func(n *Node[T], depth int) error

// Option configures a traversal.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds traversal parameters.
type Options struct {
	// Ctx allows cancellation; checked once per visited node.
	Ctx context.Context

	// MaxDepth, if ≥ 0, prevents expanding nodes found at that depth.
	// -1 (default) disables the limit.
	MaxDepth int

	// MaxDistance caps ShortestPaths: nodes farther than this are not
	// settled. Must be ≥ 0. Default is +Inf (no cap).
	MaxDistance float64

	// FilterNeighbor, if non-nil, is asked before following each edge.
	// It receives the Node values as any, so options stay usable across
	// Node types without type arguments; assert back to T inside.
	FilterNeighbor func(from, to any) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth or
// distance limit and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxDepth:    -1,
		MaxDistance: math.Inf(1),
	}
}

// WithContext sets the context used for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits expansion to nodes at depth < d. Negative d is an
// option violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be ≥ 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs fn as an edge filter: edges for which fn
// returns false are not followed. A nil fn is an option violation.
func WithFilterNeighbor(fn func(from, to any) bool) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: FilterNeighbor is nil", ErrOptionViolation)
			return
		}
		o.FilterNeighbor = fn
	}
}

// WithMaxDistance caps the distance explored by ShortestPaths. Negative or
// NaN d is an option violation.
func WithMaxDistance(d float64) Option {
	return func(o *Options) {
		if d < 0 || math.IsNaN(d) {
			o.err = fmt.Errorf("%w: MaxDistance must be ≥ 0, got %g", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}
