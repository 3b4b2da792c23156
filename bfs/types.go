package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is out of range.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBadArc is returned when a graph reports an arc to a missing vertex.
	ErrBadArc = errors.New("bfs: arc target out of range")
)

// Arc is one end of an edge seen from a vertex: following Edge from the
// current vertex arrives at To. Forward is true when the walk runs from the
// edge's first endpoint to its second.
type Arc struct {
	Edge    int
	To      int
	Forward bool
}

// Graph is the minimal view BFS needs: vertices 0..NumVertices()-1 and the
// arcs leaving each of them. Loops appear as arcs back to the same vertex.
type Graph interface {
	NumVertices() int
	Arcs(v int) []Arc
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v int, depth int) error

	// OnTreeArc is called when a vertex is discovered through arc a from v.
	OnTreeArc func(v int, a Arc)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterArc can skip arcs by returning false.
	FilterArc func(v int, a Arc) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no hooks,
// no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnVisit:   func(int, int) error { return nil },
		OnTreeArc: func(int, Arc) {},
		FilterArc: func(int, Arc) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(v int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnTreeArc registers a callback for every spanning-tree arc.
func WithOnTreeArc(fn func(v int, a Arc)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTreeArc = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterArc skips arcs when fn returns false.
func WithFilterArc(fn func(v int, a Arc) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterArc = fn
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence.
//   - Depth: distance in edges from the start, -1 when unreached.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached.
//   - Via: the arc from Parent[v] that discovered v.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
	Via    []Arc
}

// Reached reports whether v was visited.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the arcs from the start vertex to dest.
func (r *Result) PathTo(dest int) ([]Arc, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	var path []Arc
	for cur := dest; r.Parent[cur] >= 0; cur = r.Parent[cur] {
		path = append(path, r.Via[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
