package bfs

import "fmt"

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrBadArc for inconsistent graphs,
// or any user-supplied hook error.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := g.NumVertices()
	if start < 0 || start >= n {
		return nil, ErrStartVertexNotFound
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
			Via:    make([]Arc, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d and appends it to the queue.
func (w *walker) enqueue(v, d int) {
	w.res.Depth[v] = d
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// arc target, recording the discovering arc.
func (w *walker) enqueueNeighbors(item queueItem) error {
	n := len(w.res.Depth)
	for _, a := range w.graph.Arcs(item.v) {
		if a.To < 0 || a.To >= n {
			return fmt.Errorf("%w: vertex %d edge %d -> %d", ErrBadArc, item.v, a.Edge, a.To)
		}
		if !w.opts.FilterArc(item.v, a) {
			continue
		}
		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if w.res.Depth[a.To] < 0 {
			w.res.Parent[a.To] = item.v
			w.res.Via[a.To] = a
			w.opts.OnTreeArc(item.v, a)
			w.enqueue(a.To, next)
		}
	}

	return nil
}

// Components labels every vertex of g with the index of its connected
// component, numbering components by their smallest vertex.
// Complexity: O(V + E).
func Components(g Graph) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.NumVertices()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	count := 0
	for v := 0; v < n; v++ {
		if label[v] >= 0 {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, 0, err
		}
		for _, u := range res.Order {
			label[u] = count
		}
		count++
	}

	return label, count, nil
}
