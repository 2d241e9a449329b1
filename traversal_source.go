package gremlingo

// TraversalSource is the seed from which every traversal starts (§4.5),
// grounded on the original client's AnonymousTraversalSource: it holds no
// state of its own beyond the decode/encode Options to thread through, and
// every step method builds a fresh Bytecode rather than mutating shared
// state, so the same TraversalSource can safely start any number of
// independent traversals concurrently.
type TraversalSource struct {
	opts Options
}

// NewTraversalSource returns a TraversalSource. opts is optional; the zero
// value applies the documented default behavior.
func NewTraversalSource(opts ...Options) *TraversalSource {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	return &TraversalSource{opts: o}
}

// V starts a traversal at the vertices with the given ids, or at every
// vertex in the graph if no id is given.
func (s *TraversalSource) V(ids ...Value) *GraphTraversal[*Vertex, *Vertex] {
	bc := NewBytecode()
	bc.AddStep("V", ids...)
	trace(s.opts, "step V %v", ids)
	return newTraversal[*Vertex, *Vertex](s, bc)
}

// E starts a traversal at the edges with the given ids, or at every edge in
// the graph if no id is given.
func (s *TraversalSource) E(ids ...Value) *GraphTraversal[*Edge, *Edge] {
	bc := NewBytecode()
	bc.AddStep("E", ids...)
	trace(s.opts, "step E %v", ids)
	return newTraversal[*Edge, *Edge](s, bc)
}

// AddV starts a traversal that adds a new vertex with the given label.
func (s *TraversalSource) AddV(label string) *GraphTraversal[*Vertex, *Vertex] {
	bc := NewBytecode()
	bc.AddStep("addV", label)
	trace(s.opts, "step addV %s", label)
	return newTraversal[*Vertex, *Vertex](s, bc)
}

// AddE starts a traversal that adds a new edge with the given label.
// Endpoints are supplied by chaining From/To on the returned traversal.
func (s *TraversalSource) AddE(label string) *GraphTraversal[*Edge, *Edge] {
	bc := NewBytecode()
	bc.AddStep("addE", label)
	trace(s.opts, "step addE %s", label)
	return newTraversal[*Edge, *Edge](s, bc)
}

// From sets the out-vertex of an AddE traversal to the vertex reachable by
// the given sub-traversal bytecode.
func (g *GraphTraversal[S, E]) From(sub *Bytecode) *GraphTraversal[S, E] {
	return g.step("from", sub)
}

// To sets the in-vertex of an AddE traversal to the vertex reachable by the
// given sub-traversal bytecode.
func (g *GraphTraversal[S, E]) To(sub *Bytecode) *GraphTraversal[S, E] {
	return g.step("to", sub)
}
