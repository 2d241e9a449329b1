package gremlingo

import (
	"context"
	"fmt"
)

// GraphTraversal is the typed, fluent traversal builder (§4.5). S is the
// traversal's start type and never changes; E is the type of the object
// currently at the traverser's position, and changes with every
// element-changing step (Out, Values, Count, ...) the way TypedDAG[T]'s
// methods narrow or carry a type parameter through a chain of calls. Like
// TypedDAG, GraphTraversal is a thin typed wrapper: all state lives in the
// untyped Bytecode it carries, and every step method is a one-line
// delegation that appends to it.
//
// A GraphTraversal has a single owner. Steps mutate the wrapped Bytecode
// in place; Bytecode.Clone is how a caller obtains an independent copy of a
// traversal prefix's step list.
type GraphTraversal[S, E any] struct {
	source   *TraversalSource
	bytecode *Bytecode
}

func newTraversal[S, E any](source *TraversalSource, bytecode *Bytecode) *GraphTraversal[S, E] {
	return &GraphTraversal[S, E]{source: source, bytecode: bytecode}
}

// Bytecode returns the accumulated step list, for a TraversalExecutor to
// submit or a caller to inspect.
func (g *GraphTraversal[S, E]) Bytecode() *Bytecode {
	return g.bytecode
}

// step appends a step to g's own bytecode and returns g, for the common
// case of a self-preserving step (same S, same E).
func (g *GraphTraversal[S, E]) step(name string, args ...Value) *GraphTraversal[S, E] {
	g.bytecode.AddStep(name, args...)
	trace(g.source.opts, "step %s %v", name, args)
	return g
}

// retype appends a step to g's bytecode and returns a new GraphTraversal
// wrapping the same (mutated) bytecode under a different E, for the common
// case of an element-changing step. Because both the old and new wrappers
// point at the same *Bytecode, the old wrapper must not be used again
// after a retyping call — exactly like TypedDAG's pattern of replacing one
// typed view of shared inner state with another.
func retype[S, E1, E2 any](g *GraphTraversal[S, E1], name string, args ...Value) *GraphTraversal[S, E2] {
	g.bytecode.AddStep(name, args...)
	trace(g.source.opts, "step %s %v", name, args)
	return newTraversal[S, E2](g.source, g.bytecode)
}

// --- element-changing steps (§4.7) ---

// Out traverses outgoing edges to their adjacent vertices, optionally
// restricted to the given edge labels.
func (g *GraphTraversal[S, E]) Out(labels ...string) *GraphTraversal[S, *Vertex] {
	return retype[S, E, *Vertex](g, "out", labelArgs(labels)...)
}

// In traverses incoming edges to their adjacent vertices.
func (g *GraphTraversal[S, E]) In(labels ...string) *GraphTraversal[S, *Vertex] {
	return retype[S, E, *Vertex](g, "in", labelArgs(labels)...)
}

// Both traverses edges in either direction to their adjacent vertices.
func (g *GraphTraversal[S, E]) Both(labels ...string) *GraphTraversal[S, *Vertex] {
	return retype[S, E, *Vertex](g, "both", labelArgs(labels)...)
}

// OutE traverses to outgoing edges themselves.
func (g *GraphTraversal[S, E]) OutE(labels ...string) *GraphTraversal[S, *Edge] {
	return retype[S, E, *Edge](g, "outE", labelArgs(labels)...)
}

// InE traverses to incoming edges themselves.
func (g *GraphTraversal[S, E]) InE(labels ...string) *GraphTraversal[S, *Edge] {
	return retype[S, E, *Edge](g, "inE", labelArgs(labels)...)
}

// BothE traverses to incident edges in either direction.
func (g *GraphTraversal[S, E]) BothE(labels ...string) *GraphTraversal[S, *Edge] {
	return retype[S, E, *Edge](g, "bothE", labelArgs(labels)...)
}

// OutV moves from an edge to its out-vertex.
func (g *GraphTraversal[S, E]) OutV() *GraphTraversal[S, *Vertex] {
	return retype[S, E, *Vertex](g, "outV")
}

// InV moves from an edge to its in-vertex.
func (g *GraphTraversal[S, E]) InV() *GraphTraversal[S, *Vertex] {
	return retype[S, E, *Vertex](g, "inV")
}

// OtherV moves from an edge to whichever endpoint the traverser did not
// arrive from.
func (g *GraphTraversal[S, E]) OtherV() *GraphTraversal[S, *Vertex] {
	return retype[S, E, *Vertex](g, "otherV")
}

// Properties moves from a vertex to its VertexProperty objects, optionally
// restricted to the given property keys.
func (g *GraphTraversal[S, E]) Properties(keys ...string) *GraphTraversal[S, *VertexProperty] {
	return retype[S, E, *VertexProperty](g, "properties", labelArgs(keys)...)
}

// Values moves from a vertex (or VertexProperty) to the bare property
// value(s), optionally restricted to the given keys.
func (g *GraphTraversal[S, E]) Values(keys ...string) *GraphTraversal[S, Value] {
	return retype[S, E, Value](g, "values", labelArgs(keys)...)
}

// Count reduces the traversal to a single int64: the number of traversers
// reaching this step.
func (g *GraphTraversal[S, E]) Count() *GraphTraversal[S, int64] {
	return retype[S, E, int64](g, "count")
}

// Fold collapses all traversers into a single List.
func (g *GraphTraversal[S, E]) Fold() *GraphTraversal[S, List] {
	return retype[S, E, List](g, "fold")
}

// Unfold reverses Fold: a single List traverser becomes many traversers,
// one per element.
func (g *GraphTraversal[S, E]) Unfold() *GraphTraversal[S, Value] {
	return retype[S, E, Value](g, "unfold")
}

// Path records the full path taken to reach the current position.
func (g *GraphTraversal[S, E]) Path() *GraphTraversal[S, *Path] {
	return retype[S, E, *Path](g, "path")
}

// --- self-preserving steps (§4.7): E is unchanged ---

// HasLabel filters to elements carrying one of the given labels.
func (g *GraphTraversal[S, E]) HasLabel(labels ...string) *GraphTraversal[S, E] {
	return g.step("hasLabel", labelArgs(labels)...)
}

// Has filters to elements whose key property satisfies the predicate (or
// equals the literal value, if a non-*P Value is given).
func (g *GraphTraversal[S, E]) Has(key string, predicate Value) *GraphTraversal[S, E] {
	return g.step("has", key, predicate)
}

// HasID filters to elements whose id satisfies the predicate.
func (g *GraphTraversal[S, E]) HasID(predicate Value) *GraphTraversal[S, E] {
	return g.step("hasId", predicate)
}

// Limit caps the number of traversers passing through this step.
func (g *GraphTraversal[S, E]) Limit(n int64) *GraphTraversal[S, E] {
	return g.step("limit", n)
}

// Order sorts traversers; the concrete ordering is supplied by subsequent
// By modulators in a fuller Gremlin implementation, out of scope here.
func (g *GraphTraversal[S, E]) Order() *GraphTraversal[S, E] {
	return g.step("order")
}

// Dedup removes duplicate traversers.
func (g *GraphTraversal[S, E]) Dedup() *GraphTraversal[S, E] {
	return g.step("dedup")
}

// As labels the current step so a later step can refer back to it.
func (g *GraphTraversal[S, E]) As(label string) *GraphTraversal[S, E] {
	return g.step("as", label)
}

// Where filters using an arbitrary nested predicate or sub-traversal
// bytecode.
func (g *GraphTraversal[S, E]) Where(predicate Value) *GraphTraversal[S, E] {
	return g.step("where", predicate)
}

// Filter drops traversers for which the given sub-traversal bytecode
// yields no results.
func (g *GraphTraversal[S, E]) Filter(sub *Bytecode) *GraphTraversal[S, E] {
	return g.step("filter", sub)
}

// SideEffect executes a sub-traversal for its side effects without
// altering the traverser stream.
func (g *GraphTraversal[S, E]) SideEffect(sub *Bytecode) *GraphTraversal[S, E] {
	return g.step("sideEffect", sub)
}

// --- terminals (§4.5) ---

// ToList submits the traversal's bytecode to exec and downcasts every
// result to E, in order.
func (g *GraphTraversal[S, E]) ToList(ctx context.Context, exec TraversalExecutor) ([]E, error) {
	results, err := exec.Execute(ctx, g.bytecode)
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, len(results))
	for _, r := range results {
		e, err := downcastTo[E](r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Next submits the traversal and returns its first result. The second
// return value is false if the traversal produced no results.
func (g *GraphTraversal[S, E]) Next(ctx context.Context, exec TraversalExecutor) (E, bool, error) {
	var zero E
	results, err := exec.Execute(ctx, g.bytecode)
	if err != nil {
		return zero, false, err
	}
	if len(results) == 0 {
		return zero, false, nil
	}
	e, err := downcastTo[E](results[0])
	if err != nil {
		return zero, false, err
	}
	return e, true, nil
}

// HasNext submits the traversal and reports whether it produced any
// result, without downcasting it.
func (g *GraphTraversal[S, E]) HasNext(ctx context.Context, exec TraversalExecutor) (bool, error) {
	results, err := exec.Execute(ctx, g.bytecode)
	if err != nil {
		return false, err
	}
	return len(results) > 0, nil
}

// Iterate submits the traversal purely for its side effects, discarding
// any results.
func (g *GraphTraversal[S, E]) Iterate(ctx context.Context, exec TraversalExecutor) error {
	_, err := exec.Execute(ctx, g.bytecode)
	return err
}

// Stream submits the traversal and wraps its results in a ResultStream for
// incremental consumption.
func (g *GraphTraversal[S, E]) Stream(ctx context.Context, exec TraversalExecutor) (*ResultStream, error) {
	results, err := exec.Execute(ctx, g.bytecode)
	if err != nil {
		return nil, err
	}
	return newResultStream(results), nil
}

// downcastTo asserts v to E the same way TypedDAG's GetVertex asserts a
// stored value to its vertex type parameter.
func downcastTo[E any](v Value) (E, error) {
	e, ok := v.(E)
	if !ok {
		var zero E
		return zero, fmt.Errorf("gremlingo: result %v is not of expected type %T", v, zero)
	}
	return e, nil
}

func labelArgs(labels []string) []Value {
	args := make([]Value, len(labels))
	for i, l := range labels {
		args[i] = l
	}
	return args
}
