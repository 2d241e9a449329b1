package gremlingo

import (
	"time"

	"github.com/google/uuid"
)

// Value is the universe of decoded GraphSON values. It is realized as Go's
// any rather than a hand-rolled tagged union: Go's own static types already
// give us width preservation for free (int32(1) and int64(1) are distinct
// values of distinct types, so they can never collapse into each other the
// way two dynamically-typed numbers could). The concrete dynamic types that
// ever populate a Value are:
//
//	nil            -> bare JSON null
//	bool           -> bare JSON boolean
//	int32          -> g:Int32
//	int64          -> g:Int64
//	float32        -> g:Float
//	float64        -> g:Double
//	string         -> bare JSON string
//	uuid.UUID      -> g:UUID
//	time.Time      -> g:Date (UTC, second granularity)
//	List            -> g:List and g:Set (set-ness is not preserved, see §9)
//	*Map            -> g:Map
//	*Vertex         -> g:Vertex
//	*Edge           -> g:Edge
//	*VertexProperty -> g:VertexProperty
//	*Property       -> g:Property
//	*Path           -> g:Path
//	*Metric         -> g:Metrics
//	*TraversalMetrics     -> g:TraversalMetrics
//	*TraversalExplanation -> g:TraversalExplanation
//	*P             -> a predicate structural value, never returned by the
//	                  reader, only ever constructed client-side as a
//	                  traversal step argument (§4.8).
type Value = any

// List is the decoded form of both g:List and g:Set. Element order is part
// of the contract regardless of which tag produced it.
type List []Value

// Vertex is a graph vertex: an id, a label, and zero or more named,
// multi-valued properties.
type Vertex struct {
	ID         ID
	Label      string
	Properties map[string][]*VertexProperty
}

// Edge is a graph edge between two vertices. Its Properties map is always
// empty: the decoder does not populate edge properties from the wire, a
// documented gap (see §9 "Edge properties not populated").
type Edge struct {
	ID         ID
	Label      string
	InVID      ID
	InVLabel   string
	OutVID     ID
	OutVLabel  string
	Properties map[string]*Property
}

// VertexProperty is a single value of a vertex's named, multi-valued
// property. It may itself carry meta-properties, decoded with the same
// vertex-properties sub-decoder used for a Vertex's own properties (§4.3).
type VertexProperty struct {
	ID         ID
	Label      string
	Value      Value
	Properties map[string][]*VertexProperty
}

// Property is a simple key/value pair: the decoded form of g:Property, and
// the value type of an Edge's (always empty) property map.
type Property struct {
	Key   string
	Value Value
}

// Path is a traversal path: a sequence of label-sets running parallel to a
// sequence of graph objects, positionally aligned.
type Path struct {
	Labels  []Value
	Objects []Value
}

// Metric is one row of server-side profiling data.
type Metric struct {
	ID              string
	Name            string
	Duration        float64
	ElementCount    int64
	TraverserCount  int64
	PercentDuration float64
}

// TraversalMetrics is the full profiling result returned with a query
// response when profiling is enabled.
type TraversalMetrics struct {
	Duration float64
	Metrics  []Metric
}

// IntermediateRepr is one step of a TraversalExplanation's strategy
// application trace. It only appears inside
// TraversalExplanation.Intermediate, never as a Value of its own.
type IntermediateRepr struct {
	TraversalSteps []string
	Strategy       string
	Category       string
}

// TraversalExplanation describes how the query-planning strategies
// rewrote a traversal, from its original form to its final form.
type TraversalExplanation struct {
	Original     []string
	Final        []string
	Intermediate []IntermediateRepr
}

// date converts a GraphSON g:Date (integer seconds since the Unix epoch)
// into a UTC time.Time, matching the teacher's convention of small,
// single-purpose conversion helpers living next to the type they build.
func date(seconds int64) time.Time {
	return time.Unix(seconds, 0).UTC()
}

// newUUID is a thin wrapper kept for symmetry with the rest of the
// construction helpers in this file.
func newUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}
