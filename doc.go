// Package gremlingo is a client library for a graph database that speaks
// the Gremlin query protocol.
//
// It has two tightly coupled halves. The first is a GraphSON v3 codec: a
// recursive, registry-driven decoder (and its symmetric encoder) for the
// tagged-envelope JSON grammar TinkerPop servers speak on the wire, where
// every non-primitive value is wrapped as {"@type": tag, "@value": payload}.
// The second is a typed traversal DSL: a fluent, phantom-typed wrapper over
// an append-only bytecode builder, so that a traversal's terminal operation
// has a statically known result type even though the underlying step list
// is untyped.
//
// The transport — WebSocket framing, authentication, connection pooling,
// and request/response correlation — is out of scope here and named only
// as the TraversalExecutor interface; callers wire their own transport in.
//
// Example usage:
//
//	g := gremlingo.NewTraversalSource(gremlingo.Options{})
//	trav := g.V().HasLabel("person").Has("name", gremlingo.Eq("marko")).Out("knows")
//	people, err := trav.ToList(ctx, executor)
package gremlingo
