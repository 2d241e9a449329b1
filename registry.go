package gremlingo

// readFunc is the capability a decoder is handed to recurse back into the
// reader. Decoders depend on this narrow function type rather than on the
// registry or the reader struct directly, so that a test can substitute a
// fake reader and exercise a single decoder in isolation (§4.3 design
// note "Recursive reader").
type readFunc func(raw []byte) (Value, error)

// decoderFunc is the shape every registry entry implements: given the
// already-extracted @value payload and a capability to recurse, produce a
// Value.
type decoderFunc func(raw []byte, read readFunc, opts Options) (Value, error)

// registry is the closed, immutable g:<Tag> -> decoder mapping for
// GraphSON v3 (§4.1). It is built once, here, at package initialization
// and never mutated afterward, so concurrent decodes can share it without
// synchronization (§5).
var registry = map[string]decoderFunc{
	"g:Int32":                decodeInt32,
	"g:Int64":                decodeInt64,
	"g:Float":                decodeFloat,
	"g:Double":                decodeDouble,
	"g:Date":                  decodeDate,
	"g:UUID":                  decodeUUID,
	"g:List":                  decodeList,
	"g:Set":                   decodeList,
	"g:Map":                   decodeMap,
	"g:Vertex":                decodeVertex,
	"g:VertexProperty":        decodeVertexProperty,
	"g:Property":              decodeProperty,
	"g:Edge":                  decodeEdge,
	"g:Path":                  decodePath,
	"g:TraversalMetrics":      decodeTraversalMetrics,
	"g:Metrics":               decodeMetric,
	"g:TraversalExplanation":  decodeTraversalExplanation,
}

// lookup returns the decoder registered for tag, or false if tag is not a
// recognized GraphSON v3 type.
func lookup(tag string) (decoderFunc, bool) {
	d, ok := registry[tag]
	return d, ok
}
