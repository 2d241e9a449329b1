package gremlingo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EncodeError reports a Value that the symmetric encoder could not render
// into the GraphSON v3 wire grammar (§6 "encode(value) -> json-tree").
type EncodeError struct {
	Message string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("gremlingo: encode: %s", e.Message)
}

func encodeErr(format string, args ...interface{}) *EncodeError {
	return &EncodeError{Message: fmt.Sprintf(format, args...)}
}

// envelope builds the {"@type": tag, "@value": payload} grammar every
// non-primitive datum uses on the wire (§6).
func envelope(tag string, value interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return nil, encodeErr("marshaling @value for %s: %v", tag, err)
	}
	return json.Marshal(struct {
		Type  string          `json:"@type"`
		Value json.RawMessage `json:"@value"`
	}{Type: tag, Value: payload})
}

func envelopeRaw(tag string, value json.RawMessage) (json.RawMessage, error) {
	return json.Marshal(struct {
		Type  string          `json:"@type"`
		Value json.RawMessage `json:"@value"`
	}{Type: tag, Value: value})
}

// Encode is the symmetric inverse of Decode (§6): it renders a Value back
// into the tagged GraphSON v3 JSON grammar. Bare primitives (nil, bool,
// string) stay bare, matching how the reader accepted them untagged.
func Encode(v Value) (json.RawMessage, error) {
	switch t := v.(type) {
	case nil:
		return json.Marshal(nil)
	case bool:
		return json.Marshal(t)
	case string:
		return json.Marshal(t)
	case int32:
		return envelope("g:Int32", t)
	case int64:
		return envelope("g:Int64", t)
	case float32:
		return envelope("g:Float", t)
	case float64:
		return envelope("g:Double", t)
	case uuid.UUID:
		return envelope("g:UUID", t.String())
	case time.Time:
		return envelope("g:Date", t.UTC().Unix())
	case List:
		return encodeList(t)
	case *Map:
		return encodeMap(t)
	case *Vertex:
		return encodeVertex(t)
	case *Edge:
		return encodeEdge(t)
	case *VertexProperty:
		return encodeVertexProperty(t)
	case *Property:
		return encodeProperty(t)
	case *Path:
		return encodePath(t)
	case *Metric:
		return encodeMetric(t)
	case *TraversalMetrics:
		return encodeTraversalMetrics(t)
	case *TraversalExplanation:
		return encodeTraversalExplanation(t)
	case *P:
		return encodePredicate(t)
	case *Bytecode:
		return encodeBytecode(t)
	default:
		return nil, encodeErr("unsupported value of type %T", v)
	}
}

func encodeList(l List) (json.RawMessage, error) {
	elems := make([]json.RawMessage, 0, len(l))
	for _, e := range l {
		enc, err := Encode(e)
		if err != nil {
			return nil, err
		}
		elems = append(elems, enc)
	}
	return envelope("g:List", elems)
}

func encodeID(id ID) (json.RawMessage, error) {
	switch t := id.(type) {
	case IDString:
		return json.Marshal(string(t))
	case IDInt32:
		return envelope("g:Int32", int32(t))
	case IDInt64:
		return envelope("g:Int64", int64(t))
	default:
		return nil, encodeErr("unsupported id type %T", id)
	}
}

// encodeMap renders a Map back to the g:Map grammar. Only KeyString keys
// can appear on the wire (§3.1: "On the wire, only string keys appear
// inside g:Map"); a Map built in memory with a richer key (from a grouping
// traversal result) cannot be round-tripped and is an encode error.
func encodeMap(m *Map) (json.RawMessage, error) {
	pairs := make([]json.RawMessage, 0, m.Len()*2)
	var outerErr error
	m.Range(func(k Key, v Value) bool {
		sk, ok := k.(KeyString)
		if !ok {
			outerErr = encodeErr("cannot encode non-string map key %T to the GraphSON wire grammar", k)
			return false
		}
		keyJSON, err := json.Marshal(string(sk))
		if err != nil {
			outerErr = err
			return false
		}
		valJSON, err := Encode(v)
		if err != nil {
			outerErr = err
			return false
		}
		pairs = append(pairs, keyJSON, valJSON)
		return true
	})
	if outerErr != nil {
		return nil, outerErr
	}
	return envelope("g:Map", pairs)
}

func encodeVertex(v *Vertex) (json.RawMessage, error) {
	idJSON, err := encodeID(v.ID)
	if err != nil {
		return nil, err
	}
	propsJSON, err := encodeVertexProperties(v.Properties)
	if err != nil {
		return nil, err
	}
	payload := struct {
		ID         json.RawMessage `json:"id"`
		Label      string          `json:"label"`
		Properties json.RawMessage `json:"properties,omitempty"`
	}{ID: idJSON, Label: v.Label, Properties: propsJSON}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, encodeErr("marshaling g:Vertex payload: %v", err)
	}
	return envelopeRaw("g:Vertex", raw)
}

func encodeVertexProperties(props map[string][]*VertexProperty) (json.RawMessage, error) {
	if len(props) == 0 {
		return nil, nil
	}
	out := make(map[string][]json.RawMessage, len(props))
	for name, list := range props {
		encoded := make([]json.RawMessage, 0, len(list))
		for _, vp := range list {
			raw, err := encodeVertexProperty(vp)
			if err != nil {
				return nil, err
			}
			encoded = append(encoded, raw)
		}
		out[name] = encoded
	}
	return json.Marshal(out)
}

func encodeVertexProperty(vp *VertexProperty) (json.RawMessage, error) {
	idJSON, err := encodeID(vp.ID)
	if err != nil {
		return nil, err
	}
	valueJSON, err := Encode(vp.Value)
	if err != nil {
		return nil, err
	}
	propsJSON, err := encodeVertexProperties(vp.Properties)
	if err != nil {
		return nil, err
	}
	payload := struct {
		ID         json.RawMessage `json:"id"`
		Label      string          `json:"label"`
		Value      json.RawMessage `json:"value"`
		Properties json.RawMessage `json:"properties,omitempty"`
	}{ID: idJSON, Label: vp.Label, Value: valueJSON, Properties: propsJSON}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, encodeErr("marshaling g:VertexProperty payload: %v", err)
	}
	return envelopeRaw("g:VertexProperty", raw)
}

func encodeProperty(p *Property) (json.RawMessage, error) {
	valueJSON, err := Encode(p.Value)
	if err != nil {
		return nil, err
	}
	payload := struct {
		Key   string          `json:"key"`
		Value json.RawMessage `json:"value"`
	}{Key: p.Key, Value: valueJSON}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, encodeErr("marshaling g:Property payload: %v", err)
	}
	return envelopeRaw("g:Property", raw)
}

func encodeEdge(e *Edge) (json.RawMessage, error) {
	idJSON, err := encodeID(e.ID)
	if err != nil {
		return nil, err
	}
	inVJSON, err := encodeID(e.InVID)
	if err != nil {
		return nil, err
	}
	outVJSON, err := encodeID(e.OutVID)
	if err != nil {
		return nil, err
	}
	payload := struct {
		ID        json.RawMessage `json:"id"`
		Label     string          `json:"label"`
		InV       json.RawMessage `json:"inV"`
		InVLabel  string          `json:"inVLabel"`
		OutV      json.RawMessage `json:"outV"`
		OutVLabel string          `json:"outVLabel"`
	}{ID: idJSON, Label: e.Label, InV: inVJSON, InVLabel: e.InVLabel, OutV: outVJSON, OutVLabel: e.OutVLabel}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, encodeErr("marshaling g:Edge payload: %v", err)
	}
	return envelopeRaw("g:Edge", raw)
}

func encodePath(p *Path) (json.RawMessage, error) {
	labelsJSON, err := Encode(List(p.Labels))
	if err != nil {
		return nil, err
	}
	objectsJSON, err := Encode(List(p.Objects))
	if err != nil {
		return nil, err
	}
	payload := struct {
		Labels  json.RawMessage `json:"labels"`
		Objects json.RawMessage `json:"objects"`
	}{Labels: labelsJSON, Objects: objectsJSON}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, encodeErr("marshaling g:Path payload: %v", err)
	}
	return envelopeRaw("g:Path", raw)
}

func encodeMetric(m *Metric) (json.RawMessage, error) {
	inner := NewMap()
	inner.SetString("id", m.ID)
	inner.SetString("name", m.Name)
	inner.SetString("dur", m.Duration)
	counts := NewMap()
	counts.SetString("traverserCount", m.TraverserCount)
	counts.SetString("elementCount", m.ElementCount)
	inner.SetString("counts", counts)
	annotations := NewMap()
	annotations.SetString("percentDur", m.PercentDuration)
	inner.SetString("annotations", annotations)

	mapJSON, err := Encode(inner)
	if err != nil {
		return nil, err
	}
	return envelopeRaw("g:Metrics", mapJSON)
}

func encodeTraversalMetrics(tm *TraversalMetrics) (json.RawMessage, error) {
	inner := NewMap()
	inner.SetString("dur", tm.Duration)
	metrics := make(List, 0, len(tm.Metrics))
	for i := range tm.Metrics {
		metrics = append(metrics, &tm.Metrics[i])
	}
	inner.SetString("metrics", metrics)

	mapJSON, err := Encode(inner)
	if err != nil {
		return nil, err
	}
	return envelopeRaw("g:TraversalMetrics", mapJSON)
}

// encodeBytecode renders a Bytecode to the g:Bytecode grammar (§4.4): each
// step becomes a JSON array whose head is the bare step name and whose tail
// is every argument re-encoded through Encode, exactly as a real server
// expects a traversal submitted over the wire.
func encodeBytecode(b *Bytecode) (json.RawMessage, error) {
	steps := b.Steps()
	encodedSteps := make([]json.RawMessage, 0, len(steps))
	for _, s := range steps {
		parts := make([]json.RawMessage, 0, len(s.Arguments)+1)
		nameJSON, err := json.Marshal(s.Name)
		if err != nil {
			return nil, encodeErr("marshaling step name %q: %v", s.Name, err)
		}
		parts = append(parts, nameJSON)
		for _, arg := range s.Arguments {
			argJSON, err := Encode(arg)
			if err != nil {
				return nil, err
			}
			parts = append(parts, argJSON)
		}
		stepJSON, err := json.Marshal(parts)
		if err != nil {
			return nil, encodeErr("marshaling step %q: %v", s.Name, err)
		}
		encodedSteps = append(encodedSteps, stepJSON)
	}

	payload := struct {
		Step []json.RawMessage `json:"step"`
	}{Step: encodedSteps}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, encodeErr("marshaling g:Bytecode payload: %v", err)
	}
	return envelopeRaw("g:Bytecode", raw)
}

func stringsToList(ss []string) List {
	l := make(List, 0, len(ss))
	for _, s := range ss {
		l = append(l, s)
	}
	return l
}

func encodeTraversalExplanation(te *TraversalExplanation) (json.RawMessage, error) {
	inner := NewMap()
	inner.SetString("original", stringsToList(te.Original))
	inner.SetString("final", stringsToList(te.Final))

	intermediate := make(List, 0, len(te.Intermediate))
	for i := range te.Intermediate {
		ir := te.Intermediate[i]
		m := NewMap()
		m.SetString("traversal", stringsToList(ir.TraversalSteps))
		m.SetString("strategy", ir.Strategy)
		m.SetString("category", ir.Category)
		intermediate = append(intermediate, m)
	}
	inner.SetString("intermediate", intermediate)

	mapJSON, err := Encode(inner)
	if err != nil {
		return nil, err
	}
	return envelopeRaw("g:TraversalExplanation", mapJSON)
}
