package gremlingo

import (
	"encoding/json"
	"strconv"
)

// decodeInt32 and decodeInt64 are the width-preserving integer decoders
// (§4.3). Both reject a JSON number carrying a decimal point (a float
// delivered where an integer was expected) and reject magnitudes outside
// the target width.
func decodeInt32(raw []byte, _ readFunc, _ Options) (Value, error) {
	n, err := parseJSONInt(raw)
	if err != nil {
		return nil, err
	}
	if n < -2147483648 || n > 2147483647 {
		return nil, decodeErr(KindInvalidPayload, string(raw), "value %d out of range for g:Int32", n)
	}
	return int32(n), nil
}

func decodeInt64(raw []byte, _ readFunc, _ Options) (Value, error) {
	n, err := parseJSONInt(raw)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func parseJSONInt(raw []byte) (int64, error) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return 0, decodeErr(KindShapeMismatch, string(raw), "expected a JSON number: %v", err)
	}
	s := num.String()
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return 0, decodeErr(KindShapeMismatch, string(raw), "expected an integer, found a float %q", s)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, decodeErr(KindInvalidPayload, string(raw), "integer %q out of range: %v", s, err)
	}
	return n, nil
}

// decodeFloat and decodeDouble are the width-preserving IEEE-754 decoders.
func decodeFloat(raw []byte, _ readFunc, _ Options) (Value, error) {
	f, err := parseJSONFloat(raw)
	if err != nil {
		return nil, err
	}
	return float32(f), nil
}

func decodeDouble(raw []byte, _ readFunc, _ Options) (Value, error) {
	f, err := parseJSONFloat(raw)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func parseJSONFloat(raw []byte) (float64, error) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, decodeErr(KindShapeMismatch, string(raw), "expected a JSON number: %v", err)
	}
	return f, nil
}

// decodeDate expects a JSON integer interpreted as whole seconds since the
// Unix epoch, UTC (§4.3 "Date").
func decodeDate(raw []byte, _ readFunc, _ Options) (Value, error) {
	n, err := parseJSONInt(raw)
	if err != nil {
		return nil, err
	}
	return date(n), nil
}

// decodeUUID expects a canonical 8-4-4-4-12 hex string.
func decodeUUID(raw []byte, _ readFunc, _ Options) (Value, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "expected a JSON string for g:UUID: %v", err)
	}
	id, err := newUUID(s)
	if err != nil {
		return nil, decodeErr(KindInvalidPayload, string(raw), "not a canonical UUID %q: %v", s, err)
	}
	return id, nil
}

// decodeList is the shared decoder for g:List and g:Set: both decode into
// List, the set-ness of g:Set is discarded (§9).
func decodeList(raw []byte, read readFunc, _ Options) (Value, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "expected a JSON array: %v", err)
	}
	out := make(List, 0, len(elems))
	for _, e := range elems {
		v, err := read(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// decodeMap expects an even-length array of alternating string keys and
// typed values (§4.3 "Map"). Duplicate keys: the later pair overwrites the
// earlier one.
func decodeMap(raw []byte, read readFunc, _ Options) (Value, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "expected a JSON array: %v", err)
	}
	if len(elems)%2 != 0 {
		return nil, decodeErr(KindInvalidPayload, string(raw), "g:Map payload has odd length %d", len(elems))
	}

	m := NewMap()
	for i := 0; i < len(elems); i += 2 {
		var key string
		if err := json.Unmarshal(elems[i], &key); err != nil {
			return nil, decodeErr(KindShapeMismatch, string(elems[i]), "g:Map keys must be bare JSON strings: %v", err)
		}
		value, err := read(elems[i+1])
		if err != nil {
			return nil, err
		}
		m.SetString(key, value)
	}
	return m, nil
}

// optionalLabel extracts a "label" (or renamed) string field from a payload
// object, defaulting when absent, matching the §4.3 rule that label fields
// are optional with a type-specific default.
func optionalLabel(fields map[string]json.RawMessage, key, def string) (string, error) {
	raw, ok := fields[key]
	if !ok {
		return def, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", decodeErr(KindShapeMismatch, string(raw), "%q must be a string: %v", key, err)
	}
	return s, nil
}

func requireField(fields map[string]json.RawMessage, key, owner string) (json.RawMessage, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, decodeErr(KindMissingField, "", "field %q not found in %s", key, owner)
	}
	return raw, nil
}

// decodeVertex implements the Vertex deserializer (§4.3).
func decodeVertex(raw []byte, read readFunc, opts Options) (Value, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "g:Vertex payload must be an object: %v", err)
	}

	label, err := optionalLabel(fields, "label", "vertex")
	if err != nil {
		return nil, err
	}

	idRaw, err := requireField(fields, "id", "g:Vertex")
	if err != nil {
		return nil, err
	}
	id, err := deserializeID(idRaw, read, opts.StrictMode)
	if err != nil {
		return nil, err
	}

	props, err := decodeVertexProperties(fields["properties"], read, opts)
	if err != nil {
		return nil, err
	}

	return &Vertex{ID: id, Label: label, Properties: props}, nil
}

// decodeVertexProperties implements the vertex-properties sub-decoder
// (§4.3): accepts object | null | absent. Every object value MUST be a
// JSON array whose elements downcast to *VertexProperty.
func decodeVertexProperties(raw json.RawMessage, read readFunc, _ Options) (map[string][]*VertexProperty, error) {
	if raw == nil || string(raw) == "null" {
		return map[string][]*VertexProperty{}, nil
	}

	var obj map[string][]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "expected object or null for properties: %v", err)
	}

	out := make(map[string][]*VertexProperty, len(obj))
	for name, arr := range obj {
		list := make([]*VertexProperty, 0, len(arr))
		for _, elemRaw := range arr {
			v, err := read(elemRaw)
			if err != nil {
				return nil, err
			}
			vp, ok := v.(*VertexProperty)
			if !ok {
				return nil, decodeErr(KindDowncastFailure, string(elemRaw), "expected a g:VertexProperty element for property %q", name)
			}
			list = append(list, vp)
		}
		out[name] = list
	}
	return out, nil
}

// decodeVertexProperty implements the VertexProperty deserializer (§4.3).
// Its nested "properties" (meta-properties) decode through the same
// sub-decoder used for a Vertex's own properties.
func decodeVertexProperty(raw []byte, read readFunc, opts Options) (Value, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "g:VertexProperty payload must be an object: %v", err)
	}

	label, err := optionalLabel(fields, "label", "vertex_property")
	if err != nil {
		return nil, err
	}

	idRaw, err := requireField(fields, "id", "g:VertexProperty")
	if err != nil {
		return nil, err
	}
	id, err := deserializeID(idRaw, read, opts.StrictMode)
	if err != nil {
		return nil, err
	}

	valueRaw, err := requireField(fields, "value", "g:VertexProperty")
	if err != nil {
		return nil, err
	}
	value, err := read(valueRaw)
	if err != nil {
		return nil, err
	}

	metaProps, err := decodeVertexProperties(fields["properties"], read, opts)
	if err != nil {
		return nil, err
	}

	return &VertexProperty{ID: id, Label: label, Value: value, Properties: metaProps}, nil
}

// decodeProperty implements the Property deserializer (§4.3).
func decodeProperty(raw []byte, read readFunc, _ Options) (Value, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "g:Property payload must be an object: %v", err)
	}

	key, err := optionalLabel(fields, "key", "property")
	if err != nil {
		return nil, err
	}

	valueRaw, err := requireField(fields, "value", "g:Property")
	if err != nil {
		return nil, err
	}
	value, err := read(valueRaw)
	if err != nil {
		return nil, err
	}

	return &Property{Key: key, Value: value}, nil
}

// decodeEdge implements the Edge deserializer (§4.3). It always surfaces an
// empty property map: the decoder discards incoming nested g:Property
// payloads, a documented gap (§9 "Edge properties not populated").
func decodeEdge(raw []byte, read readFunc, opts Options) (Value, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "g:Edge payload must be an object: %v", err)
	}

	label, err := optionalLabel(fields, "label", "edge")
	if err != nil {
		return nil, err
	}

	idRaw, err := requireField(fields, "id", "g:Edge")
	if err != nil {
		return nil, err
	}
	id, err := deserializeID(idRaw, read, opts.StrictMode)
	if err != nil {
		return nil, err
	}

	inVRaw, err := requireField(fields, "inV", "g:Edge")
	if err != nil {
		return nil, err
	}
	inVID, err := deserializeID(inVRaw, read, opts.StrictMode)
	if err != nil {
		return nil, err
	}
	inVLabel, err := optionalLabel(fields, "inVLabel", "")
	if err != nil {
		return nil, err
	}

	outVRaw, err := requireField(fields, "outV", "g:Edge")
	if err != nil {
		return nil, err
	}
	outVID, err := deserializeID(outVRaw, read, opts.StrictMode)
	if err != nil {
		return nil, err
	}
	outVLabel, err := optionalLabel(fields, "outVLabel", "")
	if err != nil {
		return nil, err
	}

	return &Edge{
		ID:         id,
		Label:      label,
		InVID:      inVID,
		InVLabel:   inVLabel,
		OutVID:     outVID,
		OutVLabel:  outVLabel,
		Properties: map[string]*Property{},
	}, nil
}

// decodePath implements the Path deserializer (§4.3). labels and objects
// both pass through read; objects must decode to a List.
func decodePath(raw []byte, read readFunc, _ Options) (Value, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "g:Path payload must be an object: %v", err)
	}

	labelsRaw, err := requireField(fields, "labels", "g:Path")
	if err != nil {
		return nil, err
	}
	labelsVal, err := read(labelsRaw)
	if err != nil {
		return nil, err
	}
	labels, ok := labelsVal.(List)
	if !ok {
		return nil, decodeErr(KindDowncastFailure, string(labelsRaw), "g:Path labels must decode to a List")
	}

	objectsRaw, err := requireField(fields, "objects", "g:Path")
	if err != nil {
		return nil, err
	}
	objectsVal, err := read(objectsRaw)
	if err != nil {
		return nil, err
	}
	objects, ok := objectsVal.(List)
	if !ok {
		return nil, decodeErr(KindDowncastFailure, string(objectsRaw), "g:Path objects must decode to a List")
	}

	if len(labels) != len(objects) {
		return nil, decodeErr(KindInvalidPayload, string(raw), "g:Path labels (%d) and objects (%d) must be equal length", len(labels), len(objects))
	}

	return &Path{Labels: []Value(labels), Objects: []Value(objects)}, nil
}

// mapField extracts a required field from a decoded Map, reporting a
// missing-field error naming owner the way §4.3 requires ("field X not
// found in g:Metrics").
func mapField(m *Map, field, owner string) (Value, error) {
	v, ok := m.GetString(field)
	if !ok {
		return nil, decodeErr(KindMissingField, "", "field %q not found in %s", field, owner)
	}
	return v, nil
}

func mapOf(v Value, owner string) (*Map, error) {
	m, ok := v.(*Map)
	if !ok {
		return nil, decodeErr(KindDowncastFailure, "", "expected a g:Map value while decoding %s", owner)
	}
	return m, nil
}

func float64Of(v Value, field, owner string) (float64, error) {
	f, ok := v.(float64)
	if !ok {
		return 0, decodeErr(KindDowncastFailure, "", "field %q of %s must be a g:Double", field, owner)
	}
	return f, nil
}

func int64Of(v Value, field, owner string) (int64, error) {
	n, ok := v.(int64)
	if !ok {
		return 0, decodeErr(KindDowncastFailure, "", "field %q of %s must be a g:Int64", field, owner)
	}
	return n, nil
}

func stringOf(v Value, field, owner string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", decodeErr(KindDowncastFailure, "", "field %q of %s must be a bare string", field, owner)
	}
	return s, nil
}

// decodeMetric implements the Metrics deserializer (§4.3). The payload is
// itself a g:Map envelope.
func decodeMetric(raw []byte, read readFunc, _ Options) (Value, error) {
	return decodeMetricValue(raw, read)
}

func decodeMetricValue(raw []byte, read readFunc) (*Metric, error) {
	v, err := read(raw)
	if err != nil {
		return nil, err
	}
	m, err := mapOf(v, "g:Metrics")
	if err != nil {
		return nil, err
	}

	const owner = "g:Metrics"
	durVal, err := mapField(m, "dur", owner)
	if err != nil {
		return nil, err
	}
	dur, err := float64Of(durVal, "dur", owner)
	if err != nil {
		return nil, err
	}

	idVal, err := mapField(m, "id", owner)
	if err != nil {
		return nil, err
	}
	id, err := stringOf(idVal, "id", owner)
	if err != nil {
		return nil, err
	}

	nameVal, err := mapField(m, "name", owner)
	if err != nil {
		return nil, err
	}
	name, err := stringOf(nameVal, "name", owner)
	if err != nil {
		return nil, err
	}

	countsVal, err := mapField(m, "counts", owner)
	if err != nil {
		return nil, err
	}
	counts, err := mapOf(countsVal, owner)
	if err != nil {
		return nil, err
	}
	traversersVal, err := mapField(counts, "traverserCount", owner)
	if err != nil {
		return nil, err
	}
	traversers, err := int64Of(traversersVal, "traverserCount", owner)
	if err != nil {
		return nil, err
	}
	elemVal, err := mapField(counts, "elementCount", owner)
	if err != nil {
		return nil, err
	}
	elements, err := int64Of(elemVal, "elementCount", owner)
	if err != nil {
		return nil, err
	}

	annotationsVal, err := mapField(m, "annotations", owner)
	if err != nil {
		return nil, err
	}
	annotations, err := mapOf(annotationsVal, owner)
	if err != nil {
		return nil, err
	}
	percentVal, err := mapField(annotations, "percentDur", owner)
	if err != nil {
		return nil, err
	}
	percent, err := float64Of(percentVal, "percentDur", owner)
	if err != nil {
		return nil, err
	}

	return &Metric{
		ID:              id,
		Name:            name,
		Duration:        dur,
		ElementCount:    elements,
		TraverserCount:  traversers,
		PercentDuration: percent,
	}, nil
}

// decodeTraversalMetrics implements the TraversalMetrics deserializer
// (§4.3). Elements of the "metrics" list that do not decode to a Metric
// are silently skipped unless Options.StrictMode is set (§9 "Silent
// element drops").
func decodeTraversalMetrics(raw []byte, read readFunc, opts Options) (Value, error) {
	v, err := read(raw)
	if err != nil {
		return nil, err
	}
	m, err := mapOf(v, "g:TraversalMetrics")
	if err != nil {
		return nil, err
	}

	const owner = "g:TraversalMetrics"
	durVal, err := mapField(m, "dur", owner)
	if err != nil {
		return nil, err
	}
	dur, err := float64Of(durVal, "dur", owner)
	if err != nil {
		return nil, err
	}

	metricsVal, err := mapField(m, "metrics", owner)
	if err != nil {
		return nil, err
	}
	metricsList, ok := metricsVal.(List)
	if !ok {
		return nil, decodeErr(KindDowncastFailure, "", "field %q of %s must be a g:List", "metrics", owner)
	}

	metrics := make([]Metric, 0, len(metricsList))
	for _, elem := range metricsList {
		mt, ok := elem.(*Metric)
		if !ok {
			if opts.StrictMode {
				return nil, decodeErr(KindDowncastFailure, "", "non-g:Metrics element in %s.metrics", owner)
			}
			continue
		}
		metrics = append(metrics, *mt)
	}

	return &TraversalMetrics{Duration: dur, Metrics: metrics}, nil
}

// stringList filters a List down to its string elements, silently dropping
// anything else unless strict is set, matching the salvage semantics
// documented for TraversalExplanation's original/final/traversal lists.
func stringList(v Value, field, owner string, strict bool) ([]string, error) {
	list, ok := v.(List)
	if !ok {
		return nil, decodeErr(KindDowncastFailure, "", "field %q of %s must be a g:List", field, owner)
	}
	out := make([]string, 0, len(list))
	for _, elem := range list {
		s, ok := elem.(string)
		if !ok {
			if strict {
				return nil, decodeErr(KindDowncastFailure, "", "non-string element in %s.%s", owner, field)
			}
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// decodeTraversalExplanation implements the TraversalExplanation
// deserializer (§4.3).
func decodeTraversalExplanation(raw []byte, read readFunc, opts Options) (Value, error) {
	v, err := read(raw)
	if err != nil {
		return nil, err
	}
	m, err := mapOf(v, "g:TraversalExplanation")
	if err != nil {
		return nil, err
	}

	const owner = "g:TraversalExplanation"

	originalVal, err := mapField(m, "original", owner)
	if err != nil {
		return nil, err
	}
	original, err := stringList(originalVal, "original", owner, opts.StrictMode)
	if err != nil {
		return nil, err
	}

	finalVal, err := mapField(m, "final", owner)
	if err != nil {
		return nil, err
	}
	final, err := stringList(finalVal, "final", owner, opts.StrictMode)
	if err != nil {
		return nil, err
	}

	intermediateVal, err := mapField(m, "intermediate", owner)
	if err != nil {
		return nil, err
	}
	intermediateList, ok := intermediateVal.(List)
	if !ok {
		return nil, decodeErr(KindDowncastFailure, "", "field %q of %s must be a g:List", "intermediate", owner)
	}

	intermediate := make([]IntermediateRepr, 0, len(intermediateList))
	for _, elem := range intermediateList {
		em, ok := elem.(*Map)
		if !ok {
			if opts.StrictMode {
				return nil, decodeErr(KindDowncastFailure, "", "non-g:Map element in %s.intermediate", owner)
			}
			continue
		}
		ir, err := decodeIntermediateRepr(em, opts)
		if err != nil {
			if opts.StrictMode {
				return nil, err
			}
			continue
		}
		intermediate = append(intermediate, ir)
	}

	return &TraversalExplanation{Original: original, Final: final, Intermediate: intermediate}, nil
}

func decodeIntermediateRepr(m *Map, opts Options) (IntermediateRepr, error) {
	const owner = "g:TraversalExplanation"

	travVal, err := mapField(m, "traversal", owner)
	if err != nil {
		return IntermediateRepr{}, err
	}
	traversal, err := stringList(travVal, "traversal", owner, opts.StrictMode)
	if err != nil {
		return IntermediateRepr{}, err
	}

	strategyVal, err := mapField(m, "strategy", owner)
	if err != nil {
		return IntermediateRepr{}, err
	}
	strategy, err := stringOf(strategyVal, "strategy", owner)
	if err != nil {
		return IntermediateRepr{}, err
	}

	categoryVal, err := mapField(m, "category", owner)
	if err != nil {
		return IntermediateRepr{}, err
	}
	category, err := stringOf(categoryVal, "category", owner)
	if err != nil {
		return IntermediateRepr{}, err
	}

	return IntermediateRepr{TraversalSteps: traversal, Strategy: strategy, Category: category}, nil
}
