package gremlingo

import (
	"bytes"
	"encoding/json"
)

// reader holds the per-Decode-call state: the options in effect and the
// current recursion depth. It is cheap to construct and never shared
// across calls, matching §5's "single-threaded cooperative per decode
// call" scheduling model — Decode itself may be called concurrently from
// many goroutines because each call gets its own reader and the registry
// it consults is read-only.
type reader struct {
	opts  Options
	depth int
}

// Decode is the codec's entry point (§6): given a raw GraphSON v3 JSON
// tree, produce a Value or a DecodeError. opts is optional; the zero value
// applies the documented default behavior.
func Decode(data []byte, opts ...Options) (Value, error) {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	r := &reader{opts: o}
	return r.read(data)
}

// read implements the classification rules of §4.2, in order. It is the
// single dispatch loop every decoder recurses back into, via the readFunc
// capability each decoder receives.
func (r *reader) read(raw []byte) (Value, error) {
	r.depth++
	defer func() { r.depth-- }()
	if r.depth > r.opts.maxDepth() {
		return nil, decodeErr(KindShapeMismatch, string(raw), "recursion depth exceeds %d", r.opts.maxDepth())
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, decodeErr(KindShapeMismatch, string(raw), "empty node")
	}

	switch trimmed[0] {
	case 'n': // null
		return nil, nil
	case 't', 'f': // bool
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return nil, decodeErr(KindShapeMismatch, string(trimmed), "expected boolean: %v", err)
		}
		return b, nil
	case '"': // bare string
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, decodeErr(KindShapeMismatch, string(trimmed), "expected string: %v", err)
		}
		return s, nil
	case '{':
		return r.readObject(trimmed)
	case '[':
		return nil, decodeErr(KindShapeMismatch, string(trimmed), "bare array outside a known decoder context")
	default:
		// Anything else starting a JSON value at this point is a number:
		// digits, '-', or one of the rare leading characters a number can
		// start with under the grammar we accept.
		return nil, decodeErr(KindBareNumber, string(trimmed), "untyped JSON number; numbers must arrive inside a typed envelope")
	}
}

// readObject implements rules 5 and 6: a well-formed {"@type","@value"}
// envelope dispatches to the registry; anything else is either a malformed
// envelope (one of the two keys present, or extra keys) or a bare object
// (neither key present), both decode errors at this level.
func (r *reader) readObject(raw []byte) (Value, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeErr(KindShapeMismatch, string(raw), "expected object: %v", err)
	}

	typeRaw, hasType := fields["@type"]
	valueRaw, hasValue := fields["@value"]

	switch {
	case hasType && hasValue && len(fields) == 2:
		var tag string
		if err := json.Unmarshal(typeRaw, &tag); err != nil {
			return nil, decodeErr(KindShapeMismatch, string(typeRaw), "@type must be a string: %v", err)
		}
		dec, ok := lookup(tag)
		if !ok {
			return nil, decodeErr(KindUnknownTag, string(raw), "unrecognized type tag %q", tag)
		}
		return dec(valueRaw, r.read, r.opts)

	case hasType || hasValue:
		return nil, decodeErr(KindMalformedEnvelope, string(raw), "envelope must carry both @type and @value, and nothing else")

	default:
		return nil, decodeErr(KindShapeMismatch, string(raw), "bare object outside a known decoder context")
	}
}
