package gremlingo

import "encoding/json"

// P is a Gremlin predicate: a named comparison operator together with the
// operand(s) it compares a traversed value against (§4.8). It is never
// produced by the reader — a P only ever appears client-side, as the
// argument to a filtering step such as Has or Where.
type P struct {
	Operator string
	Values   []Value
}

// Eq, Neq, Lt, Lte, Gt, and Gte are the single-operand comparison
// predicates (§4.8).
func Eq(v Value) *P  { return &P{Operator: "eq", Values: []Value{v}} }
func Neq(v Value) *P { return &P{Operator: "neq", Values: []Value{v}} }
func Lt(v Value) *P  { return &P{Operator: "lt", Values: []Value{v}} }
func Lte(v Value) *P { return &P{Operator: "lte", Values: []Value{v}} }
func Gt(v Value) *P  { return &P{Operator: "gt", Values: []Value{v}} }
func Gte(v Value) *P { return &P{Operator: "gte", Values: []Value{v}} }

// Within and Without are the set-membership predicates (§4.8); both accept
// a variadic operand list rather than a single value.
func Within(vs ...Value) *P  { return &P{Operator: "within", Values: vs} }
func Without(vs ...Value) *P { return &P{Operator: "without", Values: vs} }

// And and Or combine two predicates, matching Gremlin's P.and/P.or chaining.
func (p *P) And(other *P) *P {
	return &P{Operator: "and", Values: []Value{p, other}}
}

func (p *P) Or(other *P) *P {
	return &P{Operator: "or", Values: []Value{p, other}}
}

func encodePredicate(p *P) (json.RawMessage, error) {
	var valueJSON json.RawMessage
	var err error
	switch {
	case len(p.Values) == 1:
		valueJSON, err = Encode(p.Values[0])
	default:
		valueJSON, err = Encode(List(p.Values))
	}
	if err != nil {
		return nil, err
	}

	payload := struct {
		Predicate string          `json:"predicate"`
		Value     json.RawMessage `json:"value"`
	}{Predicate: p.Operator, Value: valueJSON}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, encodeErr("marshaling g:P payload: %v", err)
	}
	return envelopeRaw("g:P", raw)
}
