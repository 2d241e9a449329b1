package gremlingo

import "reflect"

// Token is a Gremlin reserved token (T.id, T.label, ...), one of the four
// shapes a Map key can take alongside plain strings and structural graph
// objects (§3.1 "Key").
type Token string

// The reserved tokens a grouping traversal's result map may be keyed by.
const (
	TokenID    Token = "id"
	TokenLabel Token = "label"
	TokenKey   Token = "key"
	TokenValue Token = "value"
)

// Key is the richer key universe a Map supports in memory: on the wire only
// string keys appear inside g:Map, but traversals that group results (e.g.
// group().by(out())) hand back maps keyed by structural graph objects, so
// the in-memory model must be able to represent and compare all four
// shapes.
type Key interface {
	isKey()
}

// KeyString is a plain string map key, the only shape the wire itself ever
// produces inside a g:Map payload.
type KeyString string

// KeyToken is a reserved-token map key.
type KeyToken Token

// KeyVertex is a structural vertex map key.
type KeyVertex Vertex

// KeyEdge is a structural edge map key.
type KeyEdge Edge

func (KeyString) isKey() {}
func (KeyToken) isKey()  {}
func (KeyVertex) isKey() {}
func (KeyEdge) isKey()   {}

// keysEqual is the Map's equality policy. Vertex and Edge contain slices
// and maps and are therefore not Go-comparable, so Map cannot be backed by
// a native Go map keyed on Key directly (a non-comparable key panics at
// runtime); reflect.DeepEqual gives every Key shape a uniform structural
// equality without requiring each one to hand-roll its own comparison,
// which is the standard choice the design notes call for (§9 "Polymorphic
// value sum ... bitwise hashing is the standard choice" — here applied to
// equality rather than a hash, since Map never needs to bucket by hash).
func keysEqual(a, b Key) bool {
	return reflect.DeepEqual(a, b)
}

// mapEntry is one key/value pair of a Map, kept in insertion order for
// iteration even though the contract (§3.1) does not require that order to
// be meaningful.
type mapEntry struct {
	key   Key
	value Value
}

// Map is the in-memory form of a decoded g:Map. It is a dedicated struct
// rather than a native Go map because Key admits Vertex/Edge payloads that
// are not Go-comparable (§3.1). String keys — the only shape the wire
// itself produces — get an index for O(1) lookup and overwrite; the richer
// key shapes fall back to a linear scan, which is acceptable since they
// only ever arise from in-memory grouping results, not wire decoding.
type Map struct {
	stringIndex map[string]int
	entries     []mapEntry
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{stringIndex: make(map[string]int)}
}

// Set inserts or overwrites the value for key. Duplicate keys overwrite:
// the last Set for a given key wins, matching the g:Map decode contract.
func (m *Map) Set(key Key, value Value) {
	if sk, ok := key.(KeyString); ok {
		if idx, found := m.stringIndex[string(sk)]; found {
			m.entries[idx].value = value
			return
		}
		m.stringIndex[string(sk)] = len(m.entries)
		m.entries = append(m.entries, mapEntry{key: sk, value: value})
		return
	}

	for i := range m.entries {
		if keysEqual(m.entries[i].key, key) {
			m.entries[i].value = value
			return
		}
	}
	m.entries = append(m.entries, mapEntry{key: key, value: value})
}

// SetString is a convenience wrapper for the common case of a string key,
// the only key shape the wire's g:Map grammar ever produces.
func (m *Map) SetString(key string, value Value) {
	m.Set(KeyString(key), value)
}

// Get looks up a value by key.
func (m *Map) Get(key Key) (Value, bool) {
	if sk, ok := key.(KeyString); ok {
		if idx, found := m.stringIndex[string(sk)]; found {
			return m.entries[idx].value, true
		}
		return nil, false
	}
	for _, e := range m.entries {
		if keysEqual(e.key, key) {
			return e.value, true
		}
	}
	return nil, false
}

// GetString looks up a value by string key.
func (m *Map) GetString(key string) (Value, bool) {
	return m.Get(KeyString(key))
}

// Len returns the number of entries in the map.
func (m *Map) Len() int {
	return len(m.entries)
}

// Range calls f for every entry in insertion order. Insertion order is not
// part of the g:Map contract (§3.1) but is deterministic and useful for
// tests and debugging.
func (m *Map) Range(f func(key Key, value Value) bool) {
	for _, e := range m.entries {
		if !f(e.key, e.value) {
			return
		}
	}
}

// Equal reports whether m and other contain the same key/value pairs,
// independent of insertion order.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Range(func(k Key, v Value) bool {
		ov, ok := other.Get(k)
		if !ok || !reflect.DeepEqual(v, ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
