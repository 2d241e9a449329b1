package gremlingo

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/google/uuid"
)

// roundTrip encodes v and decodes the result back, the property §8 calls
// out directly: decode(encode(v)) must be structurally equal to v for every
// Value the reader can produce.
func roundTrip(t *testing.T, v Value) Value {
	t.Helper()
	encoded, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode(%#v) returned error: %v", v, err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode(Encode(%#v)) returned error: %v", v, err)
	}
	return decoded
}

func TestRoundTripPrimitives(t *testing.T) {
	cases := []Value{nil, true, false, "marko", int32(27), int64(27), float32(31.3), float64(31.3)}
	for _, v := range cases {
		got := roundTrip(t, v)
		if diff := deep.Equal(v, got); diff != nil {
			t.Errorf("round trip of %#v = %#v (%v)", v, got, diff)
		}
	}
}

func TestRoundTripUUID(t *testing.T) {
	v := uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786")
	got := roundTrip(t, v)
	if got != v {
		t.Errorf("round trip of %v = %v", v, got)
	}
}

func TestRoundTripList(t *testing.T) {
	v := List{int32(1), "two", true}
	got := roundTrip(t, v)
	if diff := deep.Equal(v, got); diff != nil {
		t.Errorf("round trip of %#v = %#v (%v)", v, got, diff)
	}
}

func TestRoundTripMap(t *testing.T) {
	v := NewMap()
	v.SetString("name", "marko")
	v.SetString("age", int32(29))

	got := roundTrip(t, v)
	gm, ok := got.(*Map)
	if !ok {
		t.Fatalf("round trip of *Map = %T", got)
	}
	if !v.Equal(gm) {
		t.Errorf("round trip of %v = %v", v, gm)
	}
}

func TestRoundTripVertex(t *testing.T) {
	v := &Vertex{
		ID:    IDInt64(1),
		Label: "person",
		Properties: map[string][]*VertexProperty{
			"name": {{ID: IDInt64(0), Label: "name", Value: "marko", Properties: map[string][]*VertexProperty{}}},
		},
	}
	got := roundTrip(t, v)
	if diff := deep.Equal(v, got); diff != nil {
		t.Errorf("round trip of vertex (%v)", diff)
	}
}

func TestRoundTripEdge(t *testing.T) {
	e := &Edge{
		ID:         IDInt32(13),
		Label:      "develops",
		InVID:      IDInt32(10),
		InVLabel:   "software",
		OutVID:     IDInt32(1),
		OutVLabel:  "person",
		Properties: map[string]*Property{},
	}
	got := roundTrip(t, e)
	if diff := deep.Equal(e, got); diff != nil {
		t.Errorf("round trip of edge (%v)", diff)
	}
}

func TestEncodeMapRejectsNonStringKey(t *testing.T) {
	m := NewMap()
	m.Set(KeyVertex(Vertex{ID: IDInt32(1)}), "v")
	_, err := Encode(m)
	if err == nil {
		t.Fatal("expected an error encoding a Map with a non-string key")
	}
}

func TestEncodeBareStringStaysBare(t *testing.T) {
	raw, err := Encode("marko")
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if string(raw) != `"marko"` {
		t.Errorf("Encode(marko) = %s, want a bare JSON string", raw)
	}
}

func TestEncodeSetNeverReemitted(t *testing.T) {
	// A decoded g:Set collapses into a List; encoding it back always
	// produces g:List, never g:Set (§9).
	decoded, err := Decode([]byte(`{"@type":"g:Set","@value":[{"@type":"g:Int32","@value":1}]}`))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	raw, err := Encode(decoded)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := `{"@type":"g:List","@value":[{"@type":"g:Int32","@value":1}]}`
	if string(raw) != want {
		t.Errorf("Encode(decoded g:Set) = %s, want %s", raw, want)
	}
}
