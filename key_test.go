package gremlingo

import (
	"testing"

	"github.com/go-test/deep"
)

func TestMapSetGetString(t *testing.T) {
	m := NewMap()
	m.SetString("name", "marko")
	m.SetString("age", int32(29))

	name, ok := m.GetString("name")
	if !ok || name != "marko" {
		t.Errorf("GetString(name) = %v, %v, want marko, true", name, ok)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestMapSetStringOverwrites(t *testing.T) {
	m := NewMap()
	m.SetString("k", 1)
	m.SetString("k", 2)
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
	v, _ := m.GetString("k")
	if v != 2 {
		t.Errorf("GetString(k) = %v, want 2", v)
	}
}

func TestMapStructuralKeys(t *testing.T) {
	v1 := KeyVertex(Vertex{ID: IDInt32(1), Label: "person"})
	v2 := KeyVertex(Vertex{ID: IDInt32(1), Label: "person"})

	m := NewMap()
	m.Set(v1, "first")
	m.Set(v2, "second")

	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (v1 and v2 are structurally equal keys)", m.Len())
	}
	got, ok := m.Get(v1)
	if !ok || got != "second" {
		t.Errorf("Get(v1) = %v, %v, want second, true", got, ok)
	}
}

func TestMapEqual(t *testing.T) {
	a := NewMap()
	a.SetString("x", 1)
	a.SetString("y", 2)

	b := NewMap()
	b.SetString("y", 2)
	b.SetString("x", 1)

	if !a.Equal(b) {
		t.Error("Equal() = false, want true (order-independent)")
	}

	b.SetString("z", 3)
	if a.Equal(b) {
		t.Error("Equal() = true, want false after adding an extra key")
	}
}

func TestMapRangeOrder(t *testing.T) {
	m := NewMap()
	m.SetString("a", 1)
	m.SetString("b", 2)
	m.SetString("c", 3)

	var keys []string
	m.Range(func(k Key, v Value) bool {
		keys = append(keys, string(k.(KeyString)))
		return true
	})

	want := []string{"a", "b", "c"}
	if diff := deep.Equal(want, keys); diff != nil {
		t.Errorf("Range order = %v, want %v (%v)", keys, want, diff)
	}
}
