package gremlingo

import "testing"

func TestPredicateConstructors(t *testing.T) {
	cases := []struct {
		name string
		p    *P
		op   string
		vals []Value
	}{
		{"Eq", Eq(30), "eq", []Value{30}},
		{"Neq", Neq(30), "neq", []Value{30}},
		{"Lt", Lt(30), "lt", []Value{30}},
		{"Within", Within("a", "b"), "within", []Value{"a", "b"}},
		{"Without", Without("a"), "without", []Value{"a"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.p.Operator != c.op {
				t.Errorf("Operator = %q, want %q", c.p.Operator, c.op)
			}
			if len(c.p.Values) != len(c.vals) {
				t.Fatalf("Values = %v, want %v", c.p.Values, c.vals)
			}
			for i := range c.vals {
				if c.p.Values[i] != c.vals[i] {
					t.Errorf("Values[%d] = %v, want %v", i, c.p.Values[i], c.vals[i])
				}
			}
		})
	}
}

func TestPredicateAndOr(t *testing.T) {
	p := Gt(10).And(Lt(20))
	if p.Operator != "and" {
		t.Fatalf("Operator = %q, want and", p.Operator)
	}
	if len(p.Values) != 2 {
		t.Fatalf("len(Values) = %d, want 2", len(p.Values))
	}
}

func TestEncodePredicateSingleValue(t *testing.T) {
	raw, err := Encode(Eq(int32(30)))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := `{"@type":"g:P","@value":{"predicate":"eq","value":{"@type":"g:Int32","@value":30}}}`
	if string(raw) != want {
		t.Errorf("Encode(Eq(30)) = %s, want %s", raw, want)
	}
}

func TestEncodePredicateWithinProducesList(t *testing.T) {
	raw, err := Encode(Within("a", "b"))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if len(raw) == 0 {
		t.Fatal("Encode returned empty output")
	}
	want := `{"@type":"g:P","@value":{"predicate":"within","value":{"@type":"g:List","@value":["a","b"]}}}`
	if string(raw) != want {
		t.Errorf("Encode(Within(a, b)) = %s, want %s", raw, want)
	}
}
