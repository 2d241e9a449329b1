package gremlingo

import "testing"

func TestDeserializeIDVariants(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  ID
	}{
		{"string", `"marko"`, IDString("marko")},
		{"int32", `{"@type":"g:Int32","@value":1}`, IDInt32(1)},
		{"int64", `{"@type":"g:Int64","@value":1}`, IDInt64(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := &reader{}
			got, err := deserializeID([]byte(c.input), r.read, false)
			if err != nil {
				t.Fatalf("deserializeID(%s) returned error: %v", c.input, err)
			}
			if got != c.want {
				t.Errorf("deserializeID(%s) = %#v, want %#v", c.input, got, c.want)
			}
		})
	}
}

func TestDeserializeIDFallsBackOnBareNumber(t *testing.T) {
	r := &reader{}
	got, err := deserializeID([]byte(`42`), r.read, false)
	if err != nil {
		t.Fatalf("deserializeID returned error: %v", err)
	}
	want := IDString("42")
	if got != want {
		t.Errorf("deserializeID(42) = %#v, want %#v", got, want)
	}
}

func TestDeserializeIDBareNumberFallbackDisabledInStrictMode(t *testing.T) {
	r := &reader{}
	_, err := deserializeID([]byte(`42`), r.read, true)
	if err == nil {
		t.Fatal("expected an error; strict mode must not salvage a bare-number id")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindBareNumber {
		t.Errorf("err = %v, want the underlying KindBareNumber DecodeError", err)
	}
}

func TestDeserializeIDRejectsUnsupportedType(t *testing.T) {
	r := &reader{}
	_, err := deserializeID([]byte(`{"@type":"g:List","@value":[]}`), r.read, false)
	if err == nil {
		t.Fatal("expected an error for an unsupported id shape")
	}
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != KindDowncastFailure {
		t.Errorf("err = %v, want a KindDowncastFailure DecodeError", err)
	}
}
