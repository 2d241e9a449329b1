package gremlingo

import (
	"testing"

	"github.com/go-test/deep"
)

func TestDecodeBarePrimitives(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected Value
	}{
		{"null", `null`, nil},
		{"true", `true`, true},
		{"false", `false`, false},
		{"string", `"marko"`, "marko"},
		{"empty string", `""`, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Decode([]byte(c.input))
			if err != nil {
				t.Fatalf("Decode(%s) returned error: %v", c.input, err)
			}
			if diff := deep.Equal(c.expected, got); diff != nil {
				t.Errorf("Decode(%s) = %v, want %v (%v)", c.input, got, c.expected, diff)
			}
		})
	}
}

func TestDecodeBareNumberRejected(t *testing.T) {
	_, err := Decode([]byte(`42`))
	if err == nil {
		t.Fatal("expected an error decoding a bare JSON number")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	if de.Kind != KindBareNumber {
		t.Errorf("Kind = %v, want %v", de.Kind, KindBareNumber)
	}
}

func TestDecodeBareArrayRejected(t *testing.T) {
	_, err := Decode([]byte(`[1,2,3]`))
	if err == nil {
		t.Fatal("expected an error decoding a bare JSON array")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	if de.Kind != KindShapeMismatch {
		t.Errorf("Kind = %v, want %v", de.Kind, KindShapeMismatch)
	}
}

func TestDecodeBareObjectRejected(t *testing.T) {
	_, err := Decode([]byte(`{"foo":"bar"}`))
	if err == nil {
		t.Fatal("expected an error decoding a bare JSON object")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	if de.Kind != KindShapeMismatch {
		t.Errorf("Kind = %v, want %v", de.Kind, KindShapeMismatch)
	}
}

func TestDecodeMalformedEnvelope(t *testing.T) {
	cases := []string{
		`{"@type":"g:Int32"}`,
		`{"@value":1}`,
		`{"@type":"g:Int32","@value":1,"extra":true}`,
	}
	for _, c := range cases {
		_, err := Decode([]byte(c))
		if err == nil {
			t.Fatalf("Decode(%s): expected an error", c)
		}
		de, ok := err.(*DecodeError)
		if !ok {
			t.Fatalf("Decode(%s): expected a *DecodeError, got %T", c, err)
		}
		if de.Kind != KindMalformedEnvelope {
			t.Errorf("Decode(%s): Kind = %v, want %v", c, de.Kind, KindMalformedEnvelope)
		}
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	_, err := Decode([]byte(`{"@type":"g:Nonsense","@value":1}`))
	if err == nil {
		t.Fatal("expected an error for an unrecognized @type")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	if de.Kind != KindUnknownTag {
		t.Errorf("Kind = %v, want %v", de.Kind, KindUnknownTag)
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	// Build a deeply nested g:List envelope that exceeds a tiny MaxDepth.
	input := []byte(`{"@type":"g:List","@value":[{"@type":"g:List","@value":[{"@type":"g:List","@value":[]}]}]}`)
	_, err := Decode(input, Options{MaxDepth: 2})
	if err == nil {
		t.Fatal("expected a depth-limit error")
	}
	de, ok := err.(*DecodeError)
	if !ok {
		t.Fatalf("expected a *DecodeError, got %T", err)
	}
	if de.Kind != KindShapeMismatch {
		t.Errorf("Kind = %v, want %v", de.Kind, KindShapeMismatch)
	}
}
