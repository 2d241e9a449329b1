package gremlingo

import (
	"encoding/json"
	"testing"
)

func TestBytecodeAddStepAccumulates(t *testing.T) {
	bc := NewBytecode()
	bc.AddStep("V")
	bc.AddStep("hasLabel", "person")

	steps := bc.Steps()
	if len(steps) != 2 {
		t.Fatalf("len(Steps()) = %d, want 2", len(steps))
	}
	if steps[0].Name != "V" || steps[1].Name != "hasLabel" {
		t.Errorf("Steps() = %v", steps)
	}
	if steps[1].Arguments[0] != "person" {
		t.Errorf("Steps()[1].Arguments = %v, want [person]", steps[1].Arguments)
	}
}

func TestBytecodeCloneIsIndependent(t *testing.T) {
	original := NewBytecode()
	original.AddStep("hasLabel", "person")

	clone := original.Clone()
	clone.Steps()[0].Arguments[0] = "mutated"
	clone.AddStep("out", "knows")

	if original.Steps()[0].Arguments[0] != "person" {
		t.Errorf("clone mutation reached original's arguments: %v", original.Steps()[0].Arguments)
	}
	if len(original.Steps()) != 1 {
		t.Errorf("clone's new step reached original: len(Steps()) = %d, want 1", len(original.Steps()))
	}
	if len(clone.Steps()) != 2 {
		t.Errorf("len(clone.Steps()) = %d, want 2", len(clone.Steps()))
	}
}

func TestEncodeBytecodeProducesStepArrayEnvelope(t *testing.T) {
	bc := NewBytecode()
	bc.AddStep("V")
	bc.AddStep("hasLabel", "person")
	bc.AddStep("has", "age", int32(29))

	raw, err := Encode(bc)
	if err != nil {
		t.Fatalf("Encode(*Bytecode) returned error: %v", err)
	}

	var envelope struct {
		Type  string `json:"@type"`
		Value struct {
			Step []json.RawMessage `json:"step"`
		} `json:"@value"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("Encode(*Bytecode) produced unparseable JSON: %v (%s)", err, raw)
	}
	if envelope.Type != "g:Bytecode" {
		t.Errorf("@type = %q, want g:Bytecode", envelope.Type)
	}
	if len(envelope.Value.Step) != 3 {
		t.Fatalf("len(step) = %d, want 3", len(envelope.Value.Step))
	}

	var firstStep []json.RawMessage
	if err := json.Unmarshal(envelope.Value.Step[0], &firstStep); err != nil {
		t.Fatalf("step[0] is not a JSON array: %v", err)
	}
	if len(firstStep) != 1 || string(firstStep[0]) != `"V"` {
		t.Errorf("step[0] = %s, want [\"V\"]", envelope.Value.Step[0])
	}

	var thirdStep []json.RawMessage
	if err := json.Unmarshal(envelope.Value.Step[2], &thirdStep); err != nil {
		t.Fatalf("step[2] is not a JSON array: %v", err)
	}
	if len(thirdStep) != 3 {
		t.Fatalf("len(step[2]) = %d, want 3 (name, key, value)", len(thirdStep))
	}
	if string(thirdStep[0]) != `"has"` {
		t.Errorf("step[2][0] = %s, want \"has\"", thirdStep[0])
	}
	if string(thirdStep[1]) != `"age"` {
		t.Errorf("step[2][1] = %s, want \"age\"", thirdStep[1])
	}
	wantArg, err := Encode(int32(29))
	if err != nil {
		t.Fatalf("Encode(int32(29)) returned error: %v", err)
	}
	if string(thirdStep[2]) != string(wantArg) {
		t.Errorf("step[2][2] = %s, want %s (re-encoded via Encode)", thirdStep[2], wantArg)
	}
}

func TestEncodeBytecodeEmpty(t *testing.T) {
	raw, err := Encode(NewBytecode())
	if err != nil {
		t.Fatalf("Encode(empty *Bytecode) returned error: %v", err)
	}
	want := `{"@type":"g:Bytecode","@value":{"step":[]}}`
	if string(raw) != want {
		t.Errorf("Encode(empty *Bytecode) = %s, want %s", raw, want)
	}
}
