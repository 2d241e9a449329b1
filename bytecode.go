package gremlingo

// Step is one instruction of a traversal's bytecode: a step name (e.g.
// "has", "out", "addV") together with its arguments, exactly as the step
// was called on the fluent builder (§4.4).
type Step struct {
	Name      string
	Arguments []Value
}

// Bytecode is the append-only instruction list a GraphTraversal accumulates
// as the caller chains steps. It has a single owner at any point in time:
// AddStep appends in place, so forking a traversal (e.g. handing the same
// prefix to two branches of a caller's code) takes an explicit Clone, after
// which one branch's further steps can never leak into the other's (§5
// "single-owner mutation, deep-copy on fork").
type Bytecode struct {
	steps []Step
}

// NewBytecode returns an empty Bytecode.
func NewBytecode() *Bytecode {
	return &Bytecode{}
}

// AddStep appends a step, returning the receiver for chaining convenience
// inside the package; callers outside the package interact with Bytecode
// only through GraphTraversal.
func (b *Bytecode) AddStep(name string, args ...Value) *Bytecode {
	b.steps = append(b.steps, Step{Name: name, Arguments: args})
	return b
}

// Steps returns a read-only view of the accumulated steps. The returned
// slice must not be mutated by the caller; Clone is the supported way to
// obtain an independently mutable copy.
func (b *Bytecode) Steps() []Step {
	return b.steps
}

// Clone returns a deep copy of b: a new backing array for the step list,
// and for each step a new backing array for its arguments. Mutating the
// clone — or the original — afterward never affects the other.
func (b *Bytecode) Clone() *Bytecode {
	clone := &Bytecode{steps: make([]Step, len(b.steps))}
	for i, s := range b.steps {
		args := make([]Value, len(s.Arguments))
		copy(args, s.Arguments)
		clone.steps[i] = Step{Name: s.Name, Arguments: args}
	}
	return clone
}
