package typing

// SequenceItem is one statement in a block body.
type SequenceItem struct {
	Loc   Loc
	Value SequenceItemValue
}

// SequenceItemValue is the closed set of statement variants.
type SequenceItemValue interface {
	isSequenceItemValue()
}

func (*Bind) isSequenceItemValue()    {}
func (*Declare) isSequenceItemValue() {}
func (*Seq) isSequenceItemValue()     {}

// Bind introduces bindings with an initializer. The bindings stay
// visible through every later statement of the enclosing sequence.
// Types entries may be nil where no explicit type was written.
// Example: "let (a, b) = pair();"
type Bind struct {
	LHS   *LValueList
	Types []*Type
	Init  *Exp
}

// Declare introduces bindings without an initializer, with the same
// scoping effect as Bind.
// Example: "let x;"
type Declare struct {
	LHS *LValueList
}

// Seq is a plain expression statement with no scoping effect.
// Example: "transfer(to, amount);"
type Seq struct {
	Exp *Exp
}

// Sequence is the ordered statement list forming a block body.
type Sequence []*SequenceItem
