package typing

// Parameter is one function parameter: the variable it binds and its
// declared type.
type Parameter struct {
	Var *Var
	Ty  *Type
}

// TypeParameter is one declared type parameter with its ability
// constraints.
// Example: "T: copy + store"
type TypeParameter struct {
	Name      string
	Abilities AbilitySet
}

// FunctionSignature carries the parameter list and return type.
type FunctionSignature struct {
	TypeParameters []TypeParameter
	Parameters     []Parameter
	ReturnType     *Type
}

// FunctionBody is either native (opaque, no IR) or a defined sequence.
type FunctionBody struct {
	Loc   Loc
	Value FunctionBodyValue
}

type FunctionBodyValue interface {
	isFunctionBodyValue()
}

func (*NativeBody) isFunctionBodyValue()  {}
func (*DefinedBody) isFunctionBodyValue() {}

// NativeBody marks a function implemented outside the language.
type NativeBody struct{}

// DefinedBody holds the type-checked statement sequence.
type DefinedBody struct {
	Seq Sequence
}

// Function is a fully type-checked function definition: the unit the
// traversal engine operates on. The caller hands a pass exclusive
// mutable access to one Function per traversal.
type Function struct {
	Loc       Loc
	Name      string
	Signature FunctionSignature
	Body      FunctionBody
}
