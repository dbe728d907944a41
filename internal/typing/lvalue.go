package typing

// LValue is one binding target inside a pattern.
type LValue struct {
	Loc   Loc
	Value LValueValue
}

// LValueValue is the closed set of binding-target variants.
type LValueValue interface {
	isLValueValue()
}

func (*VarLValue) isLValueValue()    {}
func (*Unpack) isLValueValue()       {}
func (*BorrowUnpack) isLValueValue() {}
func (*Ignore) isLValueValue()       {}

// VarLValue binds a simple named variable, optionally with an ascribed
// type written by the user.
// Example: "x", "x: U64"
type VarLValue struct {
	Var *Var
	Ty  *Type
}

// UnpackField pairs a struct field with the type it carries at this
// instantiation and the nested target it destructures into.
type UnpackField struct {
	Name   string
	Ty     *Type
	LValue *LValue
}

// Unpack destructures a struct by value, fields in declaration order.
// Example: "Coin { value } = coin"
type Unpack struct {
	Name     TypeName
	TypeArgs []*Type
	Fields   []UnpackField
}

// BorrowUnpack destructures a struct through a reference; the nested
// targets bind references to the fields.
// Example: "Coin { value } = &mut coin"
type BorrowUnpack struct {
	Mut      bool
	Name     TypeName
	TypeArgs []*Type
	Fields   []UnpackField
}

// Ignore discards the matched value.
// Example: "_"
type Ignore struct{}

// LValueList is a pattern: an ordered list of binding targets, used
// for declarations and assignment left-hand sides.
type LValueList struct {
	Loc   Loc
	Items []*LValue
}
