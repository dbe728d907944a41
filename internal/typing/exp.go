package typing

// Exp is a typed expression: the inferred type, the source location,
// and the unannotated expression variant.
type Exp struct {
	Ty  *Type
	Loc Loc
	Exp UnannotatedExp
}

// UnannotatedExp is the closed set of expression variants. Traversal
// dispatches on the concrete variant; a visitor rewriting a node swaps
// the Exp field of the enclosing typed expression.
type UnannotatedExp interface {
	isUnannotatedExp()
}

func (*ModuleCall) isUnannotatedExp()    {}
func (*Use) isUnannotatedExp()           {}
func (*Copy) isUnannotatedExp()          {}
func (*Move) isUnannotatedExp()          {}
func (*BorrowLocal) isUnannotatedExp()   {}
func (*VarCall) isUnannotatedExp()       {}
func (*Lambda) isUnannotatedExp()        {}
func (*IfElse) isUnannotatedExp()        {}
func (*While) isUnannotatedExp()         {}
func (*Loop) isUnannotatedExp()          {}
func (*Block) isUnannotatedExp()         {}
func (*Mutate) isUnannotatedExp()        {}
func (*Binop) isUnannotatedExp()         {}
func (*Pack) isUnannotatedExp()          {}
func (*ExpList) isUnannotatedExp()       {}
func (*Assign) isUnannotatedExp()        {}
func (*Vector) isUnannotatedExp()        {}
func (*Cast) isUnannotatedExp()          {}
func (*Annotate) isUnannotatedExp()      {}
func (*Builtin) isUnannotatedExp()       {}
func (*Return) isUnannotatedExp()        {}
func (*Abort) isUnannotatedExp()         {}
func (*Dereference) isUnannotatedExp()   {}
func (*Unary) isUnannotatedExp()         {}
func (*Borrow) isUnannotatedExp()        {}
func (*TempBorrow) isUnannotatedExp()    {}
func (*UnitExp) isUnannotatedExp()       {}
func (*Value) isUnannotatedExp()         {}
func (*Constant) isUnannotatedExp()      {}
func (*Break) isUnannotatedExp()         {}
func (*Continue) isUnannotatedExp()      {}
func (*SpecBlock) isUnannotatedExp()     {}
func (*UnresolvedExp) isUnannotatedExp() {}

// ModuleCall represents a call to a module-level function. Arguments
// arrive as a single tupled expression; ParameterTypes records the
// instantiated parameter types for the call.
// Example: "token::transfer<Coin>(to, amount)"
type ModuleCall struct {
	Module         string
	Name           string
	TypeArguments  []*Type
	ParameterTypes []*Type
	Argument       *Exp
}

// Use represents a plain read of a local.
// Example: "amount"
type Use struct {
	Var *Var
}

// Copy represents an explicit or checker-inserted copy of a local.
// Example: "copy amount"
type Copy struct {
	FromUser bool
	Var      *Var
}

// Move represents a move out of a local.
// Example: "move coin"
type Move struct {
	FromUser bool
	Var      *Var
}

// BorrowLocal represents borrowing a local in place.
// Example: "&mut balance"
type BorrowLocal struct {
	Mut bool
	Var *Var
}

// VarCall represents calling a function bound to a local.
// Example: "f(args)" where f is lambda-bound
type VarCall struct {
	Var      *Var
	Argument *Exp
}

// Lambda represents an anonymous function. Params binds names for the
// body only; the body runs in its own scope.
// Example: "|x, y| x + y"
type Lambda struct {
	Params *LValueList
	Body   *Exp
}

// IfElse represents a conditional expression. Both branches are always
// present in the typed IR; a missing else arm is a unit expression.
type IfElse struct {
	Cond *Exp
	Then *Exp
	Else *Exp
}

// While represents a bounded loop.
type While struct {
	Cond *Exp
	Body *Exp
}

// Loop represents an unbounded loop; HasBreak records whether the body
// can exit it.
type Loop struct {
	HasBreak bool
	Body     *Exp
}

// Block represents a nested statement sequence used as an expression.
type Block struct {
	Seq Sequence
}

// Mutate represents a write through a reference.
// Example: "*balance = amount"
type Mutate struct {
	Dest   *Exp
	Source *Exp
}

// Binop represents a binary operation. OpType is the static result
// type chosen by the checker for the operator instantiation.
// Example: "amount + fee"
type Binop struct {
	Left   *Exp
	Op     string
	OpType *Type
	Right  *Exp
}

// PackField pairs a struct field with the type and initializer used to
// construct it.
type PackField struct {
	Name string
	Ty   *Type
	Init *Exp
}

// Pack represents struct construction, fields in declaration order.
// Example: "Coin<T> { value: amount }"
type Pack struct {
	Name          TypeName
	TypeArguments []*Type
	Fields        []PackField
}

// ExpListItem is one element of a tuple-like expression list.
type ExpListItem interface {
	isExpListItem()
}

func (*Single) isExpListItem() {}
func (*Splat) isExpListItem()  {}

// Single is a plain expression-list item with its element type.
type Single struct {
	Exp *Exp
	Ty  *Type
}

// Splat is a spread item contributing several elements at once.
type Splat struct {
	Exp   *Exp
	Types []*Type
}

// ExpList represents a tuple-like ordered list of expressions.
// Example: "(to, amount)"
type ExpList struct {
	Items []ExpListItem
}

// Assign represents destructuring assignment to existing bindings.
// Types entries may be nil where no explicit result type was written.
// Example: "(a, b) = pair"
type Assign struct {
	LHS   *LValueList
	Types []*Type
	RHS   *Exp
}

// Vector represents a vector literal with its element type and a
// tupled argument expression.
// Example: "vector<U8>[1, 2, 3]"
type Vector struct {
	ElemType *Type
	Argument *Exp
}

// Cast represents a numeric cast.
// Example: "amount as U128"
type Cast struct {
	Exp *Exp
	Ty  *Type
}

// Annotate represents a user-written type ascription.
// Example: "(x: U64)"
type Annotate struct {
	Exp *Exp
	Ty  *Type
}

// Builtin represents a call to a compiler builtin with one tupled
// argument expression.
// Example: "borrow_global<Coin>(addr)"
type Builtin struct {
	Name     string
	Argument *Exp
}

// Return represents returning a value from the enclosing function.
type Return struct {
	Exp *Exp
}

// Abort aborts the transaction with a code expression.
// Example: "abort E_INSUFFICIENT_BALANCE"
type Abort struct {
	Exp *Exp
}

// Dereference reads through a reference.
// Example: "*balance"
type Dereference struct {
	Exp *Exp
}

// Unary represents a unary operation.
// Example: "!done"
type Unary struct {
	Op  string
	Exp *Exp
}

// Borrow represents borrowing a field of a value.
// Example: "&mut coin.value"
type Borrow struct {
	Mut   bool
	Exp   *Exp
	Field string
}

// TempBorrow borrows a temporary produced by the inner expression.
type TempBorrow struct {
	Mut bool
	Exp *Exp
}

// UnitExp is the unit value. Trailing marks a unit synthesized for a
// sequence ending in a semicolon.
type UnitExp struct {
	Trailing bool
}

// Value is a literal.
// Example: "42", "true", "@0x1"
type Value struct {
	Raw string
}

// Constant references a module-level constant.
// Example: "errors::E_NOT_OWNER"
type Constant struct {
	Module string
	Name   string
}

// Break exits the innermost loop.
type Break struct{}

// Continue restarts the innermost loop.
type Continue struct{}

// SpecBlock anchors a verification-only block. Its contents are opaque
// to compilation passes; only the anchor id survives in the typed IR.
type SpecBlock struct {
	ID int
}

// UnresolvedExp marks an expression the checker could not type.
type UnresolvedExp struct{}
