package visitor

import (
	"fmt"

	"sable/internal/typing"
)

// Dispatcher owns the walk order over a type-checked function body.
// It performs a single synchronous depth-first traversal, invoking the
// wrapped Visitor's hooks at fixed points and applying no logic of its
// own beyond orchestration. One Dispatcher processes one function (or
// bare sequence) per invocation and holds no state across invocations.
//
// The IR handed in must be well formed and fully type checked; a
// variant outside the closed sets below is an upstream defect and
// panics rather than being patched over.
type Dispatcher struct {
	visitor Visitor
}

func NewDispatcher(v Visitor) *Dispatcher {
	return &Dispatcher{visitor: v}
}

// Function traverses one function definition: the parameter scope is
// opened, each parameter's declared type is visited and the parameter
// registered as a declaration in order, then the body, then the scope
// closes. Native bodies have no IR to descend into.
func (d *Dispatcher) Function(fn *typing.Function) {
	d.visitor.EnterScope()
	for i := range fn.Signature.Parameters {
		param := &fn.Signature.Parameters[i]
		d.Type(param.Ty)
		d.visitor.VarDecl(param.Var)
	}
	switch body := fn.Body.Value.(type) {
	case *typing.NativeBody:
	case *typing.DefinedBody:
		d.Sequence(body.Seq)
	default:
		panic(fmt.Sprintf("dispatcher: unexpected function body %T", body))
	}
	d.visitor.ExitScope()
}

// Type traverses one type node. Stop from the hook suppresses descent,
// which for an applied type also suppresses its InferAbilities
// notification. InferAbilities fires only after every type argument of
// an applied type has been visited.
func (d *Dispatcher) Type(ty *typing.Type) {
	if d.visitor.Type(ty) == Stop {
		return
	}
	switch t := ty.Value.(type) {
	case *typing.Ref:
		d.Type(t.Referent)
	case *typing.Apply:
		d.types(t.Args)
		d.visitor.InferAbilities(ty)
	case *typing.UnitType, *typing.Param, *typing.TypeVar, *typing.Anything, *typing.UnresolvedType:
	default:
		panic(fmt.Sprintf("dispatcher: unexpected type variant %T", t))
	}
}

func (d *Dispatcher) types(tys []*typing.Type) {
	for _, ty := range tys {
		d.Type(ty)
	}
}

// optionalTypes visits the non-nil entries of a type list whose slots
// may be absent (explicit result types on binds and assigns).
func (d *Dispatcher) optionalTypes(tys []*typing.Type) {
	for _, ty := range tys {
		if ty != nil {
			d.Type(ty)
		}
	}
}

// Exp traverses one typed expression. The node's inferred type is
// always visited before the expression hook fires; Stop from the hook
// suppresses descent into the expression's substructure only.
func (d *Dispatcher) Exp(e *typing.Exp) {
	d.Type(e.Ty)
	if d.visitor.Exp(e) == Stop {
		return
	}
	d.expValue(e.Exp)
}

func (d *Dispatcher) expValue(ex typing.UnannotatedExp) {
	switch e := ex.(type) {
	case *typing.ModuleCall:
		d.types(e.TypeArguments)
		d.types(e.ParameterTypes)
		d.Exp(e.Argument)

	case *typing.Use:
		d.visitor.VarUse(e.Var)
	case *typing.Copy:
		d.visitor.VarUse(e.Var)
	case *typing.Move:
		d.visitor.VarUse(e.Var)
	case *typing.BorrowLocal:
		d.visitor.VarUse(e.Var)

	case *typing.VarCall:
		d.visitor.VarUse(e.Var)
		d.Exp(e.Argument)

	case *typing.Lambda:
		d.visitor.EnterScope()
		d.LValueList(e.Params, true)
		d.Exp(e.Body)
		d.visitor.ExitScope()

	case *typing.IfElse:
		d.Exp(e.Cond)
		d.Exp(e.Then)
		d.Exp(e.Else)
	case *typing.While:
		d.Exp(e.Cond)
		d.Exp(e.Body)
	case *typing.Loop:
		d.Exp(e.Body)
	case *typing.Block:
		d.Sequence(e.Seq)
	case *typing.Mutate:
		d.Exp(e.Dest)
		d.Exp(e.Source)
	case *typing.Binop:
		d.Type(e.OpType)
		d.Exp(e.Left)
		d.Exp(e.Right)

	case *typing.Pack:
		d.types(e.TypeArguments)
		for i := range e.Fields {
			field := &e.Fields[i]
			d.Type(field.Ty)
			d.Exp(field.Init)
		}

	case *typing.ExpList:
		for _, item := range e.Items {
			switch it := item.(type) {
			case *typing.Single:
				d.Type(it.Ty)
				d.Exp(it.Exp)
			case *typing.Splat:
				d.types(it.Types)
				d.Exp(it.Exp)
			default:
				panic(fmt.Sprintf("dispatcher: unexpected expression list item %T", it))
			}
		}

	case *typing.Assign:
		d.LValueList(e.LHS, false)
		d.optionalTypes(e.Types)
		d.Exp(e.RHS)

	case *typing.Vector:
		d.Type(e.ElemType)
		d.Exp(e.Argument)
	case *typing.Cast:
		d.Type(e.Ty)
		d.Exp(e.Exp)
	case *typing.Annotate:
		d.Type(e.Ty)
		d.Exp(e.Exp)

	case *typing.Builtin:
		d.Exp(e.Argument)
	case *typing.Return:
		d.Exp(e.Exp)
	case *typing.Abort:
		d.Exp(e.Exp)
	case *typing.Dereference:
		d.Exp(e.Exp)
	case *typing.Unary:
		d.Exp(e.Exp)
	case *typing.Borrow:
		d.Exp(e.Exp)
	case *typing.TempBorrow:
		d.Exp(e.Exp)

	case *typing.UnitExp, *typing.Value, *typing.Constant,
		*typing.Break, *typing.Continue, *typing.SpecBlock, *typing.UnresolvedExp:

	default:
		panic(fmt.Sprintf("dispatcher: unexpected expression variant %T", e))
	}
}

// Sequence traverses a statement list in source order. Bind and
// Declare each open one scope that stays open through every later
// statement of the same sequence; the scopes close after the last
// statement, last opened first.
func (d *Dispatcher) Sequence(seq typing.Sequence) {
	scopeCount := 0
	for _, item := range seq {
		switch s := item.Value.(type) {
		case *typing.Bind:
			d.visitor.EnterScope()
			d.LValueList(s.LHS, true)
			d.optionalTypes(s.Types)
			d.Exp(s.Init)
			scopeCount++
		case *typing.Declare:
			d.visitor.EnterScope()
			d.LValueList(s.LHS, true)
			scopeCount++
		case *typing.Seq:
			d.Exp(s.Exp)
		default:
			panic(fmt.Sprintf("dispatcher: unexpected sequence item %T", s))
		}
	}
	for ; scopeCount > 0; scopeCount-- {
		d.visitor.ExitScope()
	}
}

// LValueList traverses a pattern. With declared set, simple targets
// are registered as declarations; otherwise as uses of existing
// bindings (assignment position).
func (d *Dispatcher) LValueList(list *typing.LValueList, declared bool) {
	for _, lv := range list.Items {
		d.lvalue(lv, declared)
	}
}

func (d *Dispatcher) lvalue(lv *typing.LValue, declared bool) {
	switch v := lv.Value.(type) {
	case *typing.VarLValue:
		if v.Ty != nil {
			d.Type(v.Ty)
		}
		if declared {
			d.visitor.VarDecl(v.Var)
		} else {
			d.visitor.VarUse(v.Var)
		}
	case *typing.Unpack:
		d.types(v.TypeArgs)
		d.unpackFields(v.Fields, declared)
	case *typing.BorrowUnpack:
		d.types(v.TypeArgs)
		d.unpackFields(v.Fields, declared)
	case *typing.Ignore:
	default:
		panic(fmt.Sprintf("dispatcher: unexpected lvalue variant %T", v))
	}
}

func (d *Dispatcher) unpackFields(fields []typing.UnpackField, declared bool) {
	for i := range fields {
		field := &fields[i]
		d.Type(field.Ty)
		d.lvalue(field.LValue, declared)
	}
}
