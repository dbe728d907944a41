package passes

import (
	"sable/internal/typing"
)

// Shared IR construction helpers for pass tests.

func u64Type() *typing.Type {
	return &typing.Type{Value: &typing.Apply{
		Abilities: typing.PrimitiveAbilities,
		Name:      typing.TypeName{Name: "U64"},
	}}
}

func unitType() *typing.Type {
	return &typing.Type{Value: &typing.UnitType{}}
}

func structType(module, name string, args ...*typing.Type) *typing.Type {
	return &typing.Type{Value: &typing.Apply{
		Abilities: typing.AllAbilities,
		Name:      typing.TypeName{Module: module, Name: name},
		Args:      args,
	}}
}

func local(name string) *typing.Var {
	return &typing.Var{Name: name}
}

func useExp(name string) *typing.Exp {
	return &typing.Exp{Ty: u64Type(), Exp: &typing.Use{Var: local(name)}}
}

func valueExp(raw string) *typing.Exp {
	return &typing.Exp{Ty: u64Type(), Exp: &typing.Value{Raw: raw}}
}

func binopExp(left *typing.Exp, op string, right *typing.Exp) *typing.Exp {
	return &typing.Exp{Ty: u64Type(), Exp: &typing.Binop{
		Left:   left,
		Op:     op,
		OpType: u64Type(),
		Right:  right,
	}}
}

func lambdaExp(param string, body *typing.Exp) *typing.Exp {
	return &typing.Exp{Ty: u64Type(), Exp: &typing.Lambda{
		Params: varPattern(param),
		Body:   body,
	}}
}

func varPattern(names ...string) *typing.LValueList {
	list := &typing.LValueList{}
	for _, name := range names {
		list.Items = append(list.Items, &typing.LValue{
			Value: &typing.VarLValue{Var: local(name)},
		})
	}
	return list
}

func bindItem(name string, init *typing.Exp) *typing.SequenceItem {
	return &typing.SequenceItem{Value: &typing.Bind{
		LHS:  varPattern(name),
		Init: init,
	}}
}

func seqItem(e *typing.Exp) *typing.SequenceItem {
	return &typing.SequenceItem{Value: &typing.Seq{Exp: e}}
}

func definedFunction(name string, params []typing.Parameter, seq typing.Sequence) *typing.Function {
	return &typing.Function{
		Name: name,
		Signature: typing.FunctionSignature{
			Parameters: params,
			ReturnType: unitType(),
		},
		Body: typing.FunctionBody{Value: &typing.DefinedBody{Seq: seq}},
	}
}
