package typing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func u64() *Type {
	return &Type{Value: &Apply{Abilities: PrimitiveAbilities, Name: TypeName{Name: "U64"}}}
}

func use(name string) *Exp {
	return &Exp{Ty: u64(), Exp: &Use{Var: &Var{Name: name}}}
}

func TestPrintFunctionHeader(t *testing.T) {
	fn := &Function{
		Name: "transfer",
		Signature: FunctionSignature{
			TypeParameters: []TypeParameter{{Name: "T", Abilities: Abilities(AbilityStore)}},
			Parameters: []Parameter{
				{Var: &Var{Name: "to"}, Ty: u64()},
				{Var: &Var{Name: "amount"}, Ty: u64()},
			},
			ReturnType: &Type{Value: &UnitType{}},
		},
		Body: FunctionBody{Value: &NativeBody{}},
	}

	out := Print(fn)

	assert.Contains(t, out, "fn transfer<T: store>(to: U64, amount: U64) -> ()")
	assert.Contains(t, out, "native")
}

func TestPrintSequenceStructure(t *testing.T) {
	fn := &Function{
		Name: "demo",
		Signature: FunctionSignature{
			ReturnType: &Type{Value: &UnitType{}},
		},
		Body: FunctionBody{Value: &DefinedBody{Seq: Sequence{
			{Value: &Bind{
				LHS:  &LValueList{Items: []*LValue{{Value: &VarLValue{Var: &Var{Name: "x"}}}}},
				Init: &Exp{Ty: u64(), Exp: &Value{Raw: "42"}},
			}},
			{Value: &Seq{Exp: &Exp{Ty: u64(), Exp: &Binop{
				Left:   use("x"),
				Op:     "+",
				OpType: u64(),
				Right:  &Exp{Ty: u64(), Exp: &Value{Raw: "1"}},
			}}}},
		}}},
	}

	out := Print(fn)

	assert.Contains(t, out, "bind x =")
	assert.Contains(t, out, "value 42 : U64")
	assert.Contains(t, out, "binop + : U64")
	assert.Contains(t, out, "use x : U64")
}

func TestPrintExpNesting(t *testing.T) {
	e := &Exp{Ty: u64(), Exp: &IfElse{
		Cond: use("flag"),
		Then: use("a"),
		Else: use("b"),
	}}

	out := PrintExp(e)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Equal(t, "if : U64", lines[0])
	assert.Len(t, lines, 4)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "  "), "children indent under the conditional")
	}
}

func TestPrintLValueForms(t *testing.T) {
	fn := &Function{
		Name: "unpacker",
		Signature: FunctionSignature{
			ReturnType: &Type{Value: &UnitType{}},
		},
		Body: FunctionBody{Value: &DefinedBody{Seq: Sequence{
			{Value: &Declare{LHS: &LValueList{Items: []*LValue{
				{Value: &VarLValue{Var: &Var{Name: "x"}, Ty: u64()}},
				{Value: &Ignore{}},
				{Value: &Unpack{
					Name: TypeName{Module: "pair", Name: "Pair"},
					Fields: []UnpackField{
						{Name: "first", Ty: u64(), LValue: &LValue{Value: &VarLValue{Var: &Var{Name: "a"}}}},
					},
				}},
			}}}},
		}}},
	}

	out := Print(fn)

	assert.Contains(t, out, "declare x: U64, _, pair::Pair{first: a}")
}
