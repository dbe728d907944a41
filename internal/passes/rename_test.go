package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"sable/internal/typing"
)

func TestSubstituteFreeRewritesFreeUses(t *testing.T) {
	// x + y with x free
	e := binopExp(useExp("x"), "+", useExp("y"))

	changed := SubstituteFree(e, map[string]string{"x": "caller_x"})

	assert.True(t, changed)
	binop := e.Exp.(*typing.Binop)
	assert.Equal(t, "caller_x", binop.Left.Exp.(*typing.Use).Var.Name)
	assert.Equal(t, "y", binop.Right.Exp.(*typing.Use).Var.Name, "unmapped names stay put")
}

func TestSubstituteFreeRespectsLambdaShadowing(t *testing.T) {
	// |x| x + x : both uses bound by the lambda parameter
	e := lambdaExp("x", binopExp(useExp("x"), "+", useExp("x")))

	changed := SubstituteFree(e, map[string]string{"x": "outer"})

	assert.False(t, changed, "uses bound inside the expression are not free")
	lambda := e.Exp.(*typing.Lambda)
	binop := lambda.Body.Exp.(*typing.Binop)
	assert.Equal(t, "x", binop.Left.Exp.(*typing.Use).Var.Name)
	assert.Equal(t, "x", binop.Right.Exp.(*typing.Use).Var.Name)
}

func TestSubstituteFreeRespectsBlockBindings(t *testing.T) {
	// { let x = 1; x + z }
	block := &typing.Exp{Ty: u64Type(), Exp: &typing.Block{Seq: typing.Sequence{
		bindItem("x", valueExp("1")),
		seqItem(binopExp(useExp("x"), "+", useExp("z"))),
	}}}

	changed := SubstituteFree(block, map[string]string{"x": "nope", "z": "caller_z"})

	assert.True(t, changed)
	seq := block.Exp.(*typing.Block).Seq
	sum := seq[1].Value.(*typing.Seq).Exp.Exp.(*typing.Binop)
	assert.Equal(t, "x", sum.Left.Exp.(*typing.Use).Var.Name,
		"x is bound by the bind statement and stays")
	assert.Equal(t, "caller_z", sum.Right.Exp.(*typing.Use).Var.Name,
		"z is free and gets substituted")
}

func TestRenameLocalsRewritesDeclsAndUses(t *testing.T) {
	fn := definedFunction("demo",
		[]typing.Parameter{{Var: local("x"), Ty: u64Type()}},
		typing.Sequence{
			bindItem("y", useExp("x")),
			seqItem(binopExp(useExp("x"), "+", useExp("y"))),
		},
	)

	changed := RenameLocals(fn, map[string]string{"x": "x$1"})

	assert.True(t, changed)
	assert.Equal(t, "x$1", fn.Signature.Parameters[0].Var.Name)

	seq := fn.Body.Value.(*typing.DefinedBody).Seq
	bind := seq[0].Value.(*typing.Bind)
	assert.Equal(t, "x$1", bind.Init.Exp.(*typing.Use).Var.Name)
	sum := seq[1].Value.(*typing.Seq).Exp.Exp.(*typing.Binop)
	assert.Equal(t, "x$1", sum.Left.Exp.(*typing.Use).Var.Name)
	assert.Equal(t, "y", sum.Right.Exp.(*typing.Use).Var.Name)
}

func TestRenameLocalsNoChanges(t *testing.T) {
	fn := definedFunction("demo", nil, typing.Sequence{seqItem(valueExp("1"))})

	changed := RenameLocals(fn, map[string]string{"missing": "other"})

	assert.False(t, changed)
}

func TestRenamePassImplementsPass(t *testing.T) {
	pass := &RenamePass{Renaming: map[string]string{"a": "b"}}
	assert.Equal(t, "rename-locals", pass.Name())
	assert.NotEmpty(t, pass.Description())

	fn := definedFunction("demo", nil, typing.Sequence{seqItem(useExp("a"))})
	assert.True(t, pass.Run(fn))
}
