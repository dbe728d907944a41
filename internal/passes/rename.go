package passes

import (
	"sable/internal/typing"
	"sable/internal/visitor"
)

// substituteVisitor rewrites free occurrences of locals according to a
// name mapping. A scope stack tracks bindings introduced inside the
// traversed region so shadowed occurrences are left alone: the
// substitution applies only where the caller's binding is still the
// one in effect. This is the primitive behind inlining parameter
// substitution.
type substituteVisitor struct {
	visitor.NoopVisitor
	subst   map[string]string
	scopes  []map[string]bool
	changed bool
}

func (v *substituteVisitor) EnterScope() {
	v.scopes = append(v.scopes, make(map[string]bool))
}

func (v *substituteVisitor) ExitScope() {
	v.scopes = v.scopes[:len(v.scopes)-1]
}

func (v *substituteVisitor) VarDecl(va *typing.Var) {
	v.scopes[len(v.scopes)-1][va.Name] = true
}

func (v *substituteVisitor) VarUse(va *typing.Var) {
	for i := len(v.scopes) - 1; i >= 0; i-- {
		if v.scopes[i][va.Name] {
			return
		}
	}
	if to, ok := v.subst[va.Name]; ok {
		va.Name = to
		v.changed = true
	}
}

// SubstituteFree rewrites every free occurrence of the mapped names in
// the expression, leaving occurrences bound by lambdas, binds, or
// declarations inside the expression untouched. Returns true if any
// occurrence was rewritten.
func SubstituteFree(e *typing.Exp, subst map[string]string) bool {
	v := &substituteVisitor{subst: subst}
	// The expression itself is not a scope; the stack still needs a
	// frame for declarations the expression introduces at top level.
	v.scopes = append(v.scopes, make(map[string]bool))
	visitor.NewDispatcher(v).Exp(e)
	return v.changed
}

// renameVisitor renames locals by name across declarations and uses
// alike: alpha-renaming ahead of inlining so the inlined body cannot
// capture bindings of the host function.
type renameVisitor struct {
	visitor.NoopVisitor
	renaming map[string]string
	changed  bool
}

func (v *renameVisitor) VarDecl(va *typing.Var) { v.rename(va) }
func (v *renameVisitor) VarUse(va *typing.Var)  { v.rename(va) }

func (v *renameVisitor) rename(va *typing.Var) {
	if to, ok := v.renaming[va.Name]; ok {
		va.Name = to
		v.changed = true
	}
}

// RenameLocals applies the renaming to every declaration and use of
// the mapped names in the function, parameters included. Returns true
// if any occurrence was rewritten.
func RenameLocals(fn *typing.Function, renaming map[string]string) bool {
	v := &renameVisitor{renaming: renaming}
	visitor.NewDispatcher(v).Function(fn)
	return v.changed
}

// RenamePass wraps RenameLocals for pipeline use.
type RenamePass struct {
	Renaming map[string]string
}

func (p *RenamePass) Name() string { return "rename-locals" }

func (p *RenamePass) Description() string {
	return "alpha-rename locals to avoid capture during inlining"
}

func (p *RenamePass) Run(fn *typing.Function) bool {
	return RenameLocals(fn, p.Renaming)
}
