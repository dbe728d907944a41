package passes

import (
	"sable/internal/typing"
	"sable/internal/visitor"
)

// freeVarsVisitor collects names used free in an expression, in first
// occurrence order. Bindings introduced inside the expression shadow
// outer names the usual way.
type freeVarsVisitor struct {
	visitor.NoopVisitor
	scopes []map[string]bool
	seen   map[string]bool
	order  []string
}

func (v *freeVarsVisitor) EnterScope() {
	v.scopes = append(v.scopes, make(map[string]bool))
}

func (v *freeVarsVisitor) ExitScope() {
	v.scopes = v.scopes[:len(v.scopes)-1]
}

func (v *freeVarsVisitor) VarDecl(va *typing.Var) {
	v.scopes[len(v.scopes)-1][va.Name] = true
}

func (v *freeVarsVisitor) VarUse(va *typing.Var) {
	for i := len(v.scopes) - 1; i >= 0; i-- {
		if v.scopes[i][va.Name] {
			return
		}
	}
	if !v.seen[va.Name] {
		v.seen[va.Name] = true
		v.order = append(v.order, va.Name)
	}
}

// FreeVars returns the names referenced by the expression that are not
// bound inside it, in first-use order. Inlining uses this to decide
// which caller locals an inlined body captures.
func FreeVars(e *typing.Exp) []string {
	v := &freeVarsVisitor{seen: make(map[string]bool)}
	v.scopes = append(v.scopes, make(map[string]bool))
	visitor.NewDispatcher(v).Exp(e)
	return v.order
}

// useCountVisitor tallies uses per local across a whole function.
type useCountVisitor struct {
	visitor.NoopVisitor
	counts map[string]int
}

func (v *useCountVisitor) VarUse(va *typing.Var) {
	v.counts[va.Name]++
}

// UseCounts returns how often each local is referenced in the function
// body. A declared name missing from the map is unused.
func UseCounts(fn *typing.Function) map[string]int {
	v := &useCountVisitor{counts: make(map[string]int)}
	visitor.NewDispatcher(v).Function(fn)
	return v.counts
}
