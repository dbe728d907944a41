package typing

import "fmt"

// Loc tracks location information for diagnostics and tooling.
// The typed IR keeps locations on every node so later passes can
// point back at the source that produced a rewrite target.
type Loc struct {
	Filename string
	Line     int
	Column   int
}

func (l Loc) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Var represents a named local: a function parameter, a let-bound
// variable, or a lambda parameter. Passes hold *Var so a rewrite
// (e.g. inlining substitution) can rename the occurrence in place.
type Var struct {
	Loc  Loc
	Name string
}

func (v *Var) String() string {
	return v.Name
}
