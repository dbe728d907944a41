package visitor

import "sable/internal/typing"

// Continuation tells the dispatcher whether to descend into the
// current node's substructure. It is returned by value; it is a
// pruning instruction, never an error signal.
type Continuation int

const (
	// Descend continues into the node's children.
	Descend Continuation = iota
	// Stop skips the node's children; siblings and ancestors are
	// unaffected.
	Stop
)

func (c Continuation) String() string {
	switch c {
	case Descend:
		return "descend"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Visitor is the capability interface a transformation pass implements.
// The dispatcher invokes these hooks at fixed points of the walk; the
// pass mutates nodes in place from inside them. Embed NoopVisitor to
// implement only the hooks a pass needs.
type Visitor interface {
	// Exp inspects one typed expression before its children are
	// visited. Its inferred type has already been visited.
	Exp(e *typing.Exp) Continuation

	// Type inspects one type node before descent into its
	// substructure.
	Type(ty *typing.Type) Continuation

	// EnterScope and ExitScope bracket one lexical region. Every
	// EnterScope has exactly one matching ExitScope, closed in
	// last-opened-first-closed order.
	EnterScope()
	ExitScope()

	// VarDecl notifies that a binding is introduced. It fires after
	// EnterScope for the region and after the binding's declared
	// type, if any, has been visited.
	VarDecl(v *typing.Var)

	// VarUse notifies that an existing binding is referenced: read,
	// copied, moved, borrowed, or called through.
	VarUse(v *typing.Var)

	// InferAbilities fires once per applied type node, after all of
	// its type-argument substructure has been visited. It never
	// fires for leaf type variants.
	InferAbilities(ty *typing.Type)
}

// NoopVisitor provides identity/continue behavior for every hook.
type NoopVisitor struct{}

func (NoopVisitor) Exp(*typing.Exp) Continuation   { return Descend }
func (NoopVisitor) Type(*typing.Type) Continuation { return Descend }
func (NoopVisitor) EnterScope()                    {}
func (NoopVisitor) ExitScope()                     {}
func (NoopVisitor) VarDecl(*typing.Var)            {}
func (NoopVisitor) VarUse(*typing.Var)             {}
func (NoopVisitor) InferAbilities(*typing.Type)    {}
