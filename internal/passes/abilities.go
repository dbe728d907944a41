package passes

import (
	"sable/internal/diag"
	"sable/internal/typing"
	"sable/internal/visitor"
)

// StructRegistry maps a struct's qualified name to the ability set it
// was declared with. Instantiations weaken the declared set by what
// the type arguments can actually support.
type StructRegistry map[string]typing.AbilitySet

// abilityVisitor recomputes the ability set of every applied type from
// fully visited substructure. The dispatcher guarantees InferAbilities
// fires only after all type arguments were walked, so argument ability
// sets are already up to date when a parent is recomputed.
type abilityVisitor struct {
	visitor.NoopVisitor
	registry    StructRegistry
	changed     bool
	diagnostics []diag.Diagnostic
}

func (v *abilityVisitor) InferAbilities(ty *typing.Type) {
	apply, ok := ty.Value.(*typing.Apply)
	if !ok {
		return
	}
	inferred := v.declaredAbilities(ty.Loc, apply)
	for _, arg := range apply.Args {
		inferred = inferred.Intersect(abilitiesOf(arg))
	}
	if inferred != apply.Abilities {
		apply.Abilities = inferred
		v.changed = true
	}
}

// declaredAbilities returns the ability set the type head was declared
// with, before weakening by arguments.
func (v *abilityVisitor) declaredAbilities(loc typing.Loc, apply *typing.Apply) typing.AbilitySet {
	name := apply.Name
	if name.Module == "" {
		// builtins: integers, Bool, Address, vector
		return typing.PrimitiveAbilities
	}
	declared, ok := v.registry[name.String()]
	if !ok {
		v.diagnostics = append(v.diagnostics,
			diag.Errorf(loc, "P0301", "unknown struct %s in ability inference", name.String()))
		return typing.AllAbilities
	}
	return declared
}

// abilitiesOf reads the current ability set of an already visited
// type node.
func abilitiesOf(ty *typing.Type) typing.AbilitySet {
	switch t := ty.Value.(type) {
	case *typing.Ref:
		return typing.ReferenceAbilities
	case *typing.Apply:
		return t.Abilities
	case *typing.UnitType:
		return typing.Abilities(typing.AbilityCopy, typing.AbilityDrop)
	case *typing.Param:
		return t.Abilities
	case *typing.TypeVar, *typing.Anything, *typing.UnresolvedType:
		// Unconstrained holes never weaken the parent.
		return typing.AllAbilities
	default:
		return typing.AllAbilities
	}
}

// AbilityInferencePass re-derives ability sets for every applied type
// in a function body, bottom up. Run after a rewrite that changed type
// instantiations (inlining, specialization).
type AbilityInferencePass struct {
	Registry    StructRegistry
	Diagnostics []diag.Diagnostic
}

func (p *AbilityInferencePass) Name() string { return "infer-abilities" }

func (p *AbilityInferencePass) Description() string {
	return "recompute ability sets of applied types from substructure"
}

func (p *AbilityInferencePass) Run(fn *typing.Function) bool {
	v := &abilityVisitor{registry: p.Registry}
	visitor.NewDispatcher(v).Function(fn)
	p.Diagnostics = append(p.Diagnostics, v.diagnostics...)
	return v.changed
}
