package typing

import (
	"strconv"
	"strings"
)

// Type is a fully inferred type attached to an expression or binding.
// The variant lives in Value; Loc points at the source that introduced it.
type Type struct {
	Loc   Loc
	Value TypeValue
}

// TypeValue is the closed set of type variants. Only Apply carries
// nested type arguments; every other variant is a traversal leaf.
type TypeValue interface {
	isTypeValue()
}

func (*Ref) isTypeValue()            {}
func (*Apply) isTypeValue()          {}
func (*UnitType) isTypeValue()       {}
func (*Param) isTypeValue()          {}
func (*TypeVar) isTypeValue()        {}
func (*Anything) isTypeValue()       {}
func (*UnresolvedType) isTypeValue() {}

// TypeName identifies a type head: a builtin when Module is empty,
// otherwise a struct declared in a module.
// Example: "U256", "token::Coin"
type TypeName struct {
	Module string
	Name   string
}

func (tn TypeName) String() string {
	if tn.Module == "" {
		return tn.Name
	}
	return tn.Module + "::" + tn.Name
}

// Ref represents a reference type.
// Example: "&U256", "&mut Coin"
type Ref struct {
	Mut      bool
	Referent *Type
}

// Apply represents an applied (possibly generic) type: a head plus an
// ordered list of type arguments. Abilities holds the inferred ability
// set for this instantiation, recomputed whenever the arguments change.
// Example: "U256", "Table<Address, Coin>"
type Apply struct {
	Abilities AbilitySet
	Name      TypeName
	Args      []*Type
}

// UnitType is the empty tuple type.
type UnitType struct{}

// Param represents a function type parameter with its declared
// ability constraints.
// Example: "T" in "fn swap<T: store>(...)"
type Param struct {
	Name      string
	Abilities AbilitySet
}

// TypeVar is an inference variable left behind by the type checker.
// A well-formed IR handed to the traversal engine has these resolved;
// the variant exists so partially checked bodies can still be printed.
type TypeVar struct {
	ID int
}

// Anything is the wildcard type compatible with every type.
type Anything struct{}

// UnresolvedType marks a type the checker could not resolve. It keeps
// downstream phases total without inventing a real type.
type UnresolvedType struct{}

// TypeString renders a type in source-like form for diagnostics.
func TypeString(ty *Type) string {
	if ty == nil {
		return "_"
	}
	switch t := ty.Value.(type) {
	case *Ref:
		if t.Mut {
			return "&mut " + TypeString(t.Referent)
		}
		return "&" + TypeString(t.Referent)
	case *Apply:
		if len(t.Args) == 0 {
			return t.Name.String()
		}
		args := make([]string, len(t.Args))
		for i, arg := range t.Args {
			args[i] = TypeString(arg)
		}
		return t.Name.String() + "<" + strings.Join(args, ", ") + ">"
	case *UnitType:
		return "()"
	case *Param:
		return t.Name
	case *TypeVar:
		return "?" + strconv.Itoa(t.ID)
	case *Anything:
		return "_"
	case *UnresolvedType:
		return "<error>"
	default:
		return "<unknown>"
	}
}
