package typing

import "strings"

// Ability is a structural capability a type can carry.
// Resource discipline: a value without Copy cannot be duplicated,
// a value without Drop must be consumed, Store gates persistence,
// Key marks top-level storage resources.
type Ability uint8

const (
	AbilityCopy Ability = 1 << iota
	AbilityDrop
	AbilityStore
	AbilityKey
)

func (a Ability) String() string {
	switch a {
	case AbilityCopy:
		return "copy"
	case AbilityDrop:
		return "drop"
	case AbilityStore:
		return "store"
	case AbilityKey:
		return "key"
	default:
		return "unknown"
	}
}

// AbilitySet is a set of abilities, stored as a bitset.
type AbilitySet uint8

// AllAbilities carries every ability; used for type holes where the
// instantiation is not yet constrained.
const AllAbilities = AbilitySet(AbilityCopy | AbilityDrop | AbilityStore | AbilityKey)

// PrimitiveAbilities is the set carried by primitive value types.
const PrimitiveAbilities = AbilitySet(AbilityCopy | AbilityDrop | AbilityStore)

// ReferenceAbilities is the set carried by references: copyable and
// droppable, never storable.
const ReferenceAbilities = AbilitySet(AbilityCopy | AbilityDrop)

func Abilities(abilities ...Ability) AbilitySet {
	var set AbilitySet
	for _, a := range abilities {
		set |= AbilitySet(a)
	}
	return set
}

func (s AbilitySet) Has(a Ability) bool {
	return s&AbilitySet(a) != 0
}

func (s AbilitySet) With(a Ability) AbilitySet {
	return s | AbilitySet(a)
}

func (s AbilitySet) Intersect(other AbilitySet) AbilitySet {
	return s & other
}

func (s AbilitySet) IsEmpty() bool {
	return s == 0
}

func (s AbilitySet) String() string {
	var parts []string
	for _, a := range []Ability{AbilityCopy, AbilityDrop, AbilityStore, AbilityKey} {
		if s.Has(a) {
			parts = append(parts, a.String())
		}
	}
	return strings.Join(parts, "+")
}
