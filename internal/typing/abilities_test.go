package typing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbilitySetHas(t *testing.T) {
	set := Abilities(AbilityCopy, AbilityStore)

	assert.True(t, set.Has(AbilityCopy))
	assert.True(t, set.Has(AbilityStore))
	assert.False(t, set.Has(AbilityDrop))
	assert.False(t, set.Has(AbilityKey))
}

func TestAbilitySetWith(t *testing.T) {
	set := Abilities(AbilityCopy).With(AbilityDrop)

	assert.True(t, set.Has(AbilityCopy))
	assert.True(t, set.Has(AbilityDrop))
}

func TestAbilitySetIntersect(t *testing.T) {
	left := Abilities(AbilityCopy, AbilityDrop, AbilityStore)
	right := Abilities(AbilityStore, AbilityKey)

	assert.Equal(t, Abilities(AbilityStore), left.Intersect(right))
	assert.True(t, left.Intersect(AbilitySet(0)).IsEmpty())
}

func TestAbilitySetString(t *testing.T) {
	assert.Equal(t, "copy+drop+store", PrimitiveAbilities.String())
	assert.Equal(t, "copy+drop+store+key", AllAbilities.String())
	assert.Equal(t, "key", Abilities(AbilityKey).String())
	assert.Equal(t, "", AbilitySet(0).String())
}

func TestAbilityString(t *testing.T) {
	assert.Equal(t, "copy", AbilityCopy.String())
	assert.Equal(t, "drop", AbilityDrop.String())
	assert.Equal(t, "store", AbilityStore.String())
	assert.Equal(t, "key", AbilityKey.String())
}
