package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"sable/internal/typing"
)

func TestErrorfBuildsDiagnostic(t *testing.T) {
	loc := typing.Loc{Filename: "token.sbl", Line: 12, Column: 5}
	d := Errorf(loc, "P0301", "unknown struct %s", "ghost::Phantom")

	assert.Equal(t, Error, d.Level)
	assert.Equal(t, "P0301", d.Code)
	assert.Equal(t, "unknown struct ghost::Phantom", d.Message)
	assert.Equal(t, loc, d.Loc)
}

func TestFormatIncludesCodeAndLocation(t *testing.T) {
	d := Errorf(typing.Loc{Filename: "token.sbl", Line: 12, Column: 5}, "P0301", "bad type")

	out := d.Format()

	assert.Contains(t, out, "P0301")
	assert.Contains(t, out, "bad type")
	assert.Contains(t, out, "token.sbl:12:5")
}

func TestFormatWithoutCode(t *testing.T) {
	d := Warningf(typing.Loc{Filename: "a.sbl", Line: 1, Column: 1}, "", "shadowed binding")

	out := d.Format()

	assert.Contains(t, out, "shadowed binding")
	assert.NotContains(t, out, "[]")
}
