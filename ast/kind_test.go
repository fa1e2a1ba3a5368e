package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindNames(t *testing.T) {
	assert.Equal(t, "FunctionDecl", KindFunctionDecl.String())
	assert.Equal(t, "MacroDefinition", KindMacroDefinition.String())
	assert.Equal(t, "EntityKind(9999)", EntityKind(9999).String())
}

func TestIsInvalid(t *testing.T) {
	assert.True(t, KindInvalidCode.IsInvalid())
	assert.True(t, KindNoDeclFound.IsInvalid())
	assert.False(t, KindFunctionDecl.IsInvalid())
	assert.False(t, KindOverloadCandidate.IsInvalid())
}

func TestAvailabilityNames(t *testing.T) {
	assert.Equal(t, "Available", Available.String())
	assert.Equal(t, "Deprecated", Deprecated.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "Inaccessible", Inaccessible.String())
	assert.Equal(t, "Availability(7)", Availability(7).String())
}
