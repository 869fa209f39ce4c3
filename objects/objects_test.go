package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegerInspect(t *testing.T) {
	i := &Integer{Value: 42}
	assert.Equal(t, INTEGER_OBJ, i.Type())
	assert.Equal(t, "42", i.Inspect())
}

func TestBooleanInspect(t *testing.T) {
	assert.Equal(t, "true", TRUE.Inspect())
	assert.Equal(t, "false", FALSE.Inspect())
	assert.Equal(t, BOOLEAN_OBJ, TRUE.Type())
}

func TestNullInspect(t *testing.T) {
	assert.Equal(t, "null", NULL.Inspect())
	assert.Equal(t, NULL_OBJ, NULL.Type())
}

func TestErrorInspect(t *testing.T) {
	e := &Error{Message: "unknown identifier: foo"}
	assert.Equal(t, ERROR_OBJ, e.Type())
	assert.Equal(t, "ERROR: unknown identifier: foo", e.Inspect())
}

func TestNativeBoolReturnsSingletons(t *testing.T) {
	assert.Same(t, TRUE, NativeBool(true))
	assert.Same(t, FALSE, NativeBool(false))
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(&Error{Message: "x"}))
	assert.False(t, IsError(&Integer{Value: 1}))
	assert.False(t, IsError(nil))
}
